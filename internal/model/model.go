package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CityNotFound valor atribuído quando nenhum cadastro cobre o evento
const CityNotFound = "Não encontrada"

// RevenueRecord um registro de faturamento normalizado, produzido a partir de
// uma linha da planilha importada. Imutável após a criação; o conjunto inteiro
// é substituído a cada novo upload.
type RevenueRecord struct {
	Show          string          `json:"circo"`
	EventDate     string          `json:"dataEvento"` // DD/MM/YYYY ou "Não informado"
	RawEventLabel string          `json:"eventoCompleto"`
	GrossRevenue  decimal.Decimal `json:"faturamentoTotal"`
	ManagementFee decimal.Decimal `json:"faturamentoGestao"`
	FeesDeducted  decimal.Decimal `json:"taxasEDescontos"`
	NetRevenue    decimal.Decimal `json:"valorLiquido"`
}

// AssociatedRecord um RevenueRecord com a cidade resolvida pelo cadastro
type AssociatedRecord struct {
	RevenueRecord
	City string `json:"cidade"`
}

// ShowCityEntry um cadastro de circo em cidade por período.
// O ID é uma chave substituta estável atribuída na criação; a ordem de
// inserção é preservada pelos backends e define o desempate na associação.
type ShowCityEntry struct {
	ID        string    `json:"id"`
	City      string    `json:"cidade"`
	Show      string    `json:"circo"`
	StartDate time.Time `json:"-"`
	EndDate   time.Time `json:"-"`
}

// Equal compara os campos de dados para verificação de integridade
// pós-gravação. O ID fica de fora: o backend de arquivo persiste apenas os
// quatro campos de dados e gera IDs novos ao recarregar.
func (e ShowCityEntry) Equal(other ShowCityEntry) bool {
	return e.City == other.City &&
		e.Show == other.Show &&
		e.StartDate.Equal(other.StartDate) &&
		e.EndDate.Equal(other.EndDate)
}

// ReportRow uma linha agregada do relatório. Derivada e efêmera; recalculada
// a cada requisição de relatório.
type ReportRow struct {
	Label         string          `json:"label"` // circo ou cidade, conforme o modo
	Period        string          `json:"periodo"`
	GrossRevenue  decimal.Decimal `json:"faturamentoTotal"`
	ManagementFee decimal.Decimal `json:"faturamentoGestao"`
	FeesDeducted  decimal.Decimal `json:"taxasEDescontos"`
	NetRevenue    decimal.Decimal `json:"valorLiquido"`
}

// ReportTotals somatório das quatro colunas monetárias de um relatório
type ReportTotals struct {
	GrossRevenue  decimal.Decimal `json:"totalGeral"`
	ManagementFee decimal.Decimal `json:"totalGestao"`
	FeesDeducted  decimal.Decimal `json:"totalTaxas"`
	NetRevenue    decimal.Decimal `json:"totalLiquido"`
}

// SumReportRows recalcula os totais a partir das linhas do relatório
func SumReportRows(rows []ReportRow) ReportTotals {
	var t ReportTotals
	for _, row := range rows {
		t.GrossRevenue = t.GrossRevenue.Add(row.GrossRevenue)
		t.ManagementFee = t.ManagementFee.Add(row.ManagementFee)
		t.FeesDeducted = t.FeesDeducted.Add(row.FeesDeducted)
		t.NetRevenue = t.NetRevenue.Add(row.NetRevenue)
	}
	return t
}
