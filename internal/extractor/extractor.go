package extractor

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/mariacarolk/socrates-dash-v2/internal/currency"
	"github.com/mariacarolk/socrates-dash-v2/internal/dateutil"
	"github.com/mariacarolk/socrates-dash-v2/internal/model"
	"github.com/mariacarolk/socrates-dash-v2/internal/normalizer"
)

// Colunas obrigatórias da planilha de faturamento, por rótulo exato
const (
	ColEvent      = "Evento"
	ColEventDate  = "Data Evento"
	ColGross      = "Faturamento Total"
	ColManagement = "Faturamento Gestão Produtor"
)

// feeColumns lista fixa de colunas de taxas e descontos; apenas as presentes
// e não vazias entram na soma
var feeColumns = []string{
	"Taxa Antecipação",
	"Taxa Transferencia",
	"I:Comissão Bilheteria e PDVS",
	"I:Insumo - Ingresso Cancelado",
	"I:Insumo - Ingresso Cortesia",
	"I:Taxas Cartões - Debito",
	"I:Taxas Cartões - Credito à Vista",
	"I:Taxa Pix",
	"I:Despesas Jurídicas",
}

// Result resultado da extração de uma planilha
type Result struct {
	Records   []model.RevenueRecord `json:"records"`
	TotalRows int                   `json:"totalRows"`
	Accepted  int                   `json:"acceptedRows"`
	Skipped   int                   `json:"skippedRows"`
}

// Extract consome uma planilha de faturamento e produz o conjunto de
// registros normalizados. Colunas obrigatórias ausentes abortam a importação
// inteira; linhas individuais malformadas são puladas sem interromper o lote.
func Extract(reader io.Reader) (*Result, error) {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir planilha: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("planilha sem abas")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("falha ao ler linhas: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("planilha vazia")
	}

	header := rows[0]
	columns := make(map[string]int, len(header))
	for idx, name := range header {
		columns[strings.TrimSpace(name)] = idx
	}

	var missing []string
	for _, required := range []string{ColEvent, ColEventDate, ColGross, ColManagement} {
		if _, ok := columns[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("colunas não encontradas: %s", strings.Join(missing, ", "))
	}

	result := &Result{TotalRows: len(rows) - 1}
	sheet := &sheetReader{file: file, name: sheets[0], columns: columns}

	for i, row := range rows[1:] {
		record, ok := extractRow(row, columns, sheet, i+2)
		if !ok {
			result.Skipped++
			continue
		}
		result.Records = append(result.Records, record)
		result.Accepted++
	}

	return result, nil
}

// sheetReader acesso por célula para resolver valores brutos
type sheetReader struct {
	file    *excelize.File
	name    string
	columns map[string]int
}

// rawCell lê o valor bruto (sem formatação de estilo) de uma célula
func (s *sheetReader) rawCell(rowNum int, name string) string {
	idx, ok := s.columns[name]
	if !ok {
		return ""
	}
	cellRef, err := excelize.CoordinatesToCellName(idx+1, rowNum)
	if err != nil {
		return ""
	}
	value, err := s.file.GetCellValue(s.name, cellRef, excelize.Options{RawCellValue: true})
	if err != nil {
		return ""
	}
	return value
}

// extractRow converte uma linha da planilha em um RevenueRecord
func extractRow(row []string, columns map[string]int, sheet *sheetReader, rowNum int) (model.RevenueRecord, bool) {
	rawEvent := cell(row, columns, ColEvent)
	if strings.TrimSpace(rawEvent) == "" {
		return model.RevenueRecord{}, false
	}

	show := normalizer.ExtractShowName(rawEvent)
	if show == "" || normalizer.IsReserved(show) {
		return model.RevenueRecord{}, false
	}

	eventDate := normalizeEventDate(cell(row, columns, ColEventDate), sheet.rawCell(rowNum, ColEventDate))

	gross := currency.Parse(cell(row, columns, ColGross))
	management := currency.Parse(cell(row, columns, ColManagement))

	fees := decimal.Zero
	for _, feeCol := range feeColumns {
		if _, ok := columns[feeCol]; !ok {
			continue
		}
		value := cell(row, columns, feeCol)
		if strings.TrimSpace(value) == "" {
			continue
		}
		fees = fees.Add(currency.Parse(value))
	}

	// Valor líquido calculado uma única vez na extração
	net := gross.Sub(management).Sub(fees)

	return model.RevenueRecord{
		Show:          show,
		EventDate:     eventDate,
		RawEventLabel: rawEvent,
		GrossRevenue:  gross,
		ManagementFee: management,
		FeesDeducted:  fees,
		NetRevenue:    net,
	}, true
}

// normalizeEventDate normaliza a data para DD/MM/YYYY. Datas ausentes viram o
// sentinela; células de data nativas chegam formatadas pelo estilo da planilha
// (ex.: "3-16-25") e são convertidas pelo serial bruto do Excel; texto
// irreconhecível é preservado como veio.
func normalizeEventDate(display, raw string) string {
	trimmed := strings.TrimSpace(display)
	if trimmed == "" || strings.EqualFold(trimmed, "nan") {
		return dateutil.DateMissing
	}
	if parsed, ok := dateutil.ParseBR(trimmed); ok {
		return dateutil.FormatBR(parsed)
	}

	// Célula de data nativa: o valor bruto é o serial numérico e difere do
	// texto formatado pelo estilo
	rawTrimmed := strings.TrimSpace(raw)
	if rawTrimmed != "" && rawTrimmed != trimmed {
		if serial, err := strconv.ParseFloat(rawTrimmed, 64); err == nil {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return dateutil.FormatBR(t)
			}
		}
	}

	return trimmed
}

// cell lê uma célula por nome de coluna, tolerando linhas curtas
func cell(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}
