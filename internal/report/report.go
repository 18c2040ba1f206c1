// Package report filtra e agrega os registros de faturamento em linhas de
// relatório por circo ou por cidade dentro de um período.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/mariacarolk/socrates-dash-v2/internal/associator"
	"github.com/mariacarolk/socrates-dash-v2/internal/dateutil"
	"github.com/mariacarolk/socrates-dash-v2/internal/model"
)

// Mode modo de agrupamento do relatório
type Mode string

const (
	ByShow Mode = "circo"
	ByCity Mode = "cidade"
)

// Request parâmetros de geração de relatório
type Request struct {
	Mode        Mode
	FilterSet   []string // circos ou cidades, conforme o modo
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// Build filtra os registros pelo período e pelo conjunto selecionado, agrupa
// e soma as quatro colunas monetárias. Registros sem data interpretável ficam
// de fora. Conjunto de filtro vazio é erro de validação; resultado vazio não.
func Build(records []model.RevenueRecord, registry []model.ShowCityEntry, req Request) ([]model.ReportRow, error) {
	if len(req.FilterSet) == 0 {
		switch req.Mode {
		case ByCity:
			return nil, fmt.Errorf("selecione pelo menos uma cidade")
		default:
			return nil, fmt.Errorf("selecione pelo menos um circo")
		}
	}

	selected := make(map[string]struct{}, len(req.FilterSet))
	for _, name := range req.FilterSet {
		selected[name] = struct{}{}
	}

	// No modo por cidade a associação usa o snapshot atual do cadastro
	var associated []model.AssociatedRecord
	if req.Mode == ByCity {
		associated = associator.Associate(records, registry)
	}

	groups := make(map[string]*model.ReportRow)
	period := fmt.Sprintf("%s - %s", dateutil.FormatBR(req.PeriodStart), dateutil.FormatBR(req.PeriodEnd))

	accumulate := func(label string, r model.RevenueRecord) {
		row, ok := groups[label]
		if !ok {
			row = &model.ReportRow{Label: label, Period: period}
			groups[label] = row
		}
		row.GrossRevenue = row.GrossRevenue.Add(r.GrossRevenue)
		row.ManagementFee = row.ManagementFee.Add(r.ManagementFee)
		row.FeesDeducted = row.FeesDeducted.Add(r.FeesDeducted)
		row.NetRevenue = row.NetRevenue.Add(r.NetRevenue)
	}

	for i, record := range records {
		eventDate, ok := dateutil.ParseBR(record.EventDate)
		if !ok {
			continue
		}
		if !dateutil.WithinInclusive(eventDate, req.PeriodStart, req.PeriodEnd) {
			continue
		}

		switch req.Mode {
		case ByCity:
			city := associated[i].City
			if _, ok := selected[city]; !ok {
				continue
			}
			accumulate(city, record)
		default:
			if _, ok := selected[record.Show]; !ok {
				continue
			}
			accumulate(record.Show, record)
		}
	}

	rows := make([]model.ReportRow, 0, len(groups))
	for _, row := range groups {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Label < rows[j].Label })

	return rows, nil
}
