package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mariacarolk/socrates-dash-v2/internal/model"
)

func date(value string) time.Time {
	t, err := time.Parse("02/01/2006", value)
	if err != nil {
		panic(err)
	}
	return t
}

func record(show, eventDate string, gross, management, fees int64) model.RevenueRecord {
	g := decimal.NewFromInt(gross)
	m := decimal.NewFromInt(management)
	f := decimal.NewFromInt(fees)
	return model.RevenueRecord{
		Show:          show,
		EventDate:     eventDate,
		GrossRevenue:  g,
		ManagementFee: m,
		FeesDeducted:  f,
		NetRevenue:    g.Sub(m).Sub(f),
	}
}

func entry(city, show, start, end string) model.ShowCityEntry {
	return model.ShowCityEntry{City: city, Show: show, StartDate: date(start), EndDate: date(end)}
}

func TestBuild_ByShowGroupsAndSums(t *testing.T) {
	t.Parallel()

	records := []model.RevenueRecord{
		record("Circo Estoril", "10/01/2025", 1000, 200, 50),
		record("Circo Estoril", "20/01/2025", 500, 100, 25),
		record("Circo Mirage", "15/01/2025", 300, 30, 10),
	}

	rows, err := Build(records, nil, Request{
		Mode:        ByShow,
		FilterSet:   []string{"Circo Estoril", "Circo Mirage"},
		PeriodStart: date("01/01/2025"),
		PeriodEnd:   date("31/01/2025"),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d", len(rows))
	}

	// Ordenadas por rótulo
	estoril := rows[0]
	if estoril.Label != "Circo Estoril" {
		t.Fatalf("label = %q", estoril.Label)
	}
	if !estoril.GrossRevenue.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("gross = %s", estoril.GrossRevenue)
	}
	if !estoril.NetRevenue.Equal(decimal.NewFromInt(1125)) {
		t.Fatalf("net = %s", estoril.NetRevenue)
	}
	if estoril.Period != "01/01/2025 - 31/01/2025" {
		t.Fatalf("period = %q", estoril.Period)
	}
}

func TestBuild_PeriodWindowInclusive(t *testing.T) {
	t.Parallel()

	records := []model.RevenueRecord{
		record("Circo Estoril", "01/01/2025", 100, 0, 0),
		record("Circo Estoril", "31/01/2025", 200, 0, 0),
		record("Circo Estoril", "01/02/2025", 400, 0, 0), // fora do período
	}

	rows, err := Build(records, nil, Request{
		Mode:        ByShow,
		FilterSet:   []string{"Circo Estoril"},
		PeriodStart: date("01/01/2025"),
		PeriodEnd:   date("31/01/2025"),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d", len(rows))
	}
	if !rows[0].GrossRevenue.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("gross = %s", rows[0].GrossRevenue)
	}
}

func TestBuild_UnparseableDatesExcluded(t *testing.T) {
	t.Parallel()

	records := []model.RevenueRecord{
		record("Circo Estoril", "Não informado", 100, 0, 0),
		record("Circo Estoril", "15/01/2025", 200, 0, 0),
	}

	rows, err := Build(records, nil, Request{
		Mode:        ByShow,
		FilterSet:   []string{"Circo Estoril"},
		PeriodStart: date("01/01/2025"),
		PeriodEnd:   date("31/01/2025"),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !rows[0].GrossRevenue.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("gross = %s", rows[0].GrossRevenue)
	}
}

func TestBuild_ByCityResolvesViaRegistry(t *testing.T) {
	t.Parallel()

	registry := []model.ShowCityEntry{
		entry("Campinas", "Circo Estoril", "01/01/2025", "15/01/2025"),
		entry("Santos", "Circo Estoril", "16/01/2025", "31/01/2025"),
	}
	records := []model.RevenueRecord{
		record("Circo Estoril", "10/01/2025", 1000, 100, 0),
		record("Circo Estoril", "20/01/2025", 500, 50, 0),
		record("Circo Mirage", "12/01/2025", 300, 0, 0), // sem cadastro
	}

	rows, err := Build(records, registry, Request{
		Mode:        ByCity,
		FilterSet:   []string{"Campinas", "Santos"},
		PeriodStart: date("01/01/2025"),
		PeriodEnd:   date("31/01/2025"),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d: %+v", len(rows), rows)
	}
	if rows[0].Label != "Campinas" || !rows[0].GrossRevenue.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("campinas row: %+v", rows[0])
	}
	if rows[1].Label != "Santos" || !rows[1].GrossRevenue.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("santos row: %+v", rows[1])
	}
}

func TestBuild_EmptyFilterSetIsError(t *testing.T) {
	t.Parallel()

	_, err := Build(nil, nil, Request{
		Mode:        ByShow,
		PeriodStart: date("01/01/2025"),
		PeriodEnd:   date("31/01/2025"),
	})
	if err == nil {
		t.Fatalf("expected validation error")
	}

	_, err = Build(nil, nil, Request{
		Mode:        ByCity,
		PeriodStart: date("01/01/2025"),
		PeriodEnd:   date("31/01/2025"),
	})
	if err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestBuild_NoSurvivorsIsEmptyNotError(t *testing.T) {
	t.Parallel()

	records := []model.RevenueRecord{
		record("Circo Estoril", "15/06/2025", 100, 0, 0),
	}
	rows, err := Build(records, nil, Request{
		Mode:        ByShow,
		FilterSet:   []string{"Circo Estoril"},
		PeriodStart: date("01/01/2025"),
		PeriodEnd:   date("31/01/2025"),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("rows = %d", len(rows))
	}
}

func TestSumReportRows(t *testing.T) {
	t.Parallel()

	rows := []model.ReportRow{
		{GrossRevenue: decimal.NewFromInt(100), ManagementFee: decimal.NewFromInt(10), FeesDeducted: decimal.NewFromInt(5), NetRevenue: decimal.NewFromInt(85)},
		{GrossRevenue: decimal.NewFromInt(200), ManagementFee: decimal.NewFromInt(20), FeesDeducted: decimal.NewFromInt(15), NetRevenue: decimal.NewFromInt(165)},
	}
	totals := model.SumReportRows(rows)
	if !totals.GrossRevenue.Equal(decimal.NewFromInt(300)) ||
		!totals.ManagementFee.Equal(decimal.NewFromInt(30)) ||
		!totals.FeesDeducted.Equal(decimal.NewFromInt(20)) ||
		!totals.NetRevenue.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("totals = %+v", totals)
	}
}
