package associator

import (
	"testing"
	"time"

	"github.com/mariacarolk/socrates-dash-v2/internal/model"
)

func date(value string) time.Time {
	t, err := time.Parse("02/01/2006", value)
	if err != nil {
		panic(err)
	}
	return t
}

func entry(city, show, start, end string) model.ShowCityEntry {
	return model.ShowCityEntry{City: city, Show: show, StartDate: date(start), EndDate: date(end)}
}

func record(show, eventDate string) model.RevenueRecord {
	return model.RevenueRecord{Show: show, EventDate: eventDate}
}

func TestAssociate_DateWithinRange(t *testing.T) {
	t.Parallel()

	registry := []model.ShowCityEntry{
		entry("X", "Y", "01/01/2025", "31/01/2025"),
	}

	out := Associate([]model.RevenueRecord{record("Y", "15/01/2025")}, registry)
	if out[0].City != "X" {
		t.Fatalf("city = %q, want X", out[0].City)
	}

	out = Associate([]model.RevenueRecord{record("Y", "01/02/2025")}, registry)
	if out[0].City != model.CityNotFound {
		t.Fatalf("city = %q, want %q", out[0].City, model.CityNotFound)
	}
}

func TestAssociate_InclusiveBounds(t *testing.T) {
	t.Parallel()

	registry := []model.ShowCityEntry{
		entry("Campinas", "Circo Estoril", "01/01/2025", "31/01/2025"),
	}

	for _, d := range []string{"01/01/2025", "31/01/2025"} {
		out := Associate([]model.RevenueRecord{record("Circo Estoril", d)}, registry)
		if out[0].City != "Campinas" {
			t.Fatalf("date %s: city = %q", d, out[0].City)
		}
	}
}

func TestAssociate_FirstMatchInRegistryOrderWins(t *testing.T) {
	t.Parallel()

	// Dois períodos sobrepostos para o mesmo circo: o cadastro mais antigo
	// na ordem de inserção decide
	registry := []model.ShowCityEntry{
		entry("Campinas", "Circo Estoril", "01/01/2025", "31/01/2025"),
		entry("Santos", "Circo Estoril", "15/01/2025", "15/02/2025"),
	}

	out := Associate([]model.RevenueRecord{record("Circo Estoril", "20/01/2025")}, registry)
	if out[0].City != "Campinas" {
		t.Fatalf("city = %q, want Campinas", out[0].City)
	}

	// Fora do primeiro período, o segundo cobre
	out = Associate([]model.RevenueRecord{record("Circo Estoril", "05/02/2025")}, registry)
	if out[0].City != "Santos" {
		t.Fatalf("city = %q, want Santos", out[0].City)
	}
}

func TestAssociate_SkipsInvertedRanges(t *testing.T) {
	t.Parallel()

	registry := []model.ShowCityEntry{
		entry("Campinas", "Circo Estoril", "31/01/2025", "01/01/2025"), // invertido
		entry("Santos", "Circo Estoril", "01/01/2025", "31/01/2025"),
	}

	out := Associate([]model.RevenueRecord{record("Circo Estoril", "15/01/2025")}, registry)
	if out[0].City != "Santos" {
		t.Fatalf("city = %q, want Santos", out[0].City)
	}
}

func TestAssociate_UnparseableDate(t *testing.T) {
	t.Parallel()

	registry := []model.ShowCityEntry{
		entry("Campinas", "Circo Estoril", "01/01/2025", "31/01/2025"),
	}

	for _, d := range []string{"Não informado", "texto qualquer", ""} {
		out := Associate([]model.RevenueRecord{record("Circo Estoril", d)}, registry)
		if out[0].City != model.CityNotFound {
			t.Fatalf("date %q: city = %q", d, out[0].City)
		}
	}
}

func TestAssociate_ShowMustMatch(t *testing.T) {
	t.Parallel()

	registry := []model.ShowCityEntry{
		entry("Campinas", "Circo Estoril", "01/01/2025", "31/01/2025"),
	}

	out := Associate([]model.RevenueRecord{record("Circo Mirage", "15/01/2025")}, registry)
	if out[0].City != model.CityNotFound {
		t.Fatalf("city = %q, want %q", out[0].City, model.CityNotFound)
	}
}
