package session

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mariacarolk/socrates-dash-v2/internal/model"
)

func TestPutAndGetUpload(t *testing.T) {
	t.Parallel()

	s := NewStore()
	records := []model.RevenueRecord{
		{Show: "Circo Estrela", EventDate: "16/03/2024"},
		{Show: "Circo Mirage", EventDate: "17/03/2024"},
	}

	up := s.PutUpload("planilha.xlsx", records)
	if up.ID == "" {
		t.Fatal("esperava identificador atribuído ao upload")
	}

	got, err := s.GetUpload(up.ID)
	if err != nil {
		t.Fatalf("GetUpload: %v", err)
	}
	if got.Filename != "planilha.xlsx" || len(got.Records) != 2 {
		t.Fatalf("upload recuperado difere: %+v", got)
	}
}

func TestGetUploadUnknownID(t *testing.T) {
	t.Parallel()

	s := NewStore()
	if _, err := s.GetUpload("inexistente"); err == nil {
		t.Fatal("esperava erro para identificador desconhecido")
	}
}

func TestPutReportReplacesPrevious(t *testing.T) {
	t.Parallel()

	s := NewStore()
	up := s.PutUpload("a.xlsx", []model.RevenueRecord{{Show: "Circo Estrela"}})

	first, err := s.PutReport(up.ID, []model.ReportRow{{Label: "Circo Estrela", NetRevenue: decimal.NewFromInt(100)}})
	if err != nil {
		t.Fatalf("PutReport: %v", err)
	}
	second, err := s.PutReport(up.ID, []model.ReportRow{{Label: "Circo Estrela", NetRevenue: decimal.NewFromInt(200)}})
	if err != nil {
		t.Fatalf("PutReport: %v", err)
	}

	if _, err := s.GetReport(first.ID); err == nil {
		t.Fatal("relatório antigo deveria ter sido descartado")
	}
	got, err := s.GetReport(second.ID)
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if !got.Rows[0].NetRevenue.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("linhas do relatório diferem: %+v", got.Rows)
	}
}

func TestPutReportRequiresUpload(t *testing.T) {
	t.Parallel()

	s := NewStore()
	if _, err := s.PutReport("inexistente", nil); err == nil {
		t.Fatal("esperava erro sem upload correspondente")
	}
}

func TestUploadShows(t *testing.T) {
	t.Parallel()

	s := NewStore()
	up := s.PutUpload("a.xlsx", []model.RevenueRecord{
		{Show: "Circo Mirage"},
		{Show: "Circo Estrela"},
		{Show: "Circo Mirage"},
	})

	shows := up.Shows()
	if len(shows) != 2 || shows[0] != "Circo Estrela" || shows[1] != "Circo Mirage" {
		t.Fatalf("Shows() = %v", shows)
	}
}
