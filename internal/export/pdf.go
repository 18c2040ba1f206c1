package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/mariacarolk/socrates-dash-v2/internal/currency"
	"github.com/mariacarolk/socrates-dash-v2/internal/model"
)

// maxLabelLen rótulos maiores são truncados com reticências na tabela do PDF
const maxLabelLen = 15

// pdfColWidths larguras das seis colunas, em mm (página A4)
var pdfColWidths = []float64{38, 32, 30, 30, 30, 30}

// pdfHeader cabeçalhos curtos para caber na página
var pdfHeader = []string{"Circo", "Período", "Fatur. Total", "Gestão Prod.", "Taxas/Desc.", "Valor Líquido"}

// ToPDF gera o relatório em PDF: marca, título, data de geração, tabela com
// linha de TOTAL recalculada a partir das linhas exibidas e um resumo
// executivo. Entrada vazia produz um aviso no lugar da tabela.
func ToPDF(rows []model.ReportRow, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Marca
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(0x66, 0x7E, 0xEA)
	pdf.CellFormat(0, 12, tr("SÓCRATES ONLINE"), "", 1, "C", false, 0, "")

	// Título do relatório
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0x76, 0x4B, 0xA2)
	pdf.CellFormat(0, 10, tr("Relatório de Faturamento por Evento"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Data de geração
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	stamp := fmt.Sprintf("Gerado em: %s às %s", generatedAt.Format("02/01/2006"), generatedAt.Format("15:04"))
	pdf.CellFormat(0, 6, tr(stamp), "", 1, "C", false, 0, "")
	pdf.Ln(8)

	if len(rows) == 0 {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, tr("Nenhum dado encontrado para os filtros selecionados."), "", 1, "C", false, 0, "")
		return output(pdf)
	}

	// Cabeçalho da tabela
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(0x66, 0x7E, 0xEA)
	pdf.SetTextColor(255, 255, 255)
	for i, name := range pdfHeader {
		pdf.CellFormat(pdfColWidths[i], 8, tr(name), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	// Linhas de dados
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0x33, 0x33, 0x33)
	for i, row := range rows {
		if i%2 == 0 {
			pdf.SetFillColor(0xF5, 0xF5, 0xDC)
		} else {
			pdf.SetFillColor(0xD3, 0xD3, 0xD3)
		}
		cells := []string{
			TruncateLabel(row.Label),
			row.Period,
			currency.FormatDisplay(row.GrossRevenue),
			currency.FormatDisplay(row.ManagementFee),
			currency.FormatDisplay(row.FeesDeducted),
			currency.FormatDisplay(row.NetRevenue),
		}
		for c, value := range cells {
			pdf.CellFormat(pdfColWidths[c], 7, tr(value), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}

	// Linha de total, recalculada das linhas exibidas
	totals := model.SumReportRows(rows)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(0x76, 0x4B, 0xA2)
	pdf.SetTextColor(255, 255, 255)
	totalCells := []string{
		"TOTAL",
		"",
		currency.FormatDisplay(totals.GrossRevenue),
		currency.FormatDisplay(totals.ManagementFee),
		currency.FormatDisplay(totals.FeesDeducted),
		currency.FormatDisplay(totals.NetRevenue),
	}
	for c, value := range totalCells {
		pdf.CellFormat(pdfColWidths[c], 8, tr(value), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.Ln(8)

	// Resumo executivo
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(0x33, 0x33, 0x33)
	pdf.CellFormat(0, 6, tr("Resumo Executivo:"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	summary := []string{
		fmt.Sprintf("Total de Registros: %d", len(rows)),
		fmt.Sprintf("Faturamento Total: %s", currency.FormatDisplay(totals.GrossRevenue)),
		fmt.Sprintf("Valor Gestão Produtor: %s", currency.FormatDisplay(totals.ManagementFee)),
		fmt.Sprintf("Taxas e Descontos: %s", currency.FormatDisplay(totals.FeesDeducted)),
		fmt.Sprintf("Valor Líquido: %s", currency.FormatDisplay(totals.NetRevenue)),
	}
	for _, line := range summary {
		pdf.CellFormat(0, 5, tr(line), "", 1, "C", false, 0, "")
	}

	return output(pdf)
}

// TruncateLabel limita o rótulo ao tamanho da célula, com reticências
func TruncateLabel(label string) string {
	runes := []rune(label)
	if len(runes) <= maxLabelLen {
		return label
	}
	return string(runes[:maxLabelLen]) + "..."
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("falha ao gerar PDF: %w", err)
	}
	return buf.Bytes(), nil
}
