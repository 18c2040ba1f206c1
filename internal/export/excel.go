// Package export serializa linhas de relatório em planilha e PDF para
// download.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mariacarolk/socrates-dash-v2/internal/currency"
	"github.com/mariacarolk/socrates-dash-v2/internal/model"
)

// SheetName aba única do relatório exportado
const SheetName = "Relatório Sócrates Online"

// tableHeader cabeçalho do relatório; o rótulo vale para circo ou cidade
var tableHeader = []string{
	"Circo", "Período", "Faturamento Total", "Faturamento Gestão Produtor",
	"Taxas e Descontos", "Valor Líquido",
}

// columnWidths larguras fixas por coluna, em caracteres
var columnWidths = map[string]float64{
	"A": 25, "B": 25, "C": 20, "D": 30, "E": 20, "F": 20,
}

// ToExcel gera a planilha do relatório. As colunas monetárias são gravadas
// como texto de exibição ("R$ ..."), não como números.
func ToExcel(rows []model.ReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("falha ao nomear aba: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"667EEA"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao criar estilo de cabeçalho: %w", err)
	}

	dataStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Style: 1, Color: "000000"},
			{Type: "right", Style: 1, Color: "000000"},
			{Type: "top", Style: 1, Color: "000000"},
			{Type: "bottom", Style: 1, Color: "000000"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao criar estilo de dados: %w", err)
	}

	for i, name := range tableHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SheetName, cell, name); err != nil {
			return nil, fmt.Errorf("falha ao gravar cabeçalho: %w", err)
		}
	}

	for r, row := range rows {
		values := []string{
			row.Label,
			row.Period,
			currency.FormatDisplay(row.GrossRevenue),
			currency.FormatDisplay(row.ManagementFee),
			currency.FormatDisplay(row.FeesDeducted),
			currency.FormatDisplay(row.NetRevenue),
		}
		for c, value := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return nil, fmt.Errorf("falha ao gravar linha: %w", err)
			}
		}
	}

	for col, width := range columnWidths {
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return nil, fmt.Errorf("falha ao ajustar coluna: %w", err)
		}
	}

	lastRow := len(rows) + 1
	if err := f.SetCellStyle(SheetName, "A1", "F1", headerStyle); err != nil {
		return nil, fmt.Errorf("falha ao aplicar estilo de cabeçalho: %w", err)
	}
	if lastRow > 1 {
		endCell, _ := excelize.CoordinatesToCellName(len(tableHeader), lastRow)
		if err := f.SetCellStyle(SheetName, "A2", endCell, dataStyle); err != nil {
			return nil, fmt.Errorf("falha ao aplicar estilo de dados: %w", err)
		}
	}
	for r := 1; r <= lastRow; r++ {
		if err := f.SetRowHeight(SheetName, r, 20); err != nil {
			return nil, fmt.Errorf("falha ao ajustar altura de linha: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("falha ao serializar planilha: %w", err)
	}
	return buf.Bytes(), nil
}
