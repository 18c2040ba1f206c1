package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mariacarolk/socrates-dash-v2/internal/currency"
	"github.com/mariacarolk/socrates-dash-v2/internal/dateutil"
	"github.com/mariacarolk/socrates-dash-v2/internal/export"
	"github.com/mariacarolk/socrates-dash-v2/internal/model"
	"github.com/mariacarolk/socrates-dash-v2/internal/report"
)

// NoDataMessage mensagem exibida quando nenhum registro sobrevive aos filtros
const NoDataMessage = "Nenhum dado encontrado para os filtros selecionados."

// reportRequest corpo de geração de relatório
type reportRequest struct {
	UploadID  string   `json:"uploadId"`
	Mode      string   `json:"modo"` // "circo" ou "cidade"
	FilterSet []string `json:"filtros"`
	StartDate string   `json:"dataInicio"`
	EndDate   string   `json:"dataFim"`
}

// reportRowView linha do relatório com valores formatados para exibição
type reportRowView struct {
	Label         string `json:"label"`
	Period        string `json:"periodo"`
	GrossRevenue  string `json:"faturamentoTotal"`
	ManagementFee string `json:"faturamentoGestao"`
	FeesDeducted  string `json:"taxasEDescontos"`
	NetRevenue    string `json:"valorLiquido"`
}

// reportTotalsView totais formatados para exibição
type reportTotalsView struct {
	GrossRevenue  string `json:"totalGeral"`
	ManagementFee string `json:"totalGestao"`
	FeesDeducted  string `json:"totalTaxas"`
	NetRevenue    string `json:"totalLiquido"`
}

// CreateReport gera um relatório a partir de um lote importado
// POST /api/reports
func (h *Handler) CreateReport(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "corpo da requisição inválido"})
		return
	}

	up, err := h.sessions.GetUpload(req.UploadID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		return
	}

	mode := report.Mode(req.Mode)
	if mode != report.ByShow && mode != report.ByCity {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "modo de relatório inválido, use circo ou cidade"})
		return
	}

	start, ok := dateutil.ParseBR(req.StartDate)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "data inicial inválida"})
		return
	}
	end, ok := dateutil.ParseBR(req.EndDate)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "data final inválida"})
		return
	}
	if start.After(end) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Data inicial deve ser anterior à data final"})
		return
	}

	rows, err := report.Build(up.Records, h.registry.GetAll(), report.Request{
		Mode:        mode,
		FilterSet:   req.FilterSet,
		PeriodStart: start,
		PeriodEnd:   end,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	rep, err := h.sessions.PutReport(up.ID, rows)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		return
	}

	message := fmt.Sprintf("Relatório gerado com %d linhas", len(rows))
	if len(rows) == 0 {
		message = NoDataMessage
	}

	totals := model.SumReportRows(rows)
	views := make([]reportRowView, 0, len(rows))
	for _, row := range rows {
		views = append(views, reportRowView{
			Label:         row.Label,
			Period:        row.Period,
			GrossRevenue:  currency.FormatDisplay(row.GrossRevenue),
			ManagementFee: currency.FormatDisplay(row.ManagementFee),
			FeesDeducted:  currency.FormatDisplay(row.FeesDeducted),
			NetRevenue:    currency.FormatDisplay(row.NetRevenue),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  message,
		"reportId": rep.ID,
		"linhas":   views,
		"totais": reportTotalsView{
			GrossRevenue:  currency.FormatDisplay(totals.GrossRevenue),
			ManagementFee: currency.FormatDisplay(totals.ManagementFee),
			FeesDeducted:  currency.FormatDisplay(totals.FeesDeducted),
			NetRevenue:    currency.FormatDisplay(totals.NetRevenue),
		},
	})
}

// ExportReport exporta um relatório gerado em Excel ou PDF
// GET /api/reports/:id/export/:format
func (h *Handler) ExportReport(c *gin.Context) {
	rep, err := h.sessions.GetReport(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		return
	}

	now := time.Now()
	stamp := now.Format("20060102_150405")

	switch c.Param("format") {
	case "excel":
		data, err := export.ToExcel(rep.Rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "falha ao gerar o arquivo Excel"})
			return
		}
		filename := fmt.Sprintf("relatorio_socrates_%s.xlsx", stamp)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)

	case "pdf":
		data, err := export.ToPDF(rep.Rows, now)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "falha ao gerar o arquivo PDF"})
			return
		}
		filename := fmt.Sprintf("relatorio_socrates_%s.pdf", stamp)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "application/pdf", data)

	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "formato de exportação inválido, use excel ou pdf"})
	}
}
