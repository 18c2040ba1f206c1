package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/mariacarolk/socrates-dash-v2/internal/associator"
	"github.com/mariacarolk/socrates-dash-v2/internal/currency"
	"github.com/mariacarolk/socrates-dash-v2/internal/extractor"
)

// UploadResponse resultado da importação de uma planilha
type UploadResponse struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message"`
	UploadID   string   `json:"uploadId"`
	TotalRows  int      `json:"totalRows"`
	Accepted   int      `json:"accepted"`
	Skipped    int      `json:"skipped"`
	Shows      []string `json:"circos"`
	TotalGross string   `json:"faturamentoTotal"`
	TotalNet   string   `json:"valorLiquido"`
}

// Upload importa uma planilha de faturamento
// POST /api/upload
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "nenhum arquivo enviado"})
		return
	}

	if !h.cfg.AllowedExtension(fileHeader.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "formato de arquivo não suportado, envie .xlsx ou .xls"})
		return
	}
	if fileHeader.Size > h.cfg.MaxUploadBytes() {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"success": false,
			"message": fmt.Sprintf("arquivo excede o limite de %d MB", h.cfg.Upload.MaxSizeMB),
		})
		return
	}

	// salva em arquivo temporário sob o diretório de dados antes de abrir
	// com o excelize
	tempPath := filepath.Join(h.uploadsDir, fmt.Sprintf("socrates_upload_%d_%s", time.Now().UnixNano(), filepath.Base(fileHeader.Filename)))
	if err := c.SaveUploadedFile(fileHeader, tempPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "falha ao salvar o arquivo"})
		return
	}
	defer os.Remove(tempPath)

	f, err := os.Open(tempPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "falha ao ler o arquivo"})
		return
	}
	defer f.Close()

	result, err := extractor.Extract(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	up := h.sessions.PutUpload(fileHeader.Filename, result.Records)

	gross := decimal.Zero
	net := decimal.Zero
	for _, r := range result.Records {
		gross = gross.Add(r.GrossRevenue)
		net = net.Add(r.NetRevenue)
	}

	c.JSON(http.StatusOK, UploadResponse{
		Success:    true,
		Message:    fmt.Sprintf("%d registros importados", result.Accepted),
		UploadID:   up.ID,
		TotalRows:  result.TotalRows,
		Accepted:   result.Accepted,
		Skipped:    result.Skipped,
		Shows:      up.Shows(),
		TotalGross: currency.FormatDisplay(gross),
		TotalNet:   currency.FormatDisplay(net),
	})
}

// ListUploadShows lista os circos únicos de um lote importado
// GET /api/uploads/:id/shows
func (h *Handler) ListUploadShows(c *gin.Context) {
	up, err := h.sessions.GetUpload(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "circos": up.Shows()})
}

// associationView registro associado com valores formatados para exibição
type associationView struct {
	Show          string `json:"circo"`
	City          string `json:"cidade"`
	EventDate     string `json:"dataEvento"`
	GrossRevenue  string `json:"faturamentoTotal"`
	ManagementFee string `json:"faturamentoGestao"`
	FeesDeducted  string `json:"taxasEDescontos"`
	NetRevenue    string `json:"valorLiquido"`
}

// ListUploadAssociations resolve a cidade de cada registro do lote com base no
// cadastro atual
// GET /api/uploads/:id/associations
func (h *Handler) ListUploadAssociations(c *gin.Context) {
	up, err := h.sessions.GetUpload(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		return
	}

	associated := associator.Associate(up.Records, h.registry.GetAll())

	views := make([]associationView, 0, len(associated))
	for _, rec := range associated {
		views = append(views, associationView{
			Show:          rec.Show,
			City:          rec.City,
			EventDate:     rec.EventDate,
			GrossRevenue:  currency.FormatDisplay(rec.GrossRevenue),
			ManagementFee: currency.FormatDisplay(rec.ManagementFee),
			FeesDeducted:  currency.FormatDisplay(rec.FeesDeducted),
			NetRevenue:    currency.FormatDisplay(rec.NetRevenue),
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "registros": views})
}
