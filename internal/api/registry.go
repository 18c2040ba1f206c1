package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mariacarolk/socrates-dash-v2/internal/dateutil"
	"github.com/mariacarolk/socrates-dash-v2/internal/model"
)

// registryEntryRequest corpo de criação/atualização de um cadastro
type registryEntryRequest struct {
	City      string `json:"cidade"`
	Show      string `json:"circo"`
	StartDate string `json:"dataInicio"`
	EndDate   string `json:"dataFim"`
}

// registryEntryView cadastro formatado para exibição
type registryEntryView struct {
	ID        string `json:"id"`
	City      string `json:"cidade"`
	Show      string `json:"circo"`
	StartDate string `json:"dataInicio"`
	EndDate   string `json:"dataFim"`
}

func toEntryView(e model.ShowCityEntry) registryEntryView {
	return registryEntryView{
		ID:        e.ID,
		City:      e.City,
		Show:      e.Show,
		StartDate: dateutil.FormatBR(e.StartDate),
		EndDate:   dateutil.FormatBR(e.EndDate),
	}
}

// parseEntryRequest valida o corpo e o converte em um cadastro
func parseEntryRequest(req registryEntryRequest) (model.ShowCityEntry, string) {
	if req.City == "" || req.Show == "" || req.StartDate == "" || req.EndDate == "" {
		return model.ShowCityEntry{}, "todos os campos são obrigatórios"
	}

	start, ok := dateutil.ParseBR(req.StartDate)
	if !ok {
		return model.ShowCityEntry{}, "data inicial inválida"
	}
	end, ok := dateutil.ParseBR(req.EndDate)
	if !ok {
		return model.ShowCityEntry{}, "data final inválida"
	}
	if start.After(end) {
		return model.ShowCityEntry{}, "Data inicial deve ser anterior à data final"
	}

	return model.ShowCityEntry{
		City:      req.City,
		Show:      req.Show,
		StartDate: start,
		EndDate:   end,
	}, ""
}

// ListRegistry lista todos os cadastros, conferindo o armazenamento primário
// antes da leitura
// GET /api/registry
func (h *Handler) ListRegistry(c *gin.Context) {
	h.registry.VerifyAndRecover()

	entries := h.registry.GetAll()
	views := make([]registryEntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, toEntryView(e))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cadastros": views})
}

// ListRegistryCities lista as cidades únicas do cadastro
// GET /api/registry/cities
func (h *Handler) ListRegistryCities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "cidades": h.registry.Cities()})
}

// CreateRegistryEntry adiciona um cadastro
// POST /api/registry
func (h *Handler) CreateRegistryEntry(c *gin.Context) {
	var req registryEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "corpo da requisição inválido"})
		return
	}

	entry, msg := parseEntryRequest(req)
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
		return
	}

	created, err := h.registry.Add(entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Cadastro adicionado com sucesso",
		"cadastro": toEntryView(created),
	})
}

// UpdateRegistryEntry atualiza um cadastro existente
// PUT /api/registry/:id
func (h *Handler) UpdateRegistryEntry(c *gin.Context) {
	var req registryEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "corpo da requisição inválido"})
		return
	}

	entry, msg := parseEntryRequest(req)
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
		return
	}

	if err := h.registry.Update(c.Param("id"), entry); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cadastro atualizado com sucesso"})
}

// DeleteRegistryEntry remove um cadastro
// DELETE /api/registry/:id
func (h *Handler) DeleteRegistryEntry(c *gin.Context) {
	if err := h.registry.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cadastro removido com sucesso"})
}
