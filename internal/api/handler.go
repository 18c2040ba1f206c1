// Package api expõe a API HTTP do Sócrates Online sobre gin.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/mariacarolk/socrates-dash-v2/internal/config"
	"github.com/mariacarolk/socrates-dash-v2/internal/registry"
	"github.com/mariacarolk/socrates-dash-v2/internal/session"
)

// Handler processador da API
type Handler struct {
	cfg        *config.AppConfig
	registry   *registry.Service
	sessions   *session.Store
	uploadsDir string
}

// NewHandler cria o processador da API; uploadsDir recebe os arquivos
// temporários de importação
func NewHandler(cfg *config.AppConfig, reg *registry.Service, sessions *session.Store, uploadsDir string) *Handler {
	return &Handler{
		cfg:        cfg,
		registry:   reg,
		sessions:   sessions,
		uploadsDir: uploadsDir,
	}
}

// RegisterRoutes registra as rotas da API
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// estado do sistema
	router.GET("/status", h.GetStatus)

	// importação de planilhas
	router.POST("/upload", h.Upload)
	router.GET("/uploads/:id/shows", h.ListUploadShows)
	router.GET("/uploads/:id/associations", h.ListUploadAssociations)

	// cadastro circo-cidade
	router.GET("/registry", h.ListRegistry)
	router.POST("/registry", h.CreateRegistryEntry)
	router.PUT("/registry/:id", h.UpdateRegistryEntry)
	router.DELETE("/registry/:id", h.DeleteRegistryEntry)
	router.GET("/registry/cities", h.ListRegistryCities)

	// relatórios e exportação
	router.POST("/reports", h.CreateReport)
	router.GET("/reports/:id/export/:format", h.ExportReport)
}
