// Package server monta o servidor HTTP: seleciona o backend de persistência,
// inicializa o cadastro e registra as rotas da API.
package server

import (
	"fmt"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/mariacarolk/socrates-dash-v2/internal/api"
	"github.com/mariacarolk/socrates-dash-v2/internal/config"
	"github.com/mariacarolk/socrates-dash-v2/internal/registry"
	"github.com/mariacarolk/socrates-dash-v2/internal/session"
)

// Server servidor HTTP
type Server struct {
	router   *gin.Engine
	registry *registry.Service
	api      *api.Handler
}

// NewServer cria o servidor
func NewServer(cfg *config.AppConfig) (*Server, error) {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		return nil, fmt.Errorf("preparar diretório de dados: %w", err)
	}

	store, err := newStore(cfg, dataDir)
	if err != nil {
		return nil, err
	}

	reg, err := registry.NewService(store)
	if err != nil {
		return nil, fmt.Errorf("carregar cadastro: %w", err)
	}
	reg.VerifyAndRecover()

	handler := api.NewHandler(cfg, reg, session.NewStore(), filepath.Join(dataDir, "uploads"))

	s := &Server{
		router:   gin.Default(),
		registry: reg,
		api:      handler,
	}
	s.setupRoutes()

	if cfg.Data.AutoBackup {
		reg.StartAutoSave()
	}

	return s, nil
}

// newStore escolhe o backend de persistência conforme a configuração
func newStore(cfg *config.AppConfig, dataDir string) (registry.Store, error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		store, err := registry.NewSQLStore(filepath.Join(dataDir, cfg.Storage.SQLiteDB))
		if err != nil {
			return nil, fmt.Errorf("abrir banco sqlite: %w", err)
		}
		return store, nil
	default:
		store, err := registry.NewFileStore(
			filepath.Join(dataDir, cfg.Storage.CSVFile),
			filepath.Join(dataDir, "backups"),
		)
		if err != nil {
			return nil, fmt.Errorf("abrir arquivo de cadastro: %w", err)
		}
		return store, nil
	}
}

// setupRoutes registra middleware e rotas
func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	group := s.router.Group("/api")
	{
		s.api.RegisterRoutes(group)
	}
}

// Run inicia o servidor
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// SaveNow persiste o cadastro imediatamente
func (s *Server) SaveNow() error {
	return s.registry.SaveNow()
}

// Shutdown interrompe o salvamento periódico e persiste o cadastro
func (s *Server) Shutdown() error {
	s.registry.StopAutoSave()
	return s.registry.SaveNow()
}

// GetRegistry acesso ao cadastro (usado em testes)
func (s *Server) GetRegistry() *registry.Service {
	return s.registry
}
