package server

import (
	"testing"

	"github.com/mariacarolk/socrates-dash-v2/internal/config"
)

func newTestConfig(t *testing.T, backend string) *config.AppConfig {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Data.DataDir = t.TempDir()
	cfg.Data.AutoBackup = false
	cfg.Storage.Backend = backend
	return cfg
}

func TestNewServerFileBackend(t *testing.T) {
	s, err := NewServer(newTestConfig(t, "file"))
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	if got := s.GetRegistry().Backend(); got != "file" {
		t.Fatalf("backend = %q, esperava file", got)
	}
}

func TestNewServerSQLiteBackend(t *testing.T) {
	s, err := NewServer(newTestConfig(t, "sqlite"))
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	if got := s.GetRegistry().Backend(); got != "sqlite" {
		t.Fatalf("backend = %q, esperava sqlite", got)
	}
	if err := s.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
}
