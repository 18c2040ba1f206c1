package config

import "testing"

func TestValidateBackend(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("configuração padrão inválida: %v", err)
	}

	cfg.Storage.Backend = "sqlite"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sqlite deveria ser aceito: %v", err)
	}

	cfg.Storage.Backend = "mysql"
	if err := cfg.Validate(); err == nil {
		t.Fatal("esperava erro para backend desconhecido")
	}
}

func TestValidateUploadLimit(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Upload.MaxSizeMB = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("esperava erro para limite de upload zerado")
	}
}

func TestAllowedExtension(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cases := []struct {
		filename string
		want     bool
	}{
		{"faturamento.xlsx", true},
		{"faturamento.XLSX", true},
		{"planilha.xls", true},
		{"dados.csv", false},
		{"semextensao", false},
	}
	for _, c := range cases {
		if got := cfg.AllowedExtension(c.filename); got != c.want {
			t.Fatalf("AllowedExtension(%q) = %v, esperava %v", c.filename, got, c.want)
		}
	}
}

func TestMaxUploadBytes(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Upload.MaxSizeMB = 16
	if got := cfg.MaxUploadBytes(); got != 16<<20 {
		t.Fatalf("MaxUploadBytes = %d", got)
	}
}
