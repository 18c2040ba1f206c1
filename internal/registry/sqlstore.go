package registry

import (
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mariacarolk/socrates-dash-v2/internal/model"
)

//go:embed schema.sql
var schemaFS embed.FS

// sqlDateLayout datas em colunas nativas (ISO) no backend relacional
const sqlDateLayout = "2006-01-02"

// SQLStore backend relacional (SQLite) do cadastro
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore abre o banco e garante o esquema
func NewSQLStore(dbPath string) (*SQLStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("falha ao criar diretório de dados: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir banco: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("falha ao conectar ao banco: %w", err)
	}

	// SQLite funciona melhor com conexão única
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	store := &SQLStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("falha ao inicializar esquema: %w", err)
	}
	return store, nil
}

// initSchema executa o schema.sql embutido
func (s *SQLStore) initSchema() error {
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("falha ao ler schema.sql: %w", err)
	}
	if _, err := s.db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("falha ao executar esquema: %w", err)
	}
	return nil
}

// Close encerra a conexão
func (s *SQLStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Backend identifica o backend
func (s *SQLStore) Backend() string {
	return "sqlite"
}

// Load lê todos os cadastros na ordem de inserção
func (s *SQLStore) Load() ([]model.ShowCityEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, cidade, circo, data_inicio, data_fim
		FROM circos_cidades
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("falha na consulta do cadastro: %w", err)
	}
	defer rows.Close()

	var entries []model.ShowCityEntry
	for rows.Next() {
		var e model.ShowCityEntry
		var start, end string
		if err := rows.Scan(&e.ID, &e.City, &e.Show, &start, &end); err != nil {
			return nil, fmt.Errorf("falha ao ler cadastro: %w", err)
		}
		e.StartDate, err = time.Parse(sqlDateLayout, start)
		if err != nil {
			return nil, fmt.Errorf("data de início inválida no banco: %w", err)
		}
		e.EndDate, err = time.Parse(sqlDateLayout, end)
		if err != nil {
			return nil, fmt.Errorf("data de fim inválida no banco: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao iterar cadastro: %w", err)
	}
	return entries, nil
}

// Save substitui o conteúdo da tabela pelo estado informado, em transação
func (s *SQLStore) Save(entries []model.ShowCityEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("falha ao abrir transação: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM circos_cidades`); err != nil {
		return fmt.Errorf("falha ao limpar cadastro: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO circos_cidades (id, position, cidade, circo, data_inicio, data_fim)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("falha ao preparar inserção: %w", err)
	}
	defer stmt.Close()

	for position, e := range entries {
		_, err := stmt.Exec(
			e.ID,
			position,
			e.City,
			e.Show,
			e.StartDate.Format(sqlDateLayout),
			e.EndDate.Format(sqlDateLayout),
		)
		if err != nil {
			return fmt.Errorf("falha ao inserir cadastro: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("falha ao confirmar transação: %w", err)
	}
	return nil
}
