// Package session retém os lotes importados e os relatórios gerados para
// recuperação por requisições posteriores via identificadores, em vez de um
// singleton compartilhado entre usuários.
package session

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mariacarolk/socrates-dash-v2/internal/model"
)

// Upload um lote importado retido em memória. O conjunto de registros é
// imutável e substituído por inteiro a cada novo upload.
type Upload struct {
	ID         string
	Filename   string
	Records    []model.RevenueRecord
	UploadedAt time.Time

	// relatório mais recente gerado a partir deste lote
	lastReportID string
}

// Report um relatório gerado, candidato único a exportações subsequentes do
// seu lote
type Report struct {
	ID          string
	UploadID    string
	Rows        []model.ReportRow
	GeneratedAt time.Time
}

// Store guarda uploads e relatórios por identificador, protegido por mutex:
// requisições concorrentes e o salvamento periódico compartilham o processo
type Store struct {
	mu      sync.RWMutex
	uploads map[string]*Upload
	reports map[string]*Report
}

// NewStore cria o armazenamento de sessão
func NewStore() *Store {
	return &Store{
		uploads: make(map[string]*Upload),
		reports: make(map[string]*Report),
	}
}

// PutUpload registra um lote importado e devolve seu identificador
func (s *Store) PutUpload(filename string, records []model.RevenueRecord) *Upload {
	s.mu.Lock()
	defer s.mu.Unlock()

	up := &Upload{
		ID:         uuid.New().String(),
		Filename:   filename,
		Records:    records,
		UploadedAt: time.Now(),
	}
	s.uploads[up.ID] = up
	return up
}

// GetUpload localiza um lote pelo identificador
func (s *Store) GetUpload(id string) (*Upload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	up, ok := s.uploads[id]
	if !ok {
		return nil, fmt.Errorf("nenhum dado importado encontrado")
	}
	return up, nil
}

// PutReport registra um relatório gerado; ele passa a ser o único candidato a
// exportação do seu lote
func (s *Store) PutReport(uploadID string, rows []model.ReportRow) (*Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	up, ok := s.uploads[uploadID]
	if !ok {
		return nil, fmt.Errorf("nenhum dado importado encontrado")
	}

	// Apenas o relatório mais recente de cada lote permanece exportável
	if up.lastReportID != "" {
		delete(s.reports, up.lastReportID)
	}

	rep := &Report{
		ID:          uuid.New().String(),
		UploadID:    uploadID,
		Rows:        rows,
		GeneratedAt: time.Now(),
	}
	s.reports[rep.ID] = rep
	up.lastReportID = rep.ID
	return rep, nil
}

// GetReport localiza um relatório pelo identificador
func (s *Store) GetReport(id string) (*Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rep, ok := s.reports[id]
	if !ok {
		return nil, fmt.Errorf("gere um relatório primeiro antes de exportar")
	}
	return rep, nil
}

// UploadCount quantidade de lotes retidos
func (s *Store) UploadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.uploads)
}

// Shows lista ordenada de circos únicos de um lote
func (u *Upload) Shows() []string {
	seen := make(map[string]struct{})
	var shows []string
	for _, r := range u.Records {
		if _, ok := seen[r.Show]; ok {
			continue
		}
		seen[r.Show] = struct{}{}
		shows = append(shows, r.Show)
	}
	sort.Strings(shows)
	return shows
}
