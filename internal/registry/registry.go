// Package registry mantém o cadastro de circos e cidades por período.
// A lista em memória é a fonte de verdade durante a execução; toda mutação é
// persistida no backend e verificada por releitura antes de ser confirmada.
package registry

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mariacarolk/socrates-dash-v2/internal/model"
)

// Store backend de persistência do cadastro, escolhido uma única vez na
// inicialização (arquivo plano ou relacional)
type Store interface {
	// Load lê todos os cadastros na ordem de inserção
	Load() ([]model.ShowCityEntry, error)
	// Save substitui o conteúdo persistido pelo estado informado
	Save(entries []model.ShowCityEntry) error
	// Backend identifica o backend para diagnóstico
	Backend() string
}

// Recoverer backends que sabem restaurar o arquivo primário a partir de backup
type Recoverer interface {
	// Recover tenta restaurar o armazenamento primário; memoryCount informa
	// quantos cadastros existem em memória para decidir se a restauração é
	// necessária
	Recover(memoryCount int) (bool, error)
}

// AutoSaveInterval intervalo do salvamento automático de segurança
const AutoSaveInterval = 5 * time.Minute

// Service serviço do cadastro circo-cidade
type Service struct {
	mu      sync.Mutex
	store   Store
	entries []model.ShowCityEntry
	stopCh  chan struct{}
	stopped sync.Once
}

// NewService cria o serviço e carrega o cadastro completo para a memória
func NewService(store Store) (*Service, error) {
	entries, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar cadastro: %w", err)
	}

	s := &Service{
		store:   store,
		entries: entries,
		stopCh:  make(chan struct{}),
	}
	log.Printf("cadastro carregado: %d registros (backend %s)", len(entries), store.Backend())
	return s, nil
}

// Backend identifica o backend em uso
func (s *Service) Backend() string {
	return s.store.Backend()
}

// GetAll devolve uma cópia de todos os cadastros na ordem de inserção
func (s *Service) GetAll() []model.ShowCityEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.ShowCityEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Count número de cadastros em memória
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Cities lista de cidades únicas, ordenada
func (s *Service) Cities() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{})
	var cities []string
	for _, e := range s.entries {
		if _, ok := seen[e.City]; ok {
			continue
		}
		seen[e.City] = struct{}{}
		cities = append(cities, e.City)
	}
	sort.Strings(cities)
	return cities
}

// Add acrescenta um cadastro, atribuindo uma chave substituta estável.
// Persistência ou verificação falhando, o estado em memória volta ao
// snapshot anterior e o erro é devolvido.
func (s *Service) Add(entry model.ShowCityEntry) (model.ShowCityEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = uuid.New().String()

	snapshot := s.snapshot()
	s.entries = append(s.entries, entry)

	if err := s.persistAndVerify(snapshot); err != nil {
		return model.ShowCityEntry{}, err
	}
	log.Printf("cadastro adicionado: %s em %s", entry.Show, entry.City)
	return entry, nil
}

// Update substitui os dados do cadastro identificado por id
func (s *Service) Update(id string, entry model.ShowCityEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("cadastro não encontrado")
	}

	entry.ID = id
	snapshot := s.snapshot()
	s.entries[idx] = entry

	if err := s.persistAndVerify(snapshot); err != nil {
		return err
	}
	log.Printf("cadastro atualizado: %s em %s", entry.Show, entry.City)
	return nil
}

// Delete remove o cadastro identificado por id
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("cadastro não encontrado")
	}

	removed := s.entries[idx]
	snapshot := s.snapshot()
	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)

	if err := s.persistAndVerify(snapshot); err != nil {
		return err
	}
	log.Printf("cadastro removido: %s em %s", removed.Show, removed.City)
	return nil
}

// VerifyAndRecover confere o armazenamento primário antes de operações de
// leitura pesada e restaura do backup quando necessário
func (s *Service) VerifyAndRecover() {
	s.mu.Lock()
	defer s.mu.Unlock()

	recoverer, ok := s.store.(Recoverer)
	if !ok {
		return
	}
	recovered, err := recoverer.Recover(len(s.entries))
	if err != nil {
		log.Printf("falha na verificação do cadastro: %v", err)
		return
	}
	if recovered {
		entries, err := s.store.Load()
		if err != nil {
			log.Printf("falha ao recarregar cadastro recuperado: %v", err)
			return
		}
		s.entries = entries
		log.Printf("cadastro recuperado do backup: %d registros", len(entries))
	}
}

// SaveNow persiste o estado atual imediatamente, se houver dados
func (s *Service) SaveNow() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		return nil
	}
	if err := s.store.Save(s.entries); err != nil {
		return fmt.Errorf("falha no salvamento: %w", err)
	}
	return nil
}

// StartAutoSave inicia o salvamento automático periódico, uma rede de
// segurança contra mutações não descarregadas
func (s *Service) StartAutoSave() {
	go func() {
		ticker := time.NewTicker(AutoSaveInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := s.SaveNow(); err != nil {
					log.Printf("erro no salvamento automático: %v", err)
				}
			case <-s.stopCh:
				return
			}
		}
	}()
	log.Printf("salvamento automático iniciado (a cada %s)", AutoSaveInterval)
}

// StopAutoSave interrompe o salvamento automático
func (s *Service) StopAutoSave() {
	s.stopped.Do(func() { close(s.stopCh) })
}

// snapshot copia o estado atual para eventual rollback; o chamador deve
// deter o mutex
func (s *Service) snapshot() []model.ShowCityEntry {
	snap := make([]model.ShowCityEntry, len(s.entries))
	copy(snap, s.entries)
	return snap
}

// indexOf localiza um cadastro pela chave substituta; o chamador deve deter
// o mutex
func (s *Service) indexOf(id string) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// persistAndVerify grava o estado em memória e confere, campo a campo e sem
// depender da ordem, que o persistido corresponde. Qualquer falha reverte a
// memória ao snapshot e tenta regravar o estado anterior. O chamador deve
// deter o mutex.
func (s *Service) persistAndVerify(snapshot []model.ShowCityEntry) error {
	rollback := func(cause error) error {
		s.entries = snapshot
		if err := s.store.Save(snapshot); err != nil {
			log.Printf("falha ao regravar snapshot após rollback: %v", err)
		}
		return cause
	}

	if err := s.store.Save(s.entries); err != nil {
		return rollback(fmt.Errorf("falha no salvamento: %w", err))
	}

	persisted, err := s.store.Load()
	if err != nil {
		return rollback(fmt.Errorf("falha na releitura de verificação: %w", err))
	}
	if !sameEntries(s.entries, persisted) {
		return rollback(fmt.Errorf("integridade comprometida: memória e armazenamento divergem"))
	}

	return nil
}

// sameEntries compara dois conjuntos de cadastros ignorando a ordem
func sameEntries(a, b []model.ShowCityEntry) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, ea := range a {
		found := false
		for j, eb := range b {
			if used[j] {
				continue
			}
			if ea.Equal(eb) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
