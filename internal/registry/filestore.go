package registry

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mariacarolk/socrates-dash-v2/internal/dateutil"
	"github.com/mariacarolk/socrates-dash-v2/internal/model"
)

// csvHeader cabeçalho do arquivo de cadastro (quatro campos, datas DD/MM/YYYY)
var csvHeader = []string{"CIDADE", "CIRCO", "DATA_INICIO", "DATA_FIM"}

// maxTimestampedBackups quantidade de backups com timestamp retidos
const maxTimestampedBackups = 10

// FileStore backend de arquivo plano (CSV) com backups rotativos
type FileStore struct {
	path      string
	backupDir string
}

// NewFileStore cria o backend de arquivo; o diretório de backups é criado de
// imediato
func NewFileStore(path, backupDir string) (*FileStore, error) {
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return nil, fmt.Errorf("falha ao criar pasta de backup: %w", err)
	}
	return &FileStore{path: path, backupDir: backupDir}, nil
}

// Backend identifica o backend
func (f *FileStore) Backend() string {
	return "file"
}

// Load lê o CSV completo na ordem do arquivo. Linhas com datas inválidas ou
// com início depois do fim são puladas com aviso, nunca fatais.
func (f *FileStore) Load() ([]model.ShowCityEntry, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("falha ao abrir %s: %w", f.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var entries []model.ShowCityEntry
	first := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("falha ao ler %s: %w", f.path, err)
		}
		if first {
			first = false
			continue // cabeçalho
		}
		if len(row) < 4 {
			log.Printf("aviso: linha incompleta no cadastro ignorada: %v", row)
			continue
		}

		start, okStart := dateutil.ParseBR(strings.TrimSpace(row[2]))
		end, okEnd := dateutil.ParseBR(strings.TrimSpace(row[3]))
		if !okStart || !okEnd {
			log.Printf("aviso: datas inválidas no cadastro ignoradas: %v", row)
			continue
		}
		if start.After(end) {
			log.Printf("aviso: datas inconsistentes para %s em %s: %s > %s",
				row[1], row[0], dateutil.FormatBR(start), dateutil.FormatBR(end))
			continue
		}

		entries = append(entries, model.ShowCityEntry{
			ID:        uuid.New().String(),
			City:      strings.TrimSpace(row[0]),
			Show:      strings.TrimSpace(row[1]),
			StartDate: start,
			EndDate:   end,
		})
	}

	return entries, nil
}

// Save grava o estado completo no CSV, criando backup do arquivo anterior
func (f *FileStore) Save(entries []model.ShowCityEntry) error {
	f.backup()

	file, err := os.Create(f.path)
	if err != nil {
		return fmt.Errorf("falha ao criar %s: %w", f.path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("falha ao gravar cabeçalho: %w", err)
	}
	for _, e := range entries {
		row := []string{e.City, e.Show, dateutil.FormatBR(e.StartDate), dateutil.FormatBR(e.EndDate)}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("falha ao gravar cadastro: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("falha ao descarregar cadastro: %w", err)
	}
	return nil
}

// Recover restaura o CSV primário a partir do backup mais recente quando o
// arquivo sumiu ou está vazio enquanto a memória tem dados
func (f *FileStore) Recover(memoryCount int) (bool, error) {
	_, err := os.Stat(f.path)
	missing := os.IsNotExist(err)
	if err != nil && !missing {
		return false, err
	}

	needsRecovery := missing
	if !missing && memoryCount > 0 {
		rows, loadErr := f.Load()
		if loadErr != nil || len(rows) == 0 {
			needsRecovery = true
		}
	}
	if !needsRecovery {
		return false, nil
	}

	backup := f.latestBackupPath()
	if backup == "" {
		if missing && memoryCount == 0 {
			// Primeira execução: não há nada para recuperar
			return false, nil
		}
		return false, fmt.Errorf("nenhum backup encontrado")
	}

	log.Printf("recuperando cadastro do backup: %s", backup)
	if err := copyFile(backup, f.path); err != nil {
		return false, fmt.Errorf("falha ao restaurar backup: %w", err)
	}
	return true, nil
}

// backup copia o CSV atual para o backup "latest" e para um backup com
// timestamp, limpando os antigos
func (f *FileStore) backup() {
	if _, err := os.Stat(f.path); err != nil {
		return
	}

	base := filepath.Base(f.path)
	latest := filepath.Join(f.backupDir, base+".backup")
	if err := copyFile(f.path, latest); err != nil {
		log.Printf("falha ao criar backup: %v", err)
		return
	}

	stamp := time.Now().Format("20060102_150405")
	timestamped := filepath.Join(f.backupDir, fmt.Sprintf("%s.backup_%s", base, stamp))
	if err := copyFile(f.path, timestamped); err != nil {
		log.Printf("falha ao criar backup com timestamp: %v", err)
	}

	f.cleanupOldBackups()
}

// cleanupOldBackups mantém apenas os backups com timestamp mais recentes
func (f *FileStore) cleanupOldBackups() {
	prefix := filepath.Base(f.path) + ".backup_"
	items, err := os.ReadDir(f.backupDir)
	if err != nil {
		return
	}

	var names []string
	for _, item := range items {
		if strings.HasPrefix(item.Name(), prefix) {
			names = append(names, item.Name())
		}
	}
	// O timestamp no nome ordena cronologicamente
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	for _, name := range names[min(len(names), maxTimestampedBackups):] {
		if err := os.Remove(filepath.Join(f.backupDir, name)); err != nil {
			log.Printf("falha ao remover backup antigo %s: %v", name, err)
		}
	}
}

// latestBackupPath caminho do backup mais recente, preferindo o "latest"
func (f *FileStore) latestBackupPath() string {
	base := filepath.Base(f.path)
	latest := filepath.Join(f.backupDir, base+".backup")
	if _, err := os.Stat(latest); err == nil {
		return latest
	}

	prefix := base + ".backup_"
	items, err := os.ReadDir(f.backupDir)
	if err != nil {
		return ""
	}
	var names []string
	for _, item := range items {
		if strings.HasPrefix(item.Name(), prefix) {
			names = append(names, item.Name())
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)
	return filepath.Join(f.backupDir, names[len(names)-1])
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}
