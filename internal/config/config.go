package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig configuração da aplicação
type AppConfig struct {
	Server  ServerConfig  `toml:"server"`
	Data    DataConfig    `toml:"data"`
	Storage StorageConfig `toml:"storage"`
	Upload  UploadConfig  `toml:"upload"`
}

// ServerConfig configuração do servidor
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig configuração de dados
type DataConfig struct {
	DataDir    string `toml:"data_dir"`
	AutoBackup bool   `toml:"auto_backup"`
}

// StorageConfig backend de persistência do cadastro circo-cidade
type StorageConfig struct {
	// Backend aceita "file" ou "sqlite"
	Backend  string `toml:"backend"`
	CSVFile  string `toml:"csv_file"`
	SQLiteDB string `toml:"sqlite_db"`
}

// UploadConfig limites de importação de planilhas
type UploadConfig struct {
	MaxSizeMB         int      `toml:"max_size_mb"`
	AllowedExtensions []string `toml:"allowed_extensions"`
}

// LoadConfigInfo metainformação do carregamento da configuração
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig configuração padrão
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20252,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir:    "data",
			AutoBackup: true,
		},
		Storage: StorageConfig{
			Backend:  "file",
			CSVFile:  "circos_cidades.csv",
			SQLiteDB: "socrates.db",
		},
		Upload: UploadConfig{
			MaxSizeMB:         16,
			AllowedExtensions: []string{".xlsx", ".xls"},
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir diretório onde está o executável
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo carrega config.toml e devolve metainformação
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		// sem diretório do executável, usa o diretório atual
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// sem arquivo de configuração, usa os padrões
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	// variáveis de ambiente sobrepõem o arquivo
	if v := os.Getenv("SOCRATES_STORAGE_BACKEND"); v != "" {
		config.Storage.Backend = v
	}
	if v := os.Getenv("SOCRATES_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}

	if err := config.Validate(); err != nil {
		return nil, info, err
	}

	return config, info, nil
}

// LoadConfig carrega a configuração de config.toml, localizado no mesmo
// diretório do executável
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// Validate rejeita combinações inválidas de configuração
func (c *AppConfig) Validate() error {
	switch strings.ToLower(c.Storage.Backend) {
	case "file", "sqlite":
	default:
		return fmt.Errorf("backend de armazenamento desconhecido: %q", c.Storage.Backend)
	}
	if c.Upload.MaxSizeMB <= 0 {
		return fmt.Errorf("limite de upload inválido: %d MB", c.Upload.MaxSizeMB)
	}
	return nil
}

// SaveConfig grava a configuração em config.toml
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// EnsureDataDir garante a existência do diretório de dados e seus
// subdiretórios, no mesmo diretório do executável
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := filepath.Join(exeDir, config.Data.DataDir)
	if filepath.IsAbs(config.Data.DataDir) {
		dataDir = config.Data.DataDir
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	subdirs := []string{"uploads", "exports", "backups"}
	for _, subdir := range subdirs {
		path := filepath.Join(dataDir, subdir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return "", err
		}
	}

	return dataDir, nil
}

// AllowedExtension verifica se a extensão do arquivo enviado é aceita
func (c *AppConfig) AllowedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range c.Upload.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// MaxUploadBytes limite de upload em bytes
func (c *AppConfig) MaxUploadBytes() int64 {
	return int64(c.Upload.MaxSizeMB) << 20
}
