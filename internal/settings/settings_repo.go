package settings

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

//go:generate mockgen -source=settings_repo.go -destination=mock/settings_repo_mock.go -package=mock
type Repository interface {
	Load() (ConnectionSettings, error)
	Save(s ConnectionSettings) error
	Path() string
}

// fileRepository keeps the settings in a YAML file through viper.
type fileRepository struct {
	path string
	mu   sync.Mutex
}

func NewFileRepository(path string) Repository {
	return &fileRepository{path: path}
}

func (r *fileRepository) newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(r.path)
	v.SetConfigType("yaml")
	v.SetDefault("host", "localhost")
	v.SetDefault("port", DefaultPort)
	v.SetDefault("database", "")
	v.SetDefault("auth_mode", AuthModeSQL)
	v.SetDefault("username", "")
	v.SetDefault("password", "")
	v.SetDefault("encrypt", false)
	v.SetDefault("trust_server_certificate", true)
	return v
}

func (r *fileRepository) Path() string {
	return r.path
}

// Load returns the defaults when the file has not been written yet.
func (r *fileRepository) Load() (ConnectionSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := r.newViper()
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return ConnectionSettings{}, err
	}

	var s ConnectionSettings
	if err := v.Unmarshal(&s); err != nil {
		return ConnectionSettings{}, err
	}
	return s, nil
}

func (r *fileRepository) Save(s ConnectionSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}

	v := r.newViper()
	v.Set("host", s.Host)
	v.Set("port", s.Port)
	v.Set("database", s.Database)
	v.Set("auth_mode", s.AuthMode)
	v.Set("username", s.Username)
	v.Set("password", s.Password)
	v.Set("encrypt", s.Encrypt)
	v.Set("trust_server_certificate", s.TrustServerCertificate)

	return v.WriteConfigAs(r.path)
}
