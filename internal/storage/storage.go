package storage

import (
	"beeftest/internal/config"
	"beeftest/internal/domain"
)

// Storage persists and loads saved runs (e.g. for the failures viewer).
type Storage interface {
	Save(run *domain.RunRecord) error
	Load() (*domain.RunRecord, error)
}

// JSONStorage stores the last run in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

// New returns the MySQL storage when a database is configured and the JSON
// file storage otherwise.
func New(cfg *config.Config) Storage {
	if cfg.Database.Enabled() {
		return NewMySQLStorage(cfg)
	}
	return NewJSONStorage(cfg)
}
