package storage

import (
	"tcm/internal/config"
	"tcm/internal/domain"
)

// Storage persists and loads match reports (e.g. for the view command).
type Storage interface {
	Save(report *domain.MatchReport) error
	Load() (*domain.MatchReport, error)
}

// JSONStorage stores reports in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
