package store

import (
	"encoding/json"
	"fmt"
	"os"

	"watchsweep/internal/arr"
	"watchsweep/pkg/models"
)

// Store persists reconciliation results as a flat JSON file so a later
// delete run can skip re-fetching. Single writer, single reader,
// sequential runs only.
type Store struct {
	path   string
	logger arr.Logger
}

// NewStore creates a new Store
func NewStore(path string, logger arr.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger,
	}
}

// Path returns the file the store reads and writes
func (s *Store) Path() string {
	return s.path
}

// Save writes the item list, replacing any previous contents
func (s *Store) Save(items []models.UnwatchedItem) error {
	jsonData, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal unwatched media: %w", err)
	}

	if err := os.WriteFile(s.path, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	s.logger.Info("📄 Saved %d unwatched item(s) to %s", len(items), s.path)
	return nil
}

// Load reads back a previously saved item list
func (s *Store) Load() ([]models.UnwatchedItem, error) {
	jsonData, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var items []models.UnwatchedItem
	if err := json.Unmarshal(jsonData, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.path, err)
	}

	s.logger.Debug("Loaded %d unwatched item(s) from %s", len(items), s.path)
	return items, nil
}
