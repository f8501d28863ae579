// Package persistence contains secondary adapters backed by local files
// rather than the database.
package persistence

import (
	"github.com/example/patrol/internal/config"
	"github.com/example/patrol/internal/ports/secondary"
)

// ConfigSelectionStore implements secondary.SelectionStore on top of the
// JSON config file, so the active selection survives between CLI
// invocations the way the UI pickers survived between taps.
type ConfigSelectionStore struct {
	dir string
}

// NewConfigSelectionStore creates a store writing to the given patrol
// directory (usually ~/.patrol).
func NewConfigSelectionStore(dir string) *ConfigSelectionStore {
	return &ConfigSelectionStore{dir: dir}
}

// LoadSelection reads the persisted selection. Unset fields are empty.
func (s *ConfigSelectionStore) LoadSelection() (*secondary.Selection, error) {
	cfg, err := config.LoadConfig(s.dir)
	if err != nil {
		return nil, err
	}
	return &secondary.Selection{
		Location: cfg.ActiveLocation,
		Shift:    cfg.ActiveShift,
	}, nil
}

// SaveSelection persists the selection without touching the report settings.
func (s *ConfigSelectionStore) SaveSelection(sel *secondary.Selection) error {
	cfg, err := config.LoadConfig(s.dir)
	if err != nil {
		return err
	}
	cfg.ActiveLocation = sel.Location
	cfg.ActiveShift = sel.Shift
	return config.SaveConfig(s.dir, cfg)
}
