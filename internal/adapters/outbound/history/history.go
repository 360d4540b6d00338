// Package history keeps a log of exports inside the artifact directory.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/abdidvp/transformspec/internal/domain"
)

const (
	historyFile = "history/exports.json"
	// DefaultLimit caps the entries kept per workspace.
	DefaultLimit = 100
)

// FileHistory implements domain.ExportHistory as a JSON array stored inside
// the workspace directory. The oldest entries are dropped past the limit.
type FileHistory struct {
	limit int
}

func New() *FileHistory {
	return &FileHistory{limit: DefaultLimit}
}

// WithLimit returns a history that keeps at most n entries. n <= 0 keeps
// everything.
func (h *FileHistory) WithLimit(n int) *FileHistory {
	return &FileHistory{limit: n}
}

func (h *FileHistory) Save(dir string, entry domain.ExportEntry) error {
	entries, err := h.Load(dir)
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	if h.limit > 0 && len(entries) > h.limit {
		entries = entries[len(entries)-h.limit:]
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding export history: %w", err)
	}

	fp := filepath.Join(dir, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}
	// Write then rename so a crash never leaves a truncated file.
	tmp := fp + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, fp); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", fp, err)
	}
	return nil
}

// Load returns the recorded exports, oldest first. A workspace without
// history has none.
func (h *FileHistory) Load(dir string) ([]domain.ExportEntry, error) {
	fp := filepath.Join(dir, historyFile)

	data, err := os.ReadFile(fp)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fp, err)
	}

	var entries []domain.ExportEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", fp, err)
	}
	return entries, nil
}
