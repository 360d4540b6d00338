// Package workspace writes exported artifacts into a project's agent
// directory.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store is a file-based implementation of domain.Workspace.
type Store struct {
	dirName string
}

// New creates a store that writes into <root>/<dirName>. A dotted dirName
// falls back to the undotted name when it cannot be created. An empty dirName
// writes directly into root.
func New(dirName string) *Store {
	return &Store{dirName: dirName}
}

// Prepare creates the artifact directory under root and returns its path.
func (s *Store) Prepare(root string) (string, error) {
	dir := filepath.Join(root, s.dirName)
	err := os.MkdirAll(dir, 0755)
	if err == nil {
		return dir, nil
	}

	if plain := strings.TrimPrefix(s.dirName, "."); plain != s.dirName && plain != "" {
		fallback := filepath.Join(root, plain)
		if ferr := os.MkdirAll(fallback, 0755); ferr == nil {
			return fallback, nil
		}
	}
	return "", fmt.Errorf("creating %s: %w", dir, err)
}

// Write stores data as dir/name and returns the written path. name must be
// a bare file name.
func (s *Store) Write(dir, name string, data []byte) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid artifact name %q", name)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
