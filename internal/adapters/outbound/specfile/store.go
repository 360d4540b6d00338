// Package specfile reads and writes TransformationSpec files in YAML or JSON.
package specfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/abdidvp/transformspec/internal/domain"
)

// Store implements domain.SpecLoader, domain.SpecDecoder and
// domain.SpecWriter.
type Store struct{}

// New creates a Store.
func New() *Store { return &Store{} }

// Load reads the spec at path. Files ending in .json are decoded as JSON,
// everything else as YAML. Referenced documents without inline content are
// read relative to the spec file; missing documents are left empty and
// reported later by the export.
func (s *Store) Load(path string) (*domain.TransformationSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	spec, err := Decode(path, data)
	if err != nil {
		return nil, err
	}
	resolveDocuments(spec, filepath.Dir(path))
	return spec, nil
}

// Decode implements domain.SpecDecoder.
func (s *Store) Decode(name string, data []byte) (*domain.TransformationSpec, error) {
	return Decode(name, data)
}

// Decode parses a spec, choosing the format from name's extension. The
// result is normalized and every coding standard has an ID.
func Decode(name string, data []byte) (*domain.TransformationSpec, error) {
	spec := domain.NewSpec()
	if isJSON(name) {
		if err := json.Unmarshal(data, spec); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filepath.Base(name), err)
		}
	} else {
		if err := yaml.Unmarshal(data, spec); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filepath.Base(name), err)
		}
	}
	spec.Normalize()
	for i := range spec.CodingStandardDocuments {
		if spec.CodingStandardDocuments[i].ID == "" {
			spec.CodingStandardDocuments[i].ID = uuid.NewString()
		}
	}
	return spec, nil
}

// Save writes spec to path, creating parent directories. Document contents
// are only kept in JSON files.
func (s *Store) Save(path string, spec *domain.TransformationSpec) error {
	if err := domain.CheckContract(spec); err != nil {
		return err
	}
	data, err := Encode(path, spec)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Encode serializes spec in the format implied by name.
func Encode(name string, spec *domain.TransformationSpec) ([]byte, error) {
	if isJSON(name) {
		data, err := json.MarshalIndent(spec, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", filepath.Base(name), err)
		}
		return append(data, '\n'), nil
	}
	data, err := yaml.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", filepath.Base(name), err)
	}
	return data, nil
}

func isJSON(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".json")
}

func resolveDocuments(spec *domain.TransformationSpec, base string) {
	load := func(ref domain.DocumentRef) domain.DocumentRef {
		if len(ref.Content) > 0 {
			return ref
		}
		if data, err := readRelative(base, ref.DisplayPath()); err == nil {
			ref.Content = data
		}
		return ref
	}

	for _, o := range []*domain.Optional[domain.DocumentRef]{
		&spec.RequirementsSpecDocument, &spec.UANDocument, &spec.UADDocument,
	} {
		if d, ok := o.Get(); ok {
			*o = domain.Some(load(d))
		}
	}
	for i, cs := range spec.CodingStandardDocuments {
		spec.CodingStandardDocuments[i].Content = load(cs.Ref()).Content
	}
}

func readRelative(base, name string) ([]byte, error) {
	if name == "" {
		return nil, errors.New("no file name")
	}
	if !filepath.IsAbs(name) {
		name = filepath.Join(base, name)
	}
	return os.ReadFile(name)
}
