package application

import (
	"fmt"
	"os"

	"github.com/abdidvp/transformspec/internal/domain"
)

// SpecService loads, checks and edits spec files.
type SpecService struct {
	loader    domain.SpecLoader
	writer    domain.SpecWriter
	validator domain.SpecValidator
}

func NewSpecService(loader domain.SpecLoader, writer domain.SpecWriter, validator domain.SpecValidator) *SpecService {
	return &SpecService{loader: loader, writer: writer, validator: validator}
}

func (s *SpecService) Load(path string) (*domain.TransformationSpec, error) {
	spec, err := s.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading spec: %w", err)
	}
	return spec, nil
}

// Validate returns the wizard checks that fail for spec.
func (s *SpecService) Validate(spec *domain.TransformationSpec) []domain.ValidationIssue {
	return s.validator.Validate(spec)
}

// Init writes a fresh spec for target to path. It refuses to overwrite an
// existing file unless force is set.
func (s *SpecService) Init(path, target string, force bool) (*domain.TransformationSpec, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return nil, fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	spec := domain.NewSpec()
	spec.TargetProject = target
	if err := s.writer.Save(path, spec); err != nil {
		return nil, fmt.Errorf("writing spec: %w", err)
	}
	return spec, nil
}

// AddItem appends item to the named list and saves the file. Blank items
// leave the spec unchanged.
func (s *SpecService) AddItem(path, list, item string) ([]string, error) {
	return s.editList(path, list, func(items []string) ([]string, error) {
		return domain.AppendItem(items, item), nil
	})
}

// RemoveItem deletes the element at index from the named list and saves the
// file.
func (s *SpecService) RemoveItem(path, list string, index int) ([]string, error) {
	return s.editList(path, list, func(items []string) ([]string, error) {
		return domain.RemoveAt(items, index)
	})
}

func (s *SpecService) editList(path, list string, edit func([]string) ([]string, error)) ([]string, error) {
	spec, err := s.Load(path)
	if err != nil {
		return nil, err
	}
	items, err := spec.StringList(list)
	if err != nil {
		return nil, err
	}
	updated, err := edit(*items)
	if err != nil {
		return nil, err
	}
	*items = updated
	if err := s.writer.Save(path, spec); err != nil {
		return nil, fmt.Errorf("writing spec: %w", err)
	}
	return updated, nil
}
