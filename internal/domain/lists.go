package domain

import (
	"fmt"
	"strings"

	"github.com/fatih/camelcase"
)

// StringListNames are the user-appended string lists, addressed by their
// YAML key.
var StringListNames = []string{
	"legacy_code_paths",
	"must_follow",
	"must_not_do",
	"preferred_approaches",
	"functional_success",
	"technical_success",
	"business_success",
	"transformation_type",
}

// StringList returns a pointer to the named string list so callers can
// append to or remove from it in place.
func (s *TransformationSpec) StringList(name string) (*[]string, error) {
	switch name {
	case "legacy_code_paths":
		return &s.LegacyCodePaths, nil
	case "must_follow":
		return &s.MustFollow, nil
	case "must_not_do":
		return &s.MustNotDo, nil
	case "preferred_approaches":
		return &s.PreferredApproaches, nil
	case "functional_success":
		return &s.FunctionalSuccess, nil
	case "technical_success":
		return &s.TechnicalSuccess, nil
	case "business_success":
		return &s.BusinessSuccess, nil
	case "transformation_type":
		return &s.TransformationType, nil
	}
	return nil, fmt.Errorf("unknown list %q (valid: %s)", name, strings.Join(StringListNames, ", "))
}

// AppendItem appends the trimmed item, ignoring blank input. Insertion order
// is the rendered order.
func AppendItem(list []string, item string) []string {
	item = strings.TrimSpace(item)
	if item == "" {
		return list
	}
	return append(list, item)
}

// RemoveAt returns a copy of list without the element at index.
func RemoveAt[T any](list []T, index int) ([]T, error) {
	if index < 0 || index >= len(list) {
		return list, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(list))
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:index]...)
	return append(out, list[index+1:]...), nil
}

// Slug turns a project name into a kebab-case file stem:
// "OrderService API" -> "order-service-api".
func Slug(name string) string {
	var parts []string
	for _, field := range strings.FieldsFunc(name, isSeparator) {
		for _, w := range camelcase.Split(field) {
			if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
				parts = append(parts, w)
			}
		}
	}
	if len(parts) == 0 {
		return "transformation"
	}
	return strings.Join(parts, "-")
}

func isSeparator(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	}
	return true
}
