// Package validation checks the wizard's required fields with
// go-playground/validator.
package validation

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/abdidvp/transformspec/internal/domain"
)

// Validator implements domain.SpecValidator.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator. Field names in issues are the JSON names the
// wizard uses.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("coverage", validCoverage)
	_ = v.RegisterValidation("migration", validMigration)

	return &Validator{v: v}
}

// Validate returns one issue per failed check, in field order. A nil spec
// yields a single issue.
func (val *Validator) Validate(spec *domain.TransformationSpec) []domain.ValidationIssue {
	if spec == nil {
		return []domain.ValidationIssue{{Field: "spec", Message: "spec is missing"}}
	}
	err := val.v.Struct(spec)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []domain.ValidationIssue{{Field: "spec", Message: err.Error()}}
	}

	issues := make([]domain.ValidationIssue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, domain.ValidationIssue{Field: fieldPath(fe), Message: message(fe)})
	}
	return issues
}

// fieldPath drops the struct name prefix: "TransformationSpec.targetProject"
// becomes "targetProject".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return fmt.Sprintf("select at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "numeric":
		return "must be a number"
	case "coverage":
		return "must be between 0 and 100"
	case "migration":
		names := make([]string, len(domain.ValidMigrationApproaches))
		for i, m := range domain.ValidMigrationApproaches {
			names[i] = string(m)
		}
		return "must be one of: " + strings.Join(names, ", ")
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func validCoverage(fl validator.FieldLevel) bool {
	n, err := strconv.ParseFloat(fl.Field().String(), 64)
	return err == nil && n >= 0 && n <= 100
}

func validMigration(fl validator.FieldLevel) bool {
	got := domain.MigrationApproach(fl.Field().String())
	for _, m := range domain.ValidMigrationApproaches {
		if got == m {
			return true
		}
	}
	return false
}
