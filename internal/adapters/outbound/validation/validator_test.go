package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/transformspec/internal/adapters/outbound/validation"
	"github.com/abdidvp/transformspec/internal/domain"
)

func validSpec() *domain.TransformationSpec {
	s := domain.NewSpec()
	s.TransformationType = []string{"API"}
	s.TargetProject = "OrderService"
	s.TransformationGoal = "Split the monolith"
	s.ArchitecturalPattern = "Clean Architecture"
	return s
}

func fields(issues []domain.ValidationIssue) []string {
	var out []string
	for _, i := range issues {
		out = append(out, i.Field)
	}
	return out
}

func TestValidate_ValidSpec(t *testing.T) {
	assert.Empty(t, validation.New().Validate(validSpec()))
}

func TestValidate_FreshSpecMissesRequiredFields(t *testing.T) {
	issues := validation.New().Validate(domain.NewSpec())

	assert.Equal(t, []string{
		"transformationType",
		"targetProject",
		"transformationGoal",
		"architecturalPattern",
	}, fields(issues))
	assert.Equal(t, "this field is required", issues[1].Message)
}

func TestValidate_Coverage(t *testing.T) {
	v := validation.New()

	s := validSpec()
	s.UnitTestCoverage = "120"
	issues := v.Validate(s)
	require.Len(t, issues, 1)
	assert.Equal(t, "unitTestCoverage", issues[0].Field)
	assert.Equal(t, "must be between 0 and 100", issues[0].Message)

	s.UnitTestCoverage = "ninety"
	issues = v.Validate(s)
	require.Len(t, issues, 1)
	assert.Equal(t, "must be a number", issues[0].Message)

	s.UnitTestCoverage = ""
	assert.Empty(t, v.Validate(s))
}

func TestValidate_MigrationApproach(t *testing.T) {
	v := validation.New()

	s := validSpec()
	s.MigrationApproach = "Yolo"
	issues := v.Validate(s)
	require.Len(t, issues, 1)
	assert.Equal(t, "migrationApproach", issues[0].Field)
	assert.Contains(t, issues[0].Message, "Strangler Fig")

	s.MigrationApproach = domain.MigrationFeatureFlag
	assert.Empty(t, v.Validate(s))
}

func TestValidate_DocumentSource(t *testing.T) {
	s := validSpec()
	s.DocumentSource = "email"

	issues := validation.New().Validate(s)
	require.Len(t, issues, 1)
	assert.Equal(t, "documentUploadType", issues[0].Field)
}

func TestValidate_BlankTransformationType(t *testing.T) {
	s := validSpec()
	s.TransformationType = []string{""}

	issues := validation.New().Validate(s)
	require.Len(t, issues, 1)
	assert.Equal(t, "transformationType[0]", issues[0].Field)
}

func TestValidate_NilSpec(t *testing.T) {
	issues := validation.New().Validate(nil)
	require.Len(t, issues, 1)
	assert.Equal(t, "spec", issues[0].Field)
}
