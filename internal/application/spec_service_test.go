package application_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/transformspec/internal/adapters/outbound/specfile"
	"github.com/abdidvp/transformspec/internal/adapters/outbound/validation"
	"github.com/abdidvp/transformspec/internal/application"
	"github.com/abdidvp/transformspec/internal/domain"
)

func specService() *application.SpecService {
	store := specfile.New()
	return application.NewSpecService(store, store, validation.New())
}

func TestSpecService_InitAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.yaml")
	svc := specService()

	_, err := svc.Init(path, "OrderService", false)
	require.NoError(t, err)

	spec, err := svc.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "OrderService", spec.TargetProject)

	var fields []string
	for _, issue := range svc.Validate(spec) {
		fields = append(fields, issue.Field)
	}
	assert.ElementsMatch(t, []string{"transformationType", "transformationGoal", "architecturalPattern"}, fields)

	_, err = svc.Init(path, "Other", false)
	require.Error(t, err)
	_, err = svc.Init(path, "Other", true)
	require.NoError(t, err)
}

func TestSpecService_AddAndRemoveItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.yaml")
	svc := specService()
	_, err := svc.Init(path, "OrderService", false)
	require.NoError(t, err)

	_, err = svc.AddItem(path, "must_follow", "  SOLID  ")
	require.NoError(t, err)
	_, err = svc.AddItem(path, "must_follow", "   ")
	require.NoError(t, err)
	items, err := svc.AddItem(path, "must_follow", "DRY")
	require.NoError(t, err)
	assert.Equal(t, []string{"SOLID", "DRY"}, items)

	items, err = svc.RemoveItem(path, "must_follow", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"DRY"}, items)

	spec, err := svc.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"DRY"}, spec.MustFollow)
}

func TestSpecService_ListErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.yaml")
	svc := specService()
	_, err := svc.Init(path, "OrderService", false)
	require.NoError(t, err)

	_, err = svc.RemoveItem(path, "must_follow", 3)
	require.ErrorIs(t, err, domain.ErrIndexOutOfRange)

	_, err = svc.AddItem(path, "favorite_colors", "blue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown list")
}
