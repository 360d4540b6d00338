package domain_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/transformspec/internal/domain"
)

func TestStringList_AddressesEveryName(t *testing.T) {
	s := domain.NewSpec()
	for _, name := range domain.StringListNames {
		l, err := s.StringList(name)
		require.NoError(t, err, name)
		*l = append(*l, name)
	}
	assert.Equal(t, []string{"must_follow"}, s.MustFollow)
	assert.Equal(t, []string{"transformation_type"}, s.TransformationType)

	_, err := s.StringList("colours")
	assert.ErrorContains(t, err, `unknown list "colours"`)
}

func TestAppendItem(t *testing.T) {
	list := domain.AppendItem(nil, "  SOLID ")
	list = domain.AppendItem(list, "   ")
	list = domain.AppendItem(list, "DRY")
	assert.Equal(t, []string{"SOLID", "DRY"}, list)
}

func TestRemoveAt(t *testing.T) {
	list := []string{"a", "b", "c"}

	out, err := domain.RemoveAt(list, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, out)
	assert.Equal(t, []string{"a", "b", "c"}, list, "input is not modified")

	_, err = domain.RemoveAt(list, 3)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	_, err = domain.RemoveAt(list, -1)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
}

func TestRemoveAt_PreservesOrder(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("removing one item keeps the others in order", prop.ForAll(
		func(list []string, seed int) bool {
			if len(list) == 0 {
				return true
			}
			index := seed % len(list)
			out, err := domain.RemoveAt(list, index)
			if err != nil || len(out) != len(list)-1 {
				return false
			}
			for i, v := range out {
				want := list[i]
				if i >= index {
					want = list[i+1]
				}
				if v != want {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"OrderService":     "order-service",
		"OrderService API": "order-service-api",
		"legacy_billing":   "legacy-billing",
		"":                 "transformation",
		"  !! ":            "transformation",
	}
	for in, want := range tests {
		assert.Equal(t, want, domain.Slug(in), in)
	}
}
