package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/abdidvp/transformspec/internal/domain"
)

type holder struct {
	Doc domain.Optional[domain.DocumentRef] `json:"doc" yaml:"doc,omitempty"`
}

func TestOptional_JSON(t *testing.T) {
	data, err := json.Marshal(holder{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"doc":null}`, string(data))

	var h holder
	require.NoError(t, json.Unmarshal([]byte(`{"doc":{"fileName":""}}`), &h))
	doc, ok := h.Doc.Get()
	assert.True(t, ok, "an empty object is still present")
	assert.Empty(t, doc.FileName)

	require.NoError(t, json.Unmarshal([]byte(`{"doc":null}`), &h))
	assert.False(t, h.Doc.IsPresent())
}

func TestOptional_YAMLOmitsAbsent(t *testing.T) {
	data, err := yaml.Marshal(holder{})
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))

	data, err = yaml.Marshal(holder{Doc: domain.Some(domain.DocumentRef{FileName: "a.pdf"})})
	require.NoError(t, err)
	assert.Contains(t, string(data), "file_name: a.pdf")

	var h holder
	require.NoError(t, yaml.Unmarshal(data, &h))
	doc, ok := h.Doc.Get()
	require.True(t, ok)
	assert.Equal(t, "a.pdf", doc.FileName)
}
