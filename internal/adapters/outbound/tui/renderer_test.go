package tui_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/transformspec/internal/adapters/outbound/tui"
	"github.com/abdidvp/transformspec/internal/domain"
	"github.com/abdidvp/transformspec/internal/domain/outline"
)

func TestRenderExport_ListsFilesAndWarnings(t *testing.T) {
	out := tui.RenderExport("OrderService", &domain.ExportResult{
		Dir:      "/home/dev/orders/.kiro",
		Files:    []string{"requirements-specification.md", "technical-details.pdf"},
		Warnings: []string{"could not convert uan.docx"},
	})

	assert.Contains(t, out, "OrderService")
	assert.Contains(t, out, "orders/.kiro")
	assert.Contains(t, out, "requirements-specification.md")
	assert.Contains(t, out, "technical-details.pdf")
	assert.Contains(t, out, "1 warnings")
	assert.Contains(t, out, "could not convert uan.docx")
}

func TestRenderExport_NoWarnings(t *testing.T) {
	out := tui.RenderExport("OrderService", &domain.ExportResult{Dir: "out", Files: []string{"a.md"}})
	assert.Contains(t, out, "No warnings.")
}

func TestRenderIssues(t *testing.T) {
	assert.Contains(t, tui.RenderIssues(nil), "Spec is complete.")

	out := tui.RenderIssues([]domain.ValidationIssue{
		{Field: "targetProject", Message: "this field is required"},
	})
	assert.Contains(t, out, "1 errors")
	assert.Contains(t, out, "targetProject")
	assert.Contains(t, out, "this field is required")
}

func TestRenderOutline_ShowsEveryHeading(t *testing.T) {
	spec := domain.NewSpec()
	spec.TransformationType = []string{"API"}
	doc, err := outline.Technical(spec, time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC))
	require.NoError(t, err)

	out := tui.RenderOutline(doc, 2)

	assert.Contains(t, out, "Technical Details")
	assert.Contains(t, out, "2 pages")
	for _, h := range doc.Headings() {
		assert.Contains(t, out, h)
	}
	assert.Contains(t, out, "Generated on 3/14/2026, 3:09:26 PM")
}
