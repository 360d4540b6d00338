// Package markdown serializes composed reports as Markdown.
package markdown

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/abdidvp/transformspec/internal/domain"
)

const documentTemplate = `# {{.Title}}
{{- range $i, $s := .Sections}}
{{- if $i}}

---
{{- end}}

## {{$s.Heading}}
{{- if $s.Blocks}}

{{blocks $s.Blocks}}
{{- end}}
{{- range $s.Subsections}}

### {{.Heading}}
{{blocks .Blocks}}
{{- end}}
{{- end}}

---

*{{.FooterText}}*
`

var tmpl = template.Must(template.New("document").Funcs(template.FuncMap{
	"blocks": renderBlocks,
}).Parse(documentTemplate))

// Renderer implements domain.TextRenderer.
type Renderer struct{}

func New() *Renderer { return &Renderer{} }

// Render returns the Markdown text of doc. The last line is the generation
// footer.
func (r *Renderer) Render(doc *domain.Document) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("rendering markdown: %w: document is nil", domain.ErrInvalidSpec)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}

func renderBlocks(blocks []domain.Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, renderBlock(b))
	}
	return strings.Join(parts, "\n\n")
}

func renderBlock(b domain.Block) string {
	var sb strings.Builder
	switch b.Kind {
	case domain.BlockParagraph, domain.BlockSentinel:
		sb.WriteString(b.Text)
	case domain.BlockField:
		for i, f := range b.Fields {
			if i > 0 {
				sb.WriteString("\n")
			}
			fmt.Fprintf(&sb, "**%s:** %s", f.Label, f.Value)
		}
	case domain.BlockFieldList:
		lines := make([]string, 0, len(b.Fields))
		for _, f := range b.Fields {
			lines = append(lines, fmt.Sprintf("- **%s:** %s", f.Label, f.Value))
		}
		sb.WriteString(strings.Join(lines, "\n"))
	case domain.BlockBullets:
		sb.WriteString(list("- ", b.Items))
	case domain.BlockChecklist:
		sb.WriteString(list("- [ ] ", b.Items))
	case domain.BlockNested:
		fmt.Fprintf(&sb, "- **%s:**\n%s", b.Label, list("  - ", b.Items))
	case domain.BlockTable:
		writeTable(&sb, b.Table)
	case domain.BlockGroups:
		groups := make([]string, 0, len(b.Groups))
		for _, g := range b.Groups {
			groups = append(groups, "#### "+g.Title+"\n"+list("- ", g.Items))
		}
		sb.WriteString(strings.Join(groups, "\n\n"))
	}
	return sb.String()
}

func list(prefix string, items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, prefix+item)
	}
	return strings.Join(lines, "\n")
}

func writeTable(sb *strings.Builder, t *domain.Table) {
	sb.WriteString("| " + strings.Join(t.Columns, " | ") + " |\n")
	rule := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		rule[i] = strings.Repeat("-", len(c)+2)
	}
	sb.WriteString("|" + strings.Join(rule, "|") + "|")
	for _, row := range t.Rows {
		cells := make([]string, len(row.Cells))
		for i, c := range row.Cells {
			cells[i] = cell(c)
		}
		sb.WriteString("\n| " + strings.Join(cells, " | ") + " |")
	}
}

var cellReplacer = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ")

func cell(s string) string { return cellReplacer.Replace(s) }
