package application_test

import (
	"bytes"
	"slices"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/transformspec/internal/domain"
	"github.com/abdidvp/transformspec/internal/domain/layout"
)

type monospace struct{}

func (monospace) Width(_ layout.Font, text string) float64 {
	return 2 * float64(utf8.RuneCountInString(text))
}

// markdownHeadings returns the section and subsection headings of a rendered
// Markdown report.
func markdownHeadings(md []byte) []string {
	var out []string
	for _, line := range strings.Split(string(md), "\n") {
		switch {
		case strings.HasPrefix(line, "## "):
			out = append(out, strings.TrimPrefix(line, "## "))
		case strings.HasPrefix(line, "### "):
			out = append(out, strings.TrimPrefix(line, "### "))
		}
	}
	return out
}

// flowHeadings returns the section and subsection headings drawn on the
// paged form of doc.
func flowHeadings(pages layout.Pages) []string {
	var out []string
	for _, op := range pages.Ops {
		if op.Font.Style != layout.Bold {
			continue
		}
		if op.Font.Size == layout.SectionTitleSize || op.Font.Size == layout.SubtitleSize {
			out = append(out, op.Text)
		}
	}
	return out
}

func generatedSpec(project, goal string, items []string, api bool) *domain.TransformationSpec {
	s := domain.NewSpec()
	s.TransformationType = []string{"UI"}
	if api {
		s.TransformationType = []string{"API", "UI"}
	}
	s.TargetProject = project
	s.TransformationGoal = goal
	s.CoreBusinessLogic = strings.Join(items, " ")
	s.MustFollow = items
	s.FunctionalSuccess = items
	s.LegacyCodePaths = items
	for _, it := range items {
		s.LayerStructure = append(s.LayerStructure, domain.Layer{Name: it, Description: it + "\n" + goal})
		s.InternalDependencies = append(s.InternalDependencies, domain.InternalDependency{Name: it, Purpose: goal})
		s.ExternalSystems = append(s.ExternalSystems, domain.ExternalSystem{Name: it, ConnectionType: "REST"})
	}
	return s
}

func TestRenderService_EverySpecRendersWithMatchingHeadings(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 25
	properties := gopter.NewProperties(params)
	svc := renderService()
	l := layout.New(monospace{})

	properties.Property("markdown, pdf and flow agree on headings for any well-formed spec", prop.ForAll(
		func(project, goal string, items []string, api bool) bool {
			s := generatedSpec(project, goal, items, api)

			md, err := svc.Markdown(s)
			if err != nil || len(md) != 2 {
				return false
			}
			pdfs, err := svc.PDF(s)
			if err != nil || len(pdfs) != 2 {
				return false
			}

			for i, kind := range domain.ValidDocumentKinds {
				if !bytes.HasPrefix(pdfs[i].Data, []byte("%PDF-")) || pdfs[i].Pages < 1 {
					return false
				}
				doc, err := svc.Compose(kind, s)
				if err != nil {
					return false
				}
				want := doc.Headings()
				pages := l.Flow(doc)
				if !slices.Equal(want, markdownHeadings(md[i].Data)) || !slices.Equal(want, flowHeadings(pages)) {
					return false
				}
				if pages.Ops[len(pages.Ops)-1].Text != doc.FooterText() {
					return false
				}
			}
			return true
		},
		gen.AlphaString(),
		gen.AlphaString(),
		gen.SliceOfN(6, gen.Identifier()),
		gen.Bool(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestRenderService_MarkdownAndFlowHeadingsMatch(t *testing.T) {
	svc := renderService()
	s := orderService()

	md, err := svc.Markdown(s)
	require.NoError(t, err)

	for i, kind := range domain.ValidDocumentKinds {
		doc, err := svc.Compose(kind, s)
		require.NoError(t, err)

		drawn := flowHeadings(layout.New(monospace{}).Flow(doc))
		assert.Equal(t, markdownHeadings(md[i].Data), drawn, kind)
		assert.NotEmpty(t, drawn)
	}
}
