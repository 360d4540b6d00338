// Package outline composes the requirements and technical reports from a
// TransformationSpec. It decides every heading, number, sentinel and field
// label; renderers only serialize the result.
package outline

import (
	"fmt"
	"strings"
	"time"

	"github.com/abdidvp/transformspec/internal/domain"
)

// NotSpecified is drawn for empty string fields.
const NotSpecified = "Not specified"

// Sentinels drawn in place of empty collections.
const (
	NoLegacyCodePaths      = "No legacy code paths specified."
	NoLayerStructure       = "No layer structure specified."
	NoInternalDependencies = "No internal dependencies specified."
	NoExternalSystems      = "No external systems specified."
	NoConstraints          = "No constraints specified."
	NoPreferredApproaches  = "No preferred approaches specified."
	NoFunctionalSuccess    = "No functional success criteria specified."
	NoBusinessSuccess      = "No business success criteria specified."
	NoTechnicalSuccess     = "No technical success criteria specified."
	NoReferenceDocuments   = "No reference documents specified."
)

// Compose builds the report of the given kind.
func Compose(kind domain.DocumentKind, spec *domain.TransformationSpec, at time.Time) (*domain.Document, error) {
	switch kind {
	case domain.KindRequirements:
		return Requirements(spec, at)
	case domain.KindTechnical:
		return Technical(spec, at)
	}
	return nil, fmt.Errorf("unknown document kind %q", kind)
}

// builder accumulates sections and owns the numbering pass.
type builder struct {
	doc *domain.Document
	num numbering
}

func newBuilder(kind domain.DocumentKind, title string, at time.Time) *builder {
	return &builder{doc: &domain.Document{Kind: kind, Title: title, GeneratedAt: at}}
}

func (b *builder) section(title string, blocks ...domain.Block) *sectionBuilder {
	b.doc.Sections = append(b.doc.Sections, domain.Section{
		Number: b.num.next(),
		Title:  title,
		Blocks: blocks,
	})
	return &sectionBuilder{b: b, idx: len(b.doc.Sections) - 1}
}

type sectionBuilder struct {
	b   *builder
	idx int
}

func (sb *sectionBuilder) add(sub domain.Subsection) *sectionBuilder {
	s := &sb.b.doc.Sections[sb.idx]
	s.Subsections = append(s.Subsections, sub)
	return sb
}

func (sb *sectionBuilder) sub(title string, blocks ...domain.Block) *sectionBuilder {
	return sb.add(domain.Subsection{Title: title, Blocks: blocks})
}

// numbered adds a subsection that takes the next subsection number.
func (sb *sectionBuilder) numbered(title string, blocks ...domain.Block) *sectionBuilder {
	return sb.add(domain.Subsection{
		Number: sb.b.num.nextSub(),
		Title:  title,
		Blocks: blocks,
	})
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotSpecified
	}
	return s
}

func textOr(s string) domain.Block {
	return domain.ParagraphBlock(orNotSpecified(s))
}

func bulletsOr(items []string, sentinel string) domain.Block {
	if len(items) == 0 {
		return domain.SentinelBlock(sentinel)
	}
	return domain.BulletsBlock(items)
}

func checklistOr(items []string, sentinel string) domain.Block {
	if len(items) == 0 {
		return domain.SentinelBlock(sentinel)
	}
	return domain.ChecklistBlock(items)
}

func transformationTypes(spec *domain.TransformationSpec) string {
	return orNotSpecified(strings.Join(spec.TransformationType, ", "))
}
