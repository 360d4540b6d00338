package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/abdidvp/transformspec/internal/domain"
	"github.com/abdidvp/transformspec/internal/domain/outline"
)

// Format is an artifact serialization.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatPDF      Format = "pdf"
)

// ValidFormats lists the formats in export order.
var ValidFormats = []Format{FormatMarkdown, FormatPDF}

// ParseFormat accepts the format names and the "md" shorthand.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "pdf":
		return FormatPDF, nil
	}
	return "", fmt.Errorf("unknown format %q (valid: markdown, pdf)", s)
}

// Ext is the artifact file extension.
func (f Format) Ext() string {
	if f == FormatPDF {
		return ".pdf"
	}
	return ".md"
}

// ParseKind resolves a report kind name.
func ParseKind(s string) (domain.DocumentKind, error) {
	k := domain.DocumentKind(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range domain.ValidDocumentKinds {
		if k == valid {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown document kind %q (valid: requirements, technical)", s)
}

// Artifact is one rendered report.
type Artifact struct {
	Kind     domain.DocumentKind
	Format   Format
	Name     string
	MIMEType string
	Data     []byte
	// Pages is zero for structured text.
	Pages int
}

// RenderService composes reports and serializes them. Every render of one
// request shares a single timestamp.
type RenderService struct {
	markdown domain.TextRenderer
	pdf      domain.PagedRenderer
	now      func() time.Time
	log      logrus.FieldLogger
}

func NewRenderService(markdown domain.TextRenderer, pdf domain.PagedRenderer, log logrus.FieldLogger) *RenderService {
	return &RenderService{markdown: markdown, pdf: pdf, now: time.Now, log: log}
}

// WithClock returns a copy of s that reads the time from now.
func (s *RenderService) WithClock(now func() time.Time) *RenderService {
	c := *s
	c.now = now
	return &c
}

// Now reads the service clock.
func (s *RenderService) Now() time.Time { return s.now() }

// Compose builds the document model for kind.
func (s *RenderService) Compose(kind domain.DocumentKind, spec *domain.TransformationSpec) (*domain.Document, error) {
	return outline.Compose(kind, spec, s.now())
}

// Render produces a single artifact.
func (s *RenderService) Render(kind domain.DocumentKind, format Format, spec *domain.TransformationSpec) (*Artifact, error) {
	doc, err := s.Compose(kind, spec)
	if err != nil {
		return nil, err
	}
	return s.serialize(doc, format)
}

// RenderAll produces every kind in every format concurrently, in export
// order.
func (s *RenderService) RenderAll(ctx context.Context, spec *domain.TransformationSpec) ([]*Artifact, error) {
	if err := domain.CheckContract(spec); err != nil {
		return nil, err
	}
	at := s.now()

	out := make([]*Artifact, len(domain.ValidDocumentKinds)*len(ValidFormats))
	g, ctx := errgroup.WithContext(ctx)
	for i, kind := range domain.ValidDocumentKinds {
		doc, err := outline.Compose(kind, spec, at)
		if err != nil {
			return nil, err
		}
		for j, format := range ValidFormats {
			idx := i*len(ValidFormats) + j
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				a, err := s.serialize(doc, format)
				if err != nil {
					return err
				}
				out[idx] = a
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Markdown renders both reports as structured text.
func (s *RenderService) Markdown(spec *domain.TransformationSpec) ([]*Artifact, error) {
	return s.renderFormat(spec, FormatMarkdown)
}

// PDF renders both reports as paginated documents.
func (s *RenderService) PDF(spec *domain.TransformationSpec) ([]*Artifact, error) {
	return s.renderFormat(spec, FormatPDF)
}

func (s *RenderService) renderFormat(spec *domain.TransformationSpec, format Format) ([]*Artifact, error) {
	if err := domain.CheckContract(spec); err != nil {
		return nil, err
	}
	at := s.now()
	out := make([]*Artifact, 0, len(domain.ValidDocumentKinds))
	for _, kind := range domain.ValidDocumentKinds {
		doc, err := outline.Compose(kind, spec, at)
		if err != nil {
			return nil, err
		}
		a, err := s.serialize(doc, format)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// Instructions builds the code-generation payload.
func (s *RenderService) Instructions(spec *domain.TransformationSpec, names domain.ArtifactNames) (string, error) {
	return outline.Instructions(spec, names)
}

func (s *RenderService) serialize(doc *domain.Document, format Format) (*Artifact, error) {
	a := &Artifact{Kind: doc.Kind, Format: format, Name: doc.Kind.BaseName() + format.Ext()}
	switch format {
	case FormatMarkdown:
		text, err := s.markdown.Render(doc)
		if err != nil {
			return nil, fmt.Errorf("rendering %s markdown: %w", doc.Kind, err)
		}
		a.MIMEType = "text/markdown; charset=utf-8"
		a.Data = []byte(text)
	case FormatPDF:
		paged, err := s.pdf.Render(doc)
		if err != nil {
			return nil, fmt.Errorf("rendering %s pdf: %w", doc.Kind, err)
		}
		blob := paged.Blob()
		a.MIMEType = blob.MIMEType
		a.Data = blob.Data
		a.Pages = paged.PageCount()
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}

	s.log.WithFields(logrus.Fields{"kind": doc.Kind, "format": format, "bytes": len(a.Data)}).Debug("rendered report")
	return a, nil
}
