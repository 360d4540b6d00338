// Package pdf paints flowed reports onto A4 pages with fpdf.
package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/abdidvp/transformspec/internal/domain"
	"github.com/abdidvp/transformspec/internal/domain/layout"
)

const (
	fontFamily = "Helvetica"
	mimeType   = "application/pdf"
)

// Renderer implements domain.PagedRenderer.
type Renderer struct{}

func New() *Renderer { return &Renderer{} }

// Render lays out doc and paints it. The creation date is the document's
// generation time, so a fixed clock yields identical bytes.
func (r *Renderer) Render(doc *domain.Document) (domain.PagedDocument, error) {
	if doc == nil {
		return nil, fmt.Errorf("rendering pdf: %w: document is nil", domain.ErrInvalidSpec)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(doc.GeneratedAt)
	pdf.SetModificationDate(doc.GeneratedAt)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("transformspec", false)

	m := newMeasurer(pdf)
	pages := layout.New(m).Flow(doc)

	current := 0
	for _, op := range pages.Ops {
		for current < op.Page {
			pdf.AddPage()
			current++
		}
		pdf.SetFont(fontFamily, string(op.Font.Style), op.Font.Size)
		pdf.Text(op.X, op.Y, m.translate(op.Text))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return &Document{data: buf.Bytes(), pages: pdf.PageCount()}, nil
}

// measurer measures with fpdf's core font metrics. Text is translated to
// cp1252 first, which is what gets painted.
type measurer struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
}

func newMeasurer(pdf *fpdf.Fpdf) measurer {
	return measurer{pdf: pdf, translate: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (m measurer) Width(font layout.Font, text string) float64 {
	m.pdf.SetFont(fontFamily, string(font.Style), font.Size)
	return m.pdf.GetStringWidth(m.translate(text))
}

// Document is a rendered PDF.
type Document struct {
	data  []byte
	pages int
}

// Bytes returns the PDF file contents.
func (d *Document) Bytes() []byte { return d.data }

// Blob returns the PDF as a MIME-typed payload.
func (d *Document) Blob() domain.Blob { return domain.Blob{MIMEType: mimeType, Data: d.data} }

// DataURI returns the PDF as a base64 data URI for inline display.
func (d *Document) DataURI() string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(d.data)
}

func (d *Document) PageCount() int { return d.pages }
