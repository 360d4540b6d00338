// Package docconv extracts plain text from uploaded PDF and DOCX documents so
// the code-generation agent can read them.
package docconv

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/abdidvp/transformspec/internal/domain"
)

// Converter implements domain.DocumentConverter.
type Converter struct{}

func New() *Converter { return &Converter{} }

// Supports reports whether name has a convertible extension.
func (c *Converter) Supports(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".docx":
		return true
	}
	return false
}

// ToText extracts the text of a PDF (pages separated by a blank line) or a
// DOCX (paragraphs, then table rows with tab-separated cells).
func (c *Converter) ToText(name string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		text, err := pdfText(data)
		if err != nil {
			return "", fmt.Errorf("converting %s: %w", name, err)
		}
		return text, nil
	case ".docx":
		text, err := docxText(data)
		if err != nil {
			return "", fmt.Errorf("converting %s: %w", name, err)
		}
		return text, nil
	}
	return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedDocument, name)
}

// TextName is the name of the text conversion of name: "uan.pdf" -> "uan.txt".
func TextName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".txt"
}

func pdfText(data []byte) (text string, err error) {
	// The reader panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		s, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, s)
	}
	return strings.Join(pages, "\n\n"), nil
}

const documentPart = "word/document.xml"

func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	for _, f := range zr.File {
		if f.Name != documentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		defer rc.Close()
		return walkDocument(rc)
	}
	return "", fmt.Errorf("missing %s", documentPart)
}

// walkDocument collects body paragraphs and top-level table rows from a
// WordprocessingML document part.
func walkDocument(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var (
		paragraphs []string
		rows       []string
		cells      []string
		cell       []string
		para       strings.Builder
		tblDepth   int
		inRun      bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tblDepth++
			case "tr":
				if tblDepth == 1 {
					cells = nil
				}
			case "tc":
				if tblDepth == 1 {
					cell = nil
				}
			case "p":
				para.Reset()
			case "r":
				inRun = true
			case "t":
				var s string
				if err := dec.DecodeElement(&s, &t); err != nil {
					return "", err
				}
				para.WriteString(s)
			case "tab":
				if inRun {
					para.WriteString("\t")
				}
			case "br", "cr":
				if inRun {
					para.WriteString("\n")
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "r":
				inRun = false
			case "p":
				if tblDepth == 0 {
					paragraphs = append(paragraphs, para.String())
				} else {
					cell = append(cell, para.String())
				}
			case "tc":
				if tblDepth == 1 {
					cells = append(cells, strings.Join(cell, "\n"))
				}
			case "tr":
				if tblDepth == 1 {
					rows = append(rows, strings.Join(cells, "\t"))
				}
			case "tbl":
				tblDepth--
			}
		}
	}

	return strings.Join(append(paragraphs, rows...), "\n"), nil
}
