// Package layout flows a document onto fixed-size pages. Every primitive takes
// a Cursor and returns the next Cursor together with the draw operations it
// produced; nothing is drawn here, so pagination can be checked without a PDF
// engine.
package layout

// Geometry is the fixed page setup in millimetres.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
	Top        float64
	LineHeight float64
}

// A4 is the page setup shared by both reports.
var A4 = Geometry{PageWidth: 210, PageHeight: 297, Margin: 20, Top: 20, LineHeight: 7}

// ContentWidth is the width available to wrapped text.
func (g Geometry) ContentWidth() float64 { return g.PageWidth - 2*g.Margin }

// Bottom is the lowest baseline a line may be drawn at.
func (g Geometry) Bottom() float64 { return g.PageHeight - g.Margin }

// Font sizes in points and offsets in millimetres.
const (
	DocumentTitleSize = 18
	SectionTitleSize  = 14
	SubtitleSize      = 12
	GroupTitleSize    = 11
	BodySize          = 10
	NoteSize          = 9
	FooterSize        = 8

	BulletIndent     = 5
	NestedIndent     = 10
	BulletTextOffset = 5

	SeparatorCheck   = 5
	SeparatorAdvance = 3
	FooterCheck      = 10
)

// BulletMarker is the glyph drawn before bullet text.
const BulletMarker = "•"

// Style is a font style.
type Style string

const (
	Regular Style = ""
	Bold    Style = "B"
	Italic  Style = "I"
)

// Font is the face a line is drawn with. Family is fixed by the painter.
type Font struct {
	Style Style
	Size  float64
}

// Measurer reports the drawn width of text in millimetres.
type Measurer interface {
	Width(font Font, text string) float64
}

// Op is one positioned line of text.
type Op struct {
	Page int
	X    float64
	Y    float64
	Font Font
	Text string
}

// Cursor is the layout position: a 1-based page number and the baseline of
// the next line.
type Cursor struct {
	Page int
	Y    float64
}

// Layout holds the geometry and measurer. It carries no position state and
// is safe for concurrent use.
type Layout struct {
	Geometry Geometry
	Measurer Measurer
}

// New returns an A4 layout measuring text with m.
func New(m Measurer) Layout {
	return Layout{Geometry: A4, Measurer: m}
}

// Start is the cursor at the top of the first page.
func (l Layout) Start() Cursor {
	return Cursor{Page: 1, Y: l.Geometry.Top}
}

// ensure starts a new page when h more millimetres would cross the bottom
// margin.
func (l Layout) ensure(c Cursor, h float64) Cursor {
	if c.Y+h > l.Geometry.Bottom() {
		return Cursor{Page: c.Page + 1, Y: l.Geometry.Top}
	}
	return c
}

func (l Layout) heading(c Cursor, text string, font Font, advance float64) (Cursor, []Op) {
	var ops []Op
	for _, line := range Wrap(l.Measurer, font, text, l.Geometry.ContentWidth()) {
		c = l.ensure(c, font.Size)
		ops = append(ops, Op{Page: c.Page, X: l.Geometry.Margin, Y: c.Y, Font: font, Text: line})
		c.Y += advance
	}
	return c, ops
}

// Title draws a bold heading at size and advances by size/2+5.
func (l Layout) Title(c Cursor, text string, size float64) (Cursor, []Op) {
	return l.heading(c, text, Font{Style: Bold, Size: size}, size/2+5)
}

// Subtitle draws a bold heading at size and advances by size/2+3.
func (l Layout) Subtitle(c Cursor, text string, size float64) (Cursor, []Op) {
	return l.heading(c, text, Font{Style: Bold, Size: size}, size/2+3)
}

// Text wraps text to the content width less indent and draws one line per
// row, checking for a page break before each.
func (l Layout) Text(c Cursor, text string, size, indent float64) (Cursor, []Op) {
	font := Font{Style: Regular, Size: size}
	var ops []Op
	for _, line := range Wrap(l.Measurer, font, text, l.Geometry.ContentWidth()-indent) {
		c = l.ensure(c, l.Geometry.LineHeight)
		ops = append(ops, Op{Page: c.Page, X: l.Geometry.Margin + indent, Y: c.Y, Font: font, Text: line})
		c.Y += l.Geometry.LineHeight
	}
	return c, ops
}

// Bullet draws the marker at indent and the wrapped text at indent plus the
// bullet offset. Continuation lines re-check the page break.
func (l Layout) Bullet(c Cursor, text string, indent float64) (Cursor, []Op) {
	font := Font{Style: Regular, Size: BodySize}
	g := l.Geometry
	textX := g.Margin + indent + BulletTextOffset

	c = l.ensure(c, g.LineHeight)
	ops := []Op{{Page: c.Page, X: g.Margin + indent, Y: c.Y, Font: font, Text: BulletMarker}}
	for i, line := range Wrap(l.Measurer, font, text, g.ContentWidth()-indent-BulletTextOffset) {
		if i > 0 {
			c = l.ensure(c, g.LineHeight)
		}
		ops = append(ops, Op{Page: c.Page, X: textX, Y: c.Y, Font: font, Text: line})
		c.Y += g.LineHeight
	}
	return c, ops
}

// Separator leaves a small gap between blocks.
func (l Layout) Separator(c Cursor) Cursor {
	c = l.ensure(c, SeparatorCheck)
	c.Y += SeparatorAdvance
	return c
}

// Gap advances the cursor without drawing. The next primitive performs the
// page-break check.
func (l Layout) Gap(c Cursor, h float64) Cursor {
	c.Y += h
	return c
}

// Footer draws the small italic closing line.
func (l Layout) Footer(c Cursor, text string) (Cursor, []Op) {
	c = l.ensure(c, FooterCheck)
	op := Op{Page: c.Page, X: l.Geometry.Margin, Y: c.Y, Font: Font{Style: Italic, Size: FooterSize}, Text: text}
	c.Y += l.Geometry.LineHeight
	return c, []Op{op}
}
