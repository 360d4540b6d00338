package domain

import "time"

// DocumentKind names one of the two reports.
type DocumentKind string

const (
	KindRequirements DocumentKind = "requirements"
	KindTechnical    DocumentKind = "technical"
)

// ValidDocumentKinds enumerates the report kinds in export order.
var ValidDocumentKinds = []DocumentKind{KindRequirements, KindTechnical}

// BaseName is the artifact file stem for the report.
func (k DocumentKind) BaseName() string {
	if k == KindTechnical {
		return "technical-details"
	}
	return "requirements-specification"
}

// Document is a renderer-neutral report. Markdown and PDF are both
// serializations of the same Document, so headings and numbering are decided
// once.
type Document struct {
	Kind        DocumentKind
	Title       string
	Sections    []Section
	GeneratedAt time.Time
}

// Section is a numbered top-level section.
type Section struct {
	Number      string
	Title       string
	Blocks      []Block
	Subsections []Subsection
}

func (s Section) Heading() string { return s.Number + ". " + s.Title }

// Subsection is a titled part of a section. Number is empty for unnumbered
// subsections.
type Subsection struct {
	Number string
	Title  string
	Blocks []Block
}

func (s Subsection) Heading() string {
	if s.Number == "" {
		return s.Title
	}
	return s.Number + " " + s.Title
}

// BlockKind selects how a block is drawn.
type BlockKind int

const (
	// BlockParagraph is free text, possibly multi-line.
	BlockParagraph BlockKind = iota
	// BlockSentinel is the placeholder drawn for an empty collection.
	BlockSentinel
	// BlockField is a single "Label: value" line.
	BlockField
	// BlockFieldList is a bulleted run of "Label: value" lines.
	BlockFieldList
	BlockBullets
	// BlockChecklist is drawn as unchecked task items.
	BlockChecklist
	// BlockNested is a label followed by indented items.
	BlockNested
	BlockTable
	// BlockGroups holds titled groups of detail lines (layer structure).
	BlockGroups
)

// Field is a labelled value.
type Field struct {
	Label string
	Value string
}

// Table is tabular data with a one-line summary per row for renderers that
// cannot draw tables.
type Table struct {
	Columns []string
	Rows    []TableRow
}

type TableRow struct {
	Cells   []string
	Summary string
	Notes   string
}

// Group is a titled list of details.
type Group struct {
	Title string
	Items []string
}

// Block is one unit of section content. Only the fields relevant to Kind are
// set.
type Block struct {
	Kind   BlockKind
	Text   string
	Label  string
	Fields []Field
	Items  []string
	Table  *Table
	Groups []Group
}

func ParagraphBlock(text string) Block { return Block{Kind: BlockParagraph, Text: text} }

func SentinelBlock(text string) Block { return Block{Kind: BlockSentinel, Text: text} }

func FieldBlock(label, value string) Block {
	return Block{Kind: BlockField, Fields: []Field{{Label: label, Value: value}}}
}

func FieldListBlock(fields ...Field) Block { return Block{Kind: BlockFieldList, Fields: fields} }

func BulletsBlock(items []string) Block { return Block{Kind: BlockBullets, Items: items} }

func ChecklistBlock(items []string) Block { return Block{Kind: BlockChecklist, Items: items} }

func NestedBlock(label string, items []string) Block {
	return Block{Kind: BlockNested, Label: label, Items: items}
}

func TableBlock(t Table) Block { return Block{Kind: BlockTable, Table: &t} }

func GroupsBlock(groups []Group) Block { return Block{Kind: BlockGroups, Groups: groups} }

// Headings lists every section and subsection heading in document order.
func (d *Document) Headings() []string {
	var out []string
	for _, s := range d.Sections {
		out = append(out, s.Heading())
		for _, sub := range s.Subsections {
			out = append(out, sub.Heading())
		}
	}
	return out
}

// FooterText is the final line of every rendered report.
func (d *Document) FooterText() string {
	return "Generated on " + d.GeneratedAt.Format(TimestampLayout)
}

// TimestampLayout formats the generation time in the footer.
const TimestampLayout = "1/2/2006, 3:04:05 PM"
