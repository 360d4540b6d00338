package layout

import "github.com/abdidvp/transformspec/internal/domain"

// Pages is the flowed form of a document.
type Pages struct {
	Ops   []Op
	Count int
}

// flow threads the cursor through the primitives while collecting ops.
type flow struct {
	l   Layout
	c   Cursor
	ops []Op
}

func (f *flow) emit(c Cursor, ops []Op) {
	f.c = c
	f.ops = append(f.ops, ops...)
}

// Flow lays out doc. Headings are drawn exactly as the document numbers
// them, so the paged and text forms agree.
func (l Layout) Flow(doc *domain.Document) Pages {
	f := &flow{l: l, c: l.Start()}

	f.emit(l.Title(f.c, doc.Title, DocumentTitleSize))
	f.c = l.Separator(f.c)

	for _, s := range doc.Sections {
		f.emit(l.Title(f.c, s.Heading(), SectionTitleSize))
		if len(s.Blocks) > 0 {
			f.blocks(s.Blocks)
			f.c = l.Separator(f.c)
		}
		for _, sub := range s.Subsections {
			f.emit(l.Subtitle(f.c, sub.Heading(), SubtitleSize))
			f.blocks(sub.Blocks)
			f.c = l.Separator(f.c)
		}
	}

	f.emit(l.Footer(f.c, doc.FooterText()))

	return Pages{Ops: f.ops, Count: f.c.Page}
}

func (f *flow) blocks(blocks []domain.Block) {
	for _, b := range blocks {
		f.block(b)
	}
}

func (f *flow) block(b domain.Block) {
	l := f.l
	switch b.Kind {
	case domain.BlockParagraph, domain.BlockSentinel:
		f.emit(l.Text(f.c, b.Text, BodySize, 0))
	case domain.BlockField:
		for _, fl := range b.Fields {
			f.emit(l.Text(f.c, fl.Label+": "+fl.Value, BodySize, 0))
		}
	case domain.BlockFieldList:
		for _, fl := range b.Fields {
			f.emit(l.Bullet(f.c, fl.Label+": "+fl.Value, BulletIndent))
		}
	case domain.BlockBullets, domain.BlockChecklist:
		for _, item := range b.Items {
			f.emit(l.Bullet(f.c, item, BulletIndent))
		}
	case domain.BlockNested:
		f.emit(l.Text(f.c, b.Label+":", BodySize, 0))
		for _, item := range b.Items {
			f.emit(l.Bullet(f.c, item, NestedIndent))
		}
	case domain.BlockTable:
		for _, row := range b.Table.Rows {
			f.emit(l.Bullet(f.c, row.Summary, BulletIndent))
			if row.Notes != "" {
				f.emit(l.Text(f.c, "Notes: "+row.Notes, NoteSize, NestedIndent))
			}
		}
	case domain.BlockGroups:
		for _, g := range b.Groups {
			f.emit(l.Subtitle(f.c, g.Title, GroupTitleSize))
			for _, item := range g.Items {
				f.emit(l.Bullet(f.c, item, NestedIndent))
			}
			f.c = l.Gap(f.c, SeparatorAdvance)
		}
	}
}
