package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdidvp/transformspec/internal/domain"
)

var (
	sectionStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	subsectionStyle = lipgloss.NewStyle().Foreground(fg)
	branchStyle     = faintStyle
)

// RenderOutline draws the section tree of doc with the page count of its
// paginated rendering.
func RenderOutline(doc *domain.Document, pages int) string {
	var b strings.Builder

	stats := dimStyle.Render(fmt.Sprintf("%d sections  ·  %d pages", len(doc.Sections), pages))
	b.WriteString(boxStyle.Render(headerStyle.Render(doc.Title) + "\n" + stats))
	b.WriteString("\n\n")

	for _, s := range doc.Sections {
		fmt.Fprintf(&b, "  %s\n", sectionStyle.Render(s.Heading()))
		for i, sub := range s.Subsections {
			branch := "├─"
			if i == len(s.Subsections)-1 {
				branch = "└─"
			}
			fmt.Fprintf(&b, "    %s %s\n", branchStyle.Render(branch), subsectionStyle.Render(sub.Heading()))
		}
	}

	b.WriteString("\n  " + faintStyle.Render(doc.FooterText()) + "\n\n")
	return b.String()
}
