// Package tui formats command results for the terminal with lipgloss.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdidvp/transformspec/internal/domain"
)

// ── Warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderExport summarizes the files an export wrote and any warnings.
func RenderExport(target string, result *domain.ExportResult) string {
	var b strings.Builder

	title := headerStyle.Render("transformspec")
	subtitle := dimStyle.Render("Export")
	project := titleStyle.Render(target)
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + project))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "  %s %s\n\n", titleStyle.Render("Files"), dimStyle.Render(shortenPath(result.Dir)))
	for _, f := range result.Files {
		fmt.Fprintf(&b, "    %s %s\n", passStyle.Render("●"), f)
	}

	b.WriteString("\n  " + separatorLine + "\n\n")

	if len(result.Warnings) == 0 {
		b.WriteString("  " + passStyle.Render("No warnings.") + "\n\n")
		return b.String()
	}
	fmt.Fprintf(&b, "  %s  %s\n\n", titleStyle.Render("Warnings"),
		warnTagStyle.Render(fmt.Sprintf("%d warnings", len(result.Warnings))))
	for _, w := range result.Warnings {
		fmt.Fprintf(&b, "    %s %s\n", warnTagStyle.Render("warn "), dimStyle.Render(w))
	}
	b.WriteString("\n")
	return b.String()
}

// RenderIssues lists failed wizard checks, or a pass line when there are none.
func RenderIssues(issues []domain.ValidationIssue) string {
	var b strings.Builder
	b.WriteString("\n")
	if len(issues) == 0 {
		b.WriteString("  " + passStyle.Render("✓ Spec is complete.") + "\n\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %s  %s\n\n", titleStyle.Render("Issues"),
		errorTagStyle.Render(fmt.Sprintf("%d errors", len(issues))))
	for _, issue := range issues {
		fmt.Fprintf(&b, "    %s %s\n", errorTagStyle.Render("error"), fileStyle.Render(issue.Field))
		fmt.Fprintf(&b, "         %s\n", dimStyle.Render(issue.Message))
	}
	b.WriteString("\n")
	return b.String()
}

func shortenPath(path string) string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) > 3 {
		return strings.Join(parts[len(parts)-3:], "/")
	}
	return path
}
