package tui

import (
	"strings"

	"github.com/abdidvp/transformspec/internal/domain"
)

// RenderEvent formats one progress record. Agent output passes through
// unstyled; lifecycle records get a colored marker.
func RenderEvent(ev domain.ProgressEvent) string {
	msg := strings.TrimRight(ev.Message, "\n")
	switch ev.Type {
	case domain.EventOutput:
		return ev.Message
	case domain.EventStart:
		return headerStyle.Render("▶ "+msg) + "\n"
	case domain.EventInfo:
		return infoTagStyle.Render(msg) + "\n"
	case domain.EventComplete:
		return passStyle.Render("✓ "+msg) + "\n"
	case domain.EventCancelled:
		return warnStyle.Render("■ "+msg) + "\n"
	case domain.EventError:
		return failStyle.Render("✗ "+msg) + "\n"
	}
	return msg + "\n"
}

// RenderOutcome is the closing line of a transform run.
func RenderOutcome(outcome domain.Outcome, workingDir string) string {
	bar := faintStyle.Render(strings.Repeat("=", 60))
	switch outcome {
	case domain.OutcomeCompleted:
		return "\n" + bar + "\n" +
			passStyle.Render("✅ TRANSFORMATION COMPLETED SUCCESSFULLY!") + "\n" +
			bar + "\n\n" +
			dimStyle.Render("📁 Generated code location: "+strings.TrimRight(workingDir, "/")+"/src") + "\n" +
			dimStyle.Render("📄 Specification files: .kiro folder") + "\n\n"
	case domain.OutcomeEnded:
		return "\n" + warnStyle.Render("Stream ended without a completion message.") + "\n"
	case domain.OutcomeCancelled:
		return "\n" + warnStyle.Render("Transformation cancelled.") + "\n"
	}
	return "\n" + failStyle.Render("Transformation failed.") + "\n"
}
