package codegen_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/transformspec/internal/adapters/outbound/codegen"
	"github.com/abdidvp/transformspec/internal/domain"
)

type stubConverter struct{}

func (stubConverter) Supports(string) bool { return true }

func (stubConverter) ToText(name string, _ []byte) (string, error) {
	if strings.HasPrefix(name, "broken") {
		return "", errors.New("bad document")
	}
	return "text of " + name, nil
}

// installAgent writes a fake agent into <home>/.local/bin.
func installAgent(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	home := t.TempDir()
	bin := filepath.Join(home, ".local", "bin")
	require.NoError(t, os.MkdirAll(bin, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(bin, "fake-agent"), []byte("#!/bin/sh\n"+script), 0755))
	return home
}

func collect(events *[]domain.ProgressEvent) domain.EventSink {
	return func(ev domain.ProgressEvent) { *events = append(*events, ev) }
}

func outputs(events []domain.ProgressEvent) []string {
	var out []string
	for _, ev := range events {
		if ev.Type == domain.EventOutput {
			out = append(out, ev.Message)
		}
	}
	return out
}

func TestRunner_StreamsAgentOutput(t *testing.T) {
	home := installAgent(t, `
printf '\033[32mgreen\033[0m line\n'
echo "args: $*"
echo "to stderr" >&2
exit 3
`)
	work := t.TempDir()
	runner := codegen.NewRunner("fake-agent", ".kiro", stubConverter{}).WithHome(home)

	var events []domain.ProgressEvent
	outcome, err := runner.Generate(context.Background(), domain.TransformRequest{KiroContent: "# Spec", WorkingDir: work}, collect(&events))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCompleted, outcome)

	require.GreaterOrEqual(t, len(events), 4)
	assert.Equal(t, domain.ProgressEvent{Type: domain.EventStart, Message: "Starting transformation..."}, events[0])
	assert.Equal(t, "Running fake-agent chat --no-interactive --trust-all-tools", events[1].Message)
	assert.Equal(t, strings.Repeat("-", 60), events[2].Message)
	assert.Equal(t, domain.ProgressEvent{Type: domain.EventComplete, Message: "Transformation complete!"}, events[len(events)-1])

	out := outputs(events)
	assert.Contains(t, out, "green line\n")
	assert.Contains(t, out, "args: chat --no-interactive --trust-all-tools #[[file:.kiro/transformation-spec.kiro]]\n")
	assert.Contains(t, out, "to stderr\n")
	assert.Equal(t, "\n[Process completed with exit code: 3]\n", out[len(out)-1])

	written, err := os.ReadFile(filepath.Join(work, ".kiro", "transformation-spec.kiro"))
	require.NoError(t, err)
	assert.Equal(t, "# Spec", string(written))
}

func TestRunner_ConvertsStagedDocumentsAndRewritesReferences(t *testing.T) {
	home := installAgent(t, "exit 0\n")
	work := t.TempDir()
	kiro := filepath.Join(work, ".kiro")
	require.NoError(t, os.MkdirAll(kiro, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(kiro, "uan.pdf"), []byte("%PDF"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(kiro, "broken.docx"), []byte("zip"), 0644))

	content := "#[[file:.kiro/uan.pdf]]\n#[[file:.kiro/broken.docx]]\n"
	var events []domain.ProgressEvent
	_, err := codegen.NewRunner("fake-agent", ".kiro", stubConverter{}).WithHome(home).
		Generate(context.Background(), domain.TransformRequest{KiroContent: content, WorkingDir: work}, collect(&events))
	require.NoError(t, err)

	out := outputs(events)
	assert.Contains(t, out, "✓ Converted uan.pdf to text format\n")
	assert.Contains(t, out, "⚠ Warning: Could not convert broken.docx - fake-agent may not be able to read it\n")
	assert.Contains(t, out, "Document conversion complete\n")

	txt, err := os.ReadFile(filepath.Join(kiro, "uan.txt"))
	require.NoError(t, err)
	assert.Equal(t, "text of uan.pdf", string(txt))

	spec, err := os.ReadFile(filepath.Join(kiro, "transformation-spec.kiro"))
	require.NoError(t, err)
	assert.Equal(t, "#[[file:.kiro/uan.txt]]\n#[[file:.kiro/broken.docx]]\n", string(spec))
}

func TestRunner_KeepsExistingConversions(t *testing.T) {
	home := installAgent(t, "exit 0\n")
	work := t.TempDir()
	kiro := filepath.Join(work, ".kiro")
	require.NoError(t, os.MkdirAll(kiro, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(kiro, "uad.pdf"), []byte("%PDF"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(kiro, "uad.txt"), []byte("edited by hand"), 0644))

	var events []domain.ProgressEvent
	_, err := codegen.NewRunner("fake-agent", ".kiro", stubConverter{}).WithHome(home).
		Generate(context.Background(), domain.TransformRequest{WorkingDir: work}, collect(&events))
	require.NoError(t, err)

	assert.NotContains(t, outputs(events), "✓ Converted uad.pdf to text format\n")
	txt, err := os.ReadFile(filepath.Join(kiro, "uad.txt"))
	require.NoError(t, err)
	assert.Equal(t, "edited by hand", string(txt))
}

func TestRunner_MissingBinaryFails(t *testing.T) {
	var events []domain.ProgressEvent
	outcome, err := codegen.NewRunner("transformspec-no-such-agent", ".kiro", stubConverter{}).WithHome(t.TempDir()).
		Generate(context.Background(), domain.TransformRequest{WorkingDir: t.TempDir()}, collect(&events))

	require.Error(t, err)
	assert.Equal(t, domain.OutcomeFailed, outcome)
	assert.Equal(t, domain.EventError, events[len(events)-1].Type)
}

func TestRunner_LongOutputLineIsDelivered(t *testing.T) {
	home := installAgent(t, `
head -c 2000000 /dev/zero | tr '\0' a
echo
i=0
while [ $i -lt 2000 ]; do echo short; i=$((i+1)); done
`)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var events []domain.ProgressEvent
	outcome, err := codegen.NewRunner("fake-agent", ".kiro", stubConverter{}).WithHome(home).
		Generate(ctx, domain.TransformRequest{WorkingDir: t.TempDir()}, collect(&events))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCompleted, outcome)

	long, short := 0, 0
	for _, msg := range outputs(events) {
		switch {
		case len(msg) == 2000001:
			long++
		case msg == "short\n":
			short++
		}
	}
	assert.Equal(t, 1, long)
	assert.Equal(t, 2000, short)
	out := outputs(events)
	assert.Equal(t, "\n[Process completed with exit code: 0]\n", out[len(out)-1])
}

func TestRunner_CancellationStopsAgent(t *testing.T) {
	home := installAgent(t, "echo started\nexec sleep 30\n")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var events []domain.ProgressEvent
	sink := func(ev domain.ProgressEvent) {
		events = append(events, ev)
		if ev.Message == "started\n" {
			cancel()
		}
	}

	outcome, err := codegen.NewRunner("fake-agent", ".kiro", stubConverter{}).WithHome(home).
		Generate(ctx, domain.TransformRequest{WorkingDir: t.TempDir()}, sink)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCancelled, outcome)
	assert.Equal(t, domain.EventCancelled, events[len(events)-1].Type)
}
