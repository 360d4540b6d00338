// Package codegen drives the code-generation agent, either by running its
// CLI locally or through the backend's streaming transform endpoint.
package codegen

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/cli/safeexec"

	"github.com/abdidvp/transformspec/internal/adapters/outbound/docconv"
	"github.com/abdidvp/transformspec/internal/domain"
)

const (
	StartMessage    = "Starting transformation..."
	CompleteMessage = "Transformation complete!"
	CancelMessage   = "Transformation cancelled"
)

// Divider separates the preamble from the agent's output.
var Divider = strings.Repeat("-", 60)

// waitDelay bounds how long output is drained after the agent is killed.
const waitDelay = 2 * time.Second

var agentFlags = []string{"chat", "--no-interactive", "--trust-all-tools"}

// Runner implements domain.CodeGenerator by running the agent CLI in the
// request's working directory.
type Runner struct {
	binary    string
	dirName   string
	converter domain.DocumentConverter
	// home overrides the user's home directory in tests.
	home string
}

// NewRunner creates a runner for binary that stages files in dirName under
// the working directory.
func NewRunner(binary, dirName string, converter domain.DocumentConverter) *Runner {
	return &Runner{binary: binary, dirName: dirName, converter: converter}
}

// WithHome returns a copy of r that treats home as the user's home
// directory when extending PATH.
func (r *Runner) WithHome(home string) *Runner {
	c := *r
	c.home = home
	return &c
}

// Generate stages the payload, runs the agent and streams its merged output.
// A non-zero exit status is reported in the output, not as a failure.
func (r *Runner) Generate(ctx context.Context, req domain.TransformRequest, sink domain.EventSink) (domain.Outcome, error) {
	emit := func(t domain.EventType, msg string) {
		if sink != nil {
			sink(domain.ProgressEvent{Type: t, Message: msg})
		}
	}
	fail := func(err error) (domain.Outcome, error) {
		emit(domain.EventError, err.Error())
		return domain.OutcomeFailed, err
	}

	emit(domain.EventStart, StartMessage)
	emit(domain.EventInfo, "Running "+r.binary+" "+strings.Join(agentFlags, " "))
	emit(domain.EventInfo, Divider)
	output := func(msg string) { emit(domain.EventOutput, msg) }

	cwd := req.WorkingDir
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fail(err)
		}
		cwd = wd
	}

	dir := filepath.Join(cwd, r.dirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fail(fmt.Errorf("creating %s: %w", dir, err))
	}

	output("Converting documents to text format...\n")
	r.convertDocuments(dir, output)

	content := r.rewriteReferences(req.KiroContent, dir)
	specPath := filepath.Join(dir, domain.InstructionsFileName)
	if err := os.WriteFile(specPath, []byte(content), 0644); err != nil {
		return fail(fmt.Errorf("writing %s: %w", specPath, err))
	}
	output("Created spec file: " + specPath + "\n")

	env := r.environ()
	bin, err := r.lookPath()
	if err != nil {
		return fail(err)
	}

	ref := "#[[file:" + r.dirName + "/" + domain.InstructionsFileName + "]]"
	cmd := exec.CommandContext(ctx, bin, append(append([]string{}, agentFlags...), ref)...)
	cmd.Dir = cwd
	cmd.Env = env
	cmd.WaitDelay = waitDelay
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fail(err)
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return fail(fmt.Errorf("starting %s: %w", r.binary, err))
	}

	readLines(stdout, func(line string) { output(ansi.Strip(line) + "\n") })
	waitErr := cmd.Wait()

	if ctx.Err() != nil {
		emit(domain.EventCancelled, CancelMessage)
		return domain.OutcomeCancelled, nil
	}
	if cmd.ProcessState == nil {
		return fail(fmt.Errorf("running %s: %w", r.binary, waitErr))
	}

	output(fmt.Sprintf("\n[Process completed with exit code: %d]\n", cmd.ProcessState.ExitCode()))
	emit(domain.EventComplete, CompleteMessage)
	return domain.OutcomeCompleted, nil
}

// readLines calls fn for every line of r until EOF or a read error. Lines
// have no length limit; the pipe is read to the end.
func readLines(r io.Reader, fn func(string)) {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			fn(strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
		}
		if err != nil {
			return
		}
	}
}

// convertDocuments writes a .txt next to every PDF and DOCX in dir that does
// not have one yet.
func (r *Runner) convertDocuments(dir string, output func(string)) {
	for _, src := range stagedDocuments(dir) {
		name := filepath.Base(src)
		txt := filepath.Join(dir, docconv.TextName(name))
		if _, err := os.Stat(txt); err == nil {
			continue
		}
		if err := r.convert(src, txt); err != nil {
			output("⚠ Warning: Could not convert " + name + " - " + r.binary + " may not be able to read it\n")
			continue
		}
		output("✓ Converted " + name + " to text format\n")
	}
	output("Document conversion complete\n")
}

func (r *Runner) convert(src, dst string) error {
	if r.converter == nil {
		return domain.ErrUnsupportedDocument
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	text, err := r.converter.ToText(filepath.Base(src), data)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, []byte(text), 0644)
}

// rewriteReferences points file references at text conversions when they
// exist.
func (r *Runner) rewriteReferences(content, dir string) string {
	for _, src := range stagedDocuments(dir) {
		name := filepath.Base(src)
		txt := docconv.TextName(name)
		if _, err := os.Stat(filepath.Join(dir, txt)); err != nil {
			continue
		}
		content = strings.ReplaceAll(content,
			"#[[file:"+r.dirName+"/"+name+"]]",
			"#[[file:"+r.dirName+"/"+txt+"]]")
	}
	return content
}

func stagedDocuments(dir string) []string {
	pdfs, _ := filepath.Glob(filepath.Join(dir, "*.pdf"))
	docs, _ := filepath.Glob(filepath.Join(dir, "*.docx"))
	return append(pdfs, docs...)
}

func (r *Runner) localBin() string {
	home := r.home
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".local", "bin")
}

// environ returns the process environment with ~/.local/bin first on PATH.
func (r *Runner) environ() []string {
	local := r.localBin()
	env := os.Environ()
	if local == "" {
		return env
	}
	out := make([]string, 0, len(env)+1)
	found := false
	for _, kv := range env {
		if strings.HasPrefix(kv, "PATH=") {
			kv = "PATH=" + local + string(os.PathListSeparator) + strings.TrimPrefix(kv, "PATH=")
			found = true
		}
		out = append(out, kv)
	}
	if !found {
		out = append(out, "PATH="+local)
	}
	return out
}

// lookPath resolves the agent binary, preferring ~/.local/bin.
func (r *Runner) lookPath() (string, error) {
	if strings.ContainsRune(r.binary, filepath.Separator) {
		return r.binary, nil
	}
	if local := r.localBin(); local != "" {
		candidate := filepath.Join(local, r.binary)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() && info.Mode()&0111 != 0 {
			return candidate, nil
		}
	}
	path, err := safeexec.LookPath(r.binary)
	if err != nil {
		return "", fmt.Errorf("%s not found in PATH: %w", r.binary, err)
	}
	return path, nil
}
