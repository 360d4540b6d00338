package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/transformspec/internal/domain"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "transformspec-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "transformspec")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/transformspec")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func fixturePath(name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata/specs", name))
	return abs
}

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	isolated := []string{"--config", filepath.Join(t.TempDir(), "config.yaml"), "--log-level", "error"}
	cmd := exec.Command(binaryPath, append(isolated, args...)...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

// --- Render Tests ---

func TestE2E_RenderWritesFourArtifacts(t *testing.T) {
	outDir := t.TempDir()
	out, code := run(t, "render", fixturePath("order-service.yaml"), "--out", outDir)
	require.Equal(t, 0, code, out)

	for _, name := range []string{
		"requirements-specification.md",
		"requirements-specification.pdf",
		"technical-details.md",
		"technical-details.pdf",
	} {
		info, err := os.Stat(filepath.Join(outDir, name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}
}

func TestE2E_RenderStdoutIncludesReferencedDocuments(t *testing.T) {
	out, code := run(t, "render", fixturePath("order-service.yaml"), "--kind", "requirements", "--format", "md", "--stdout")
	require.Equal(t, 0, code, out)
	assert.True(t, strings.HasPrefix(out, "# Requirements Specification"))
	assert.Contains(t, out, "OrderService")
	assert.Contains(t, out, "stories.md")
}

func TestE2E_MarkdownAndOutlineAgreeOnHeadings(t *testing.T) {
	md, code := run(t, "render", fixturePath("order-service.yaml"), "--kind", "technical", "--format", "md", "--stdout")
	require.Equal(t, 0, code, md)
	outline, code := run(t, "render", fixturePath("order-service.yaml"), "--kind", "technical", "--outline")
	require.Equal(t, 0, code, outline)

	for _, line := range strings.Split(md, "\n") {
		if strings.HasPrefix(line, "## ") {
			assert.Contains(t, outline, strings.TrimPrefix(line, "## "))
		}
	}
}

// --- Validate Tests ---

func TestE2E_ValidateCompleteSpec(t *testing.T) {
	out, code := run(t, "validate", fixturePath("order-service.yaml"))
	assert.Equal(t, 0, code, out)
	assert.Contains(t, out, "Spec is complete")
}

func TestE2E_ValidateIncompleteSpec(t *testing.T) {
	out, code := run(t, "validate", fixturePath("incomplete.yaml"), "--json")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, `"valid": false`)
	assert.Contains(t, out, "transformationGoal")
}

// --- Export Tests ---

func TestE2E_Export(t *testing.T) {
	root := t.TempDir()
	out, code := run(t, "export", fixturePath("order-service.yaml"), "--root", root)
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "OrderService")

	kiro := filepath.Join(root, ".kiro")
	for _, name := range []string{
		"requirements-specification.pdf",
		"technical-details.md",
		"stories.md",
		"go-standards.md",
		domain.InstructionsFileName,
		domain.SnapshotFileName,
	} {
		assert.FileExists(t, filepath.Join(kiro, name))
	}

	payload, err := os.ReadFile(filepath.Join(kiro, domain.InstructionsFileName))
	require.NoError(t, err)
	assert.Contains(t, string(payload), "#[[file:.kiro/requirements-specification.md]]")
}

func TestE2E_ExportHistory(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 2; i++ {
		_, code := run(t, "export", fixturePath("order-service.yaml"), "--root", root)
		require.Equal(t, 0, code)
	}

	out, code := run(t, "export", "--root", root, "--history")
	require.Equal(t, 0, code, out)

	var entries []domain.ExportEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Len(t, entries, 2)
}

// --- Misc ---

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "transformspec")
}

func TestE2E_UnknownCommand(t *testing.T) {
	_, code := run(t, "score")
	assert.Equal(t, 1, code)
}
