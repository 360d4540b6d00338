package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abdidvp/transformspec/internal/adapters/inbound/cli"
	"github.com/abdidvp/transformspec/internal/adapters/outbound/specfile"
	"github.com/abdidvp/transformspec/internal/domain"
)

// writeConfig writes a config file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// run executes the root command with an isolated config and returns stdout.
func run(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	if configPath == "" {
		configPath = filepath.Join(t.TempDir(), "absent.yaml")
	}
	cmd := cli.NewRootCmdForTest()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(append([]string{"--config", configPath, "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeSpec(t *testing.T, dir string) string {
	t.Helper()
	spec := domain.NewSpec()
	spec.TransformationType = []string{"API"}
	spec.TargetProject = "OrderService"
	spec.TransformationGoal = "Split the monolith"
	spec.ArchitecturalPattern = "Clean Architecture"
	spec.LayerStructure = []domain.Layer{{Name: "Domain", Description: "Entities"}}

	path := filepath.Join(dir, "spec.yaml")
	require.NoError(t, specfile.New().Save(path, spec))
	return path
}
