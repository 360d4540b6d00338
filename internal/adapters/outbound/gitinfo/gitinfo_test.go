package gitinfo_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/abdidvp/transformspec/internal/adapters/outbound/gitinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitInfo_CommitHash_ReturnsHash(t *testing.T) {
	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@test.com")
	runGit(t, dir, "config", "user.name", "Test")

	f := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(f, []byte("hello"), 0644))
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "init")

	gi := gitinfo.New()
	hash, err := gi.CommitHash(dir)
	require.NoError(t, err)
	assert.Len(t, hash, 40, "should be a full SHA-1 hash")
}

func TestGitInfo_CommitHash_FromSubdirectory(t *testing.T) {
	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@test.com")
	runGit(t, dir, "config", "user.name", "Test")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte("hello"), 0644))
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "init")

	sub := filepath.Join(dir, "src", "orders")
	require.NoError(t, os.MkdirAll(sub, 0755))

	hash, err := gitinfo.New().CommitHash(sub)
	require.NoError(t, err)
	assert.Len(t, hash, 40)
}

func TestGitInfo_CommitHash_NotGitRepo(t *testing.T) {
	dir := t.TempDir()
	gi := gitinfo.New()
	_, err := gi.CommitHash(dir)
	assert.Error(t, err)
}

func TestGitInfo_RemoteURL_Origin(t *testing.T) {
	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "remote", "add", "upstream", "https://example.com/upstream.git")
	runGit(t, dir, "remote", "add", "origin", "https://example.com/orders.git")

	url, err := gitinfo.New().RemoteURL(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/orders.git", url)
}

func TestGitInfo_RemoteURL_FirstRemoteWithoutOrigin(t *testing.T) {
	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "remote", "add", "zeta", "https://example.com/z.git")
	runGit(t, dir, "remote", "add", "alpha", "https://example.com/a.git")

	url, err := gitinfo.New().RemoteURL(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.git", url)
}

func TestGitInfo_RemoteURL_NoRemotes(t *testing.T) {
	dir := t.TempDir()
	runGit(t, dir, "init")

	_, err := gitinfo.New().RemoteURL(dir)
	assert.Error(t, err)
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, string(out))
}
