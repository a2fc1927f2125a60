//go:build integration

package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// runGit runs a git command in dir and fails the test on error.
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s failed: %v\n%s", strings.Join(args, " "), err, output)
	}
	return strings.TrimSpace(string(output))
}

// SetupTestRemote creates a bare repository seeded with one commit on "main"
// and returns its path, usable as a clone URL for local-only tests.
func SetupTestRemote(t *testing.T) string {
	t.Helper()

	seedPath := filepath.Join(t.TempDir(), "seed")
	if err := os.MkdirAll(seedPath, 0o755); err != nil {
		t.Fatalf("failed to create seed directory: %v", err)
	}

	runGit(t, seedPath, "init", "-b", "main")
	runGit(t, seedPath, "config", "user.name", "Test User")
	runGit(t, seedPath, "config", "user.email", "test@example.com")

	if err := os.WriteFile(filepath.Join(seedPath, "README.md"), []byte("# test\n"), 0o644); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
	runGit(t, seedPath, "add", "README.md")
	runGit(t, seedPath, "commit", "-m", "initial commit")

	remotePath := filepath.Join(t.TempDir(), "remote.git")
	runGit(t, filepath.Dir(remotePath), "clone", "--bare", seedPath, remotePath)

	return remotePath
}

// CloneTestRemote clones the remote into a fresh directory and configures a
// committer identity, returning the clone path.
func CloneTestRemote(t *testing.T, remotePath string) string {
	t.Helper()

	clonePath := filepath.Join(t.TempDir(), "clone")
	runGit(t, filepath.Dir(clonePath), "clone", remotePath, clonePath)
	runGit(t, clonePath, "config", "user.name", "Test User")
	runGit(t, clonePath, "config", "user.email", "test@example.com")

	return clonePath
}
