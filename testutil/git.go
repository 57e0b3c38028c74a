// Package testutil provides test fixtures for the commit engine:
// temporary git repositories, bare remotes, and test contexts.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// RequireGit skips the test if the git binary is not installed.
func RequireGit(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

// SetupTestRepo creates a temporary git repository with one initial
// commit. The repository is cleaned up when the test ends.
func SetupTestRepo(t *testing.T) string {
	t.Helper()
	RequireGit(t)

	dir := t.TempDir()

	runGit(t, dir, "init", "-b", "main")
	runGit(t, dir, "config", "user.email", "test@test.com")
	runGit(t, dir, "config", "user.name", "Test User")

	readme := filepath.Join(dir, "README.md")
	if err := os.WriteFile(readme, []byte("# Test Repository\n"), 0o644); err != nil {
		t.Fatalf("failed to create README: %v", err)
	}

	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "Initial commit")

	return dir
}

// SetupBareRemote creates a bare repository and wires it up as the
// "origin" remote of repoDir, with the current branch pushed.
// Returns the path to the bare repository.
func SetupBareRemote(t *testing.T, repoDir string) string {
	t.Helper()

	remoteDir := t.TempDir()
	runGit(t, remoteDir, "init", "--bare")

	branch := CurrentBranch(t, repoDir)
	runGit(t, repoDir, "remote", "add", "origin", remoteDir)
	runGit(t, repoDir, "push", "-u", "origin", branch)

	// The bare repository's HEAD defaults to the host's init.defaultBranch,
	// which may differ from the pushed branch; point it at the pushed branch
	// so HEAD resolves in the remote.
	runGit(t, remoteDir, "symbolic-ref", "HEAD", "refs/heads/"+branch)

	return remoteDir
}

// WriteFile creates or updates a file inside the repository without
// staging or committing it.
func WriteFile(t *testing.T, repoDir, path, content string) {
	t.Helper()

	fullPath := filepath.Join(repoDir, path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// CurrentBranch returns the current branch name of repoDir.
func CurrentBranch(t *testing.T, repoDir string) string {
	t.Helper()
	return gitOutput(t, repoDir, "branch", "--show-current")
}

// HeadMessage returns the subject of the HEAD commit of repoDir.
func HeadMessage(t *testing.T, repoDir string) string {
	t.Helper()
	return gitOutput(t, repoDir, "log", "-1", "--pretty=%s")
}

// CommitCount returns the number of commits reachable from HEAD.
func CommitCount(t *testing.T, repoDir string) int {
	t.Helper()

	out := gitOutput(t, repoDir, "rev-list", "--count", "HEAD")
	count := 0
	for _, c := range out {
		if c < '0' || c > '9' {
			t.Fatalf("unexpected rev-list output: %q", out)
		}
		count = count*10 + int(c-'0')
	}
	return count
}

// StagedFiles returns the paths currently staged in repoDir.
func StagedFiles(t *testing.T, repoDir string) []string {
	t.Helper()

	out := gitOutput(t, repoDir, "diff", "--cached", "--name-only")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@test.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@test.com",
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, output)
	}
}

func gitOutput(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, output)
	}
	return strings.TrimSpace(string(output))
}
