package git

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Repo manages git operations for a single working tree.
type Repo struct {
	path   string        // Absolute path to the working tree
	remote string        // Remote used by PushCurrent (defaults to "origin")
	runner CommandRunner // Command runner (defaults to ExecRunner)
}

// Option configures Repo.
type Option func(*Repo)

// WithRemote sets the remote used when pushing. Default is "origin".
func WithRemote(name string) Option {
	return func(r *Repo) {
		r.remote = name
	}
}

// WithRunner sets a custom command runner for git operations.
// This is primarily used for testing to inject mock command execution.
func WithRunner(runner CommandRunner) Option {
	return func(r *Repo) {
		r.runner = runner
	}
}

// Open validates that path is a git repository and returns a Repo
// bound to it. Returns ErrNotRepository otherwise.
func Open(path string, opts ...Option) (*Repo, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	r := &Repo{
		path:   absPath,
		remote: "origin",
		runner: NewExecRunner(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if _, err := r.run("rev-parse", "--git-dir"); err != nil {
		return nil, ErrNotRepository
	}

	return r, nil
}

// Path returns the working tree path.
func (r *Repo) Path() string {
	return r.path
}

// HasPendingChanges reports whether the working tree has any changes,
// staged, unstaged, or untracked.
func (r *Repo) HasPendingChanges() (bool, error) {
	status, err := r.run("status", "--porcelain")
	if err != nil {
		return false, &Error{Op: "status", Err: err}
	}
	return status != "", nil
}

// StageAll stages all changes (git add -A).
func (r *Repo) StageAll() error {
	if _, err := r.run("add", "-A"); err != nil {
		return &Error{Op: "stage all", Err: err}
	}
	return nil
}

// StagedStat returns the compact summary of staged changes.
func (r *Repo) StagedStat() (string, error) {
	stat, err := r.run("diff", "--cached", "--stat")
	if err != nil {
		return "", &Error{Op: "diff stat", Err: err}
	}
	return stat, nil
}

// StagedDiff returns the detailed diff of staged changes.
func (r *Repo) StagedDiff() (string, error) {
	diff, err := r.run("diff", "--cached")
	if err != nil {
		return "", &Error{Op: "diff staged", Err: err}
	}
	return diff, nil
}

// Commit creates a commit from the staged changes.
// Returns ErrNothingToCommit if nothing is staged.
func (r *Repo) Commit(message string) error {
	output, err := r.run("commit", "-m", message)
	if err != nil {
		if strings.Contains(output, "nothing to commit") ||
			strings.Contains(err.Error(), "nothing to commit") {
			return ErrNothingToCommit
		}
		return &Error{Op: "commit", Output: output, Err: err}
	}
	return nil
}

// CurrentBranch returns the current branch name.
func (r *Repo) CurrentBranch() (string, error) {
	branch, err := r.run("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", &Error{Op: "get current branch", Err: err}
	}
	return branch, nil
}

// HeadCommit returns the current HEAD commit SHA.
func (r *Repo) HeadCommit() (string, error) {
	sha, err := r.run("rev-parse", "HEAD")
	if err != nil {
		return "", &Error{Op: "get HEAD commit", Err: err}
	}
	return sha, nil
}

// isBranchPushed checks if the branch exists on the configured remote.
func (r *Repo) isBranchPushed(branch string) bool {
	_, err := r.run("rev-parse", "--verify", r.remote+"/"+branch)
	return err == nil
}

// PushCurrent pushes the current branch to the configured remote,
// setting upstream tracking the first time the branch is pushed.
func (r *Repo) PushCurrent() error {
	branch, err := r.CurrentBranch()
	if err != nil {
		return err
	}

	args := []string{"push"}
	if !r.isBranchPushed(branch) {
		args = append(args, "-u")
	}
	args = append(args, r.remote, branch)

	if output, err := r.run(args...); err != nil {
		return &Error{Op: "push", Output: output, Err: err}
	}
	return nil
}

// run executes a git command in the working tree and returns stdout.
func (r *Repo) run(args ...string) (string, error) {
	return r.runner.Run(r.path, "git", args...)
}
