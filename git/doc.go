// Package git provides the repository operations the commit engine
// needs: pending-change detection, staging, staged diff summaries,
// committing, and pushing the current branch.
//
// Core types:
//   - Repo: Operations bound to a single working tree
//   - CommandRunner: Interface for executing git commands (with mock for testing)
//   - Error: Git command failure with operation context
//
// Example usage:
//
//	repo, err := git.Open("/path/to/repo")
//	if err != nil {
//	    return err
//	}
//	pending, _ := repo.HasPendingChanges()
//	if pending {
//	    err = repo.StageAll()
//	}
//
// Commands execute to completion without yielding; no operation in this
// package enforces a timeout.
package git
