package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSetupTestRepo(t *testing.T) {
	dir := SetupTestRepo(t)

	if _, err := os.Stat(filepath.Join(dir, ".git")); os.IsNotExist(err) {
		t.Error(".git directory does not exist")
	}
	if _, err := os.Stat(filepath.Join(dir, "README.md")); os.IsNotExist(err) {
		t.Error("README.md does not exist")
	}
	if branch := CurrentBranch(t, dir); branch != "main" {
		t.Errorf("CurrentBranch = %q, want %q", branch, "main")
	}
	if count := CommitCount(t, dir); count != 1 {
		t.Errorf("CommitCount = %d, want 1", count)
	}
}

func TestSetupBareRemote(t *testing.T) {
	dir := SetupTestRepo(t)
	remote := SetupBareRemote(t, dir)

	if _, err := os.Stat(filepath.Join(remote, "HEAD")); os.IsNotExist(err) {
		t.Error("bare remote missing HEAD")
	}
	if msg := HeadMessage(t, dir); msg != "Initial commit" {
		t.Errorf("HeadMessage = %q, want %q", msg, "Initial commit")
	}
}

func TestStagedFiles(t *testing.T) {
	dir := SetupTestRepo(t)

	if files := StagedFiles(t, dir); files != nil {
		t.Errorf("StagedFiles = %v, want none", files)
	}

	WriteFile(t, dir, "main.go", "package main\n")
	runGit(t, dir, "add", "main.go")

	files := StagedFiles(t, dir)
	if len(files) != 1 || files[0] != "main.go" {
		t.Errorf("StagedFiles = %v, want [main.go]", files)
	}
}

func TestTestContext(t *testing.T) {
	ctx := TestContext(t)
	if err := ctx.Err(); err != nil {
		t.Errorf("context already done: %v", err)
	}

	ctx2 := TestContextWithTimeout(t, 50*time.Millisecond)
	select {
	case <-ctx2.Done():
	case <-time.After(2 * time.Second):
		t.Error("timeout context never expired")
	}
	if ctx2.Err() != context.DeadlineExceeded {
		t.Errorf("err = %v, want deadline exceeded", ctx2.Err())
	}
}
