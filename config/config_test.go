package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestLoadFrom_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, Default())
	}
	if cfg.IntervalMinutes != 30 {
		t.Errorf("IntervalMinutes = %d, want 30", cfg.IntervalMinutes)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	want := Config{
		RepoPath:        "/work/project",
		AutoCommit:      true,
		IntervalMinutes: 5,
		AutoStart:       true,
		APIKey:          "secret-key",
	}
	if err := SaveTo(want, path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoadFrom_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("repo_path: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Errorf("err = %v, want parse error", err)
	}
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("repo_path: /work/project\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.RepoPath != "/work/project" {
		t.Errorf("RepoPath = %q, want %q", cfg.RepoPath, "/work/project")
	}
	if cfg.IntervalMinutes != 30 {
		t.Errorf("IntervalMinutes = %d, want default 30", cfg.IntervalMinutes)
	}
}

func TestStore_GetReturnsSnapshot(t *testing.T) {
	store := NewStore(Config{RepoPath: "/a", IntervalMinutes: 10})

	snap := store.Get()
	snap.RepoPath = "/mutated"

	if got := store.Get().RepoPath; got != "/a" {
		t.Errorf("store was mutated through a snapshot: RepoPath = %q", got)
	}
}

func TestStore_ReplaceIsWholesale(t *testing.T) {
	store := NewStore(Config{RepoPath: "/a", APIKey: "old"})
	store.Replace(Config{RepoPath: "/b"})

	got := store.Get()
	if got.RepoPath != "/b" {
		t.Errorf("RepoPath = %q, want %q", got.RepoPath, "/b")
	}
	if got.APIKey != "" {
		t.Errorf("APIKey = %q, want empty after wholesale replace", got.APIKey)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore(Default())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			store.Replace(Config{IntervalMinutes: n})
		}(i)
		go func() {
			defer wg.Done()
			_ = store.Get()
		}()
	}
	wg.Wait()

	if got := store.Get().IntervalMinutes; got < 0 || got >= 50 {
		t.Errorf("IntervalMinutes = %d, want a value written by some goroutine", got)
	}
}
