package gitpilot

import (
	"context"
	"fmt"
	"log/slog"

	nanoid "github.com/matoous/go-nanoid/v2"

	"github.com/randalmurphal/gitpilot/config"
	"github.com/randalmurphal/gitpilot/git"
)

// Repository is the subset of git operations a pipeline run needs.
// *git.Repo satisfies it; tests substitute fakes.
type Repository interface {
	HasPendingChanges() (bool, error)
	StageAll() error
	StagedStat() (string, error)
	StagedDiff() (string, error)
	Commit(message string) error
	PushCurrent() error
}

// RepoOpener opens the repository at path.
type RepoOpener func(path string) (Repository, error)

// Generator produces a commit message for a diff summary.
// *gemini.Client satisfies it.
type Generator interface {
	CommitMessage(ctx context.Context, apiKey, diff string) (string, error)
}

// Outcome is the result of a single pipeline run. A run with no pending
// changes is reported through NoChanges rather than an error.
type Outcome struct {
	RunID     string // unique identifier for this run
	NoChanges bool   // nothing to commit; no stage, call, or commit happened
	Message   string // sanitized commit message on full success
}

// Pipeline composes change detection, diff summarization, message
// generation, commit, and push into one fallible run. Stages run
// sequentially and the first failure aborts the run; side effects of
// completed stages (staged files, a local commit) are not rolled back.
type Pipeline struct {
	store     *config.Store
	open      RepoOpener
	generator Generator
	diffLimit int
	logger    *slog.Logger
}

// PipelineConfig configures a Pipeline.
type PipelineConfig struct {
	// Store supplies the API key snapshot for each run. Required.
	Store *config.Store

	// Generator produces commit messages. Required.
	Generator Generator

	// Open opens repositories. Defaults to git.Open.
	Open RepoOpener

	// DiffLimit bounds the forwarded diff body. Defaults to MaxDiffChars.
	DiffLimit int

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// NewPipeline creates a commit pipeline.
func NewPipeline(cfg PipelineConfig) *Pipeline {
	p := &Pipeline{
		store:     cfg.Store,
		open:      cfg.Open,
		generator: cfg.Generator,
		diffLimit: cfg.DiffLimit,
		logger:    cfg.Logger,
	}
	if p.open == nil {
		p.open = func(path string) (Repository, error) {
			return git.Open(path)
		}
	}
	if p.diffLimit <= 0 {
		p.diffLimit = MaxDiffChars
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Run executes one commit attempt against the repository at path.
//
// The run is fail-fast: the first failing stage aborts it and already
// applied mutations stay in place. In particular, files staged before a
// failed generation or push remain staged, and a commit that could not
// be pushed remains applied locally. A later run tolerates both.
func (p *Pipeline) Run(ctx context.Context, path string) (*Outcome, error) {
	runID, err := nanoid.New()
	if err != nil {
		return nil, fmt.Errorf("generate run id: %w", err)
	}

	repo, err := p.open(path)
	if err != nil {
		return nil, err
	}

	pending, err := repo.HasPendingChanges()
	if err != nil {
		return nil, err
	}
	if !pending {
		p.logger.Debug("no pending changes", "run_id", runID, "repo", path)
		return &Outcome{RunID: runID, NoChanges: true}, nil
	}

	// Credential check precedes any repository mutation.
	apiKey := p.store.Get().APIKey
	if apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	if err := repo.StageAll(); err != nil {
		return nil, err
	}

	summary, err := CollectDiff(repo, p.diffLimit)
	if err != nil {
		return nil, err
	}
	if summary.Truncated {
		p.logger.Debug("diff body truncated", "run_id", runID, "limit", p.diffLimit)
	}

	raw, err := p.generator.CommitMessage(ctx, apiKey, summary.Text())
	if err != nil {
		return nil, err
	}
	message := CleanMessage(raw)

	if err := repo.Commit(message); err != nil {
		return nil, err
	}
	if err := repo.PushCurrent(); err != nil {
		// The commit stays applied locally.
		return nil, err
	}

	p.logger.Info("commit published",
		"run_id", runID,
		"repo", path,
		"message", message,
	)
	return &Outcome{RunID: runID, Message: message}, nil
}
