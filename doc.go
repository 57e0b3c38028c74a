// Package gitpilot implements an autonomous commit engine: it watches a
// local repository, summarizes pending changes, asks a remote
// text-generation service for a commit message, then commits and pushes.
//
// The package is organized into subpackages by domain:
//
//   - git: Git repository operations (status, staging, commit, push)
//   - gemini: Remote message generation client and API key validation
//   - config: Persisted configuration and the shared in-memory store
//   - notify: Notification sinks for scheduled commit outcomes
//   - prompt: Prompt template loading with project overrides
//   - testutil: Test fixtures (temporary repositories and remotes)
//
// The root package composes these into the commit Pipeline and the
// Scheduler that drives it on a fixed interval.
//
// # Quick Start
//
//	store := config.NewStore(cfg)
//	client, _ := gemini.NewClient()
//	pipeline := gitpilot.NewPipeline(gitpilot.PipelineConfig{
//	    Store:     store,
//	    Generator: client,
//	})
//	sched := gitpilot.NewScheduler(store, pipeline)
//	_ = sched.Start(ctx)
//
// See individual package documentation for detailed usage.
package gitpilot
