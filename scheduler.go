package gitpilot

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/randalmurphal/gitpilot/config"
	"github.com/randalmurphal/gitpilot/notify"
)

// PipelineRunner runs one commit attempt. *Pipeline satisfies it.
type PipelineRunner interface {
	Run(ctx context.Context, path string) (*Outcome, error)
}

// Scheduler drives the commit pipeline on a fixed interval. At most one
// loop is active per process; Start and Stop flip the active flag under
// a mutex that is never held across blocking work.
//
// The interval and repository path are snapshotted when the loop starts.
// Replacing the configuration while the loop is active does not change
// its cadence or target; restart the scheduler to pick up new values.
type Scheduler struct {
	store    *config.Store
	runner   PipelineRunner
	notifier notify.Notifier
	logger   *slog.Logger

	// tickUnit is the duration of one configured interval minute.
	// Tests shrink it to keep loops fast.
	tickUnit time.Duration

	mu     sync.Mutex
	active bool
	// gen identifies the live loop. A loop whose generation no longer
	// matches has been superseded by a Stop/Start cycle and must exit,
	// even though the active flag has been re-armed for its successor.
	gen uint64
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithNotifier sets the sink for commit outcome events.
func WithNotifier(n notify.Notifier) SchedulerOption {
	return func(s *Scheduler) { s.notifier = n }
}

// WithLogger sets the scheduler's logger.
func WithLogger(l *slog.Logger) SchedulerOption {
	return func(s *Scheduler) { s.logger = l }
}

// NewScheduler creates a scheduler over the shared config store and a
// pipeline runner.
func NewScheduler(store *config.Store, runner PipelineRunner, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		store:    store,
		runner:   runner,
		notifier: notify.NopNotifier{},
		logger:   slog.Default(),
		tickUnit: time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Active reports whether the periodic loop is running.
func (s *Scheduler) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Start snapshots the configured interval and repository path and
// launches the periodic loop. The first run happens immediately;
// subsequent runs follow the interval. It returns ErrAlreadyRunning if
// a loop is already active; the existing loop is unaffected.
func (s *Scheduler) Start(ctx context.Context) error {
	cfg := s.store.Get()

	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.active = true
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	minutes := cfg.IntervalMinutes
	if minutes <= 0 {
		// The store accepts any interval; a ticker does not.
		s.logger.Warn("non-positive interval, using one tick unit", "interval_minutes", minutes)
		minutes = 1
	}

	go s.loop(ctx, time.Duration(minutes)*s.tickUnit, cfg.RepoPath, gen)
	return nil
}

// Stop flips the scheduler to idle. It does not wait for an in-flight
// pipeline run; the loop observes the flag at its next tick. Stopping an
// idle scheduler is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}

// current reports whether the loop started with gen is still the live
// one. A restart between two of its ticks re-arms the active flag for a
// new loop with a new generation, so checking active alone is not
// enough for the old loop to notice it was stopped.
func (s *Scheduler) current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active && s.gen == gen
}

// retire deactivates the scheduler on behalf of the loop with gen. A
// superseded loop must not touch the flag; it belongs to its successor.
func (s *Scheduler) retire(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen == gen {
		s.active = false
	}
}

func (s *Scheduler) loop(ctx context.Context, interval time.Duration, repoPath string, gen uint64) {
	if !s.current(gen) {
		return
	}
	s.runOnce(ctx, repoPath)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.retire(gen)
			return
		case <-ticker.C:
		}
		if !s.current(gen) {
			return
		}
		s.runOnce(ctx, repoPath)
	}
}

// runOnce executes one scheduled pipeline run and reports its outcome.
// No-op outcomes are dropped silently.
func (s *Scheduler) runOnce(ctx context.Context, repoPath string) {
	out, err := s.runner.Run(ctx, repoPath)
	if err != nil {
		s.logger.Error("scheduled commit failed", "repo", repoPath, "error", err)
		s.emit(ctx, notify.Event{
			Type:      notify.EventCommitFailed,
			RepoPath:  repoPath,
			Message:   err.Error(),
			Severity:  notify.SeverityError,
			Timestamp: time.Now(),
		})
		return
	}
	if out.NoChanges {
		return
	}
	s.emit(ctx, notify.Event{
		Type:      notify.EventCommitCompleted,
		RunID:     out.RunID,
		RepoPath:  repoPath,
		Message:   out.Message,
		Severity:  notify.SeverityInfo,
		Timestamp: time.Now(),
	})
}

func (s *Scheduler) emit(ctx context.Context, event notify.Event) {
	if err := s.notifier.Notify(ctx, event); err != nil {
		s.logger.Warn("notifier failed", "event_type", event.Type, "error", err)
	}
}
