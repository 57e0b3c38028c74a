package notify

import (
	"context"
	"time"
)

// =============================================================================
// Notification Types
// =============================================================================

// EventType represents the type of commit engine event.
type EventType string

// Event type constants.
const (
	// EventCommitCompleted is emitted when a scheduled run committed and
	// published a change. No-op runs emit nothing.
	EventCommitCompleted EventType = "commit_completed"

	// EventCommitFailed is emitted when a scheduled run failed at any
	// pipeline stage.
	EventCommitFailed EventType = "commit_failed"
)

// Severity constants for notifications.
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Event describes a commit engine event for notification.
type Event struct {
	Type      EventType      `json:"type"`
	RunID     string         `json:"run_id,omitempty"`
	RepoPath  string         `json:"repo_path"`
	Message   string         `json:"message"`
	Severity  string         `json:"severity"` // SeverityInfo, SeverityWarning, SeverityError
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// =============================================================================
// Notifier Interface
// =============================================================================

// Notifier delivers commit engine events to the foreground layer.
type Notifier interface {
	// Notify sends a notification. Implementations should be non-blocking
	// and handle errors gracefully (log, don't crash).
	Notify(ctx context.Context, event Event) error
}
