package gitpilot

import "errors"

// Engine errors.
var (
	// ErrAlreadyRunning indicates a scheduler loop is already active.
	ErrAlreadyRunning = errors.New("scheduler already running")

	// ErrAPIKeyMissing indicates no API key is configured for message
	// generation. The pipeline checks this before staging anything.
	ErrAPIKeyMissing = errors.New("API key not configured")
)
