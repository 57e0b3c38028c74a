// Package config holds the application configuration: the persisted
// record and the in-memory store shared between the control surface and
// the scheduler.
//
// The persisted record lives at ~/.config/gitpilot/config.yaml. A
// missing file yields the built-in defaults rather than an error.
//
// The Store owns the live configuration. It is replaced wholesale and
// read by value copy; its lock is held only for the copy or swap, never
// across blocking work, so a snapshot taken by one goroutine is never
// shared by reference with another.
//
//	cfg, err := config.Load()
//	store := config.NewStore(cfg)
//	snapshot := store.Get()
package config
