package config

import "sync"

// Store holds the live configuration. Reads return a copy and writes
// replace the whole record; the lock guards only the copy or swap.
type Store struct {
	mu  sync.Mutex
	cfg Config
}

// NewStore creates a store seeded with cfg.
func NewStore(cfg Config) *Store {
	return &Store{cfg: cfg}
}

// Get returns a snapshot of the current configuration.
func (s *Store) Get() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Replace swaps in a new configuration wholesale.
func (s *Store) Replace(cfg Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
}
