package config

// Config is the application configuration record.
type Config struct {
	// RepoPath is the repository the scheduler commits.
	RepoPath string `yaml:"repo_path"`

	// AutoCommit enables the periodic commit loop.
	AutoCommit bool `yaml:"auto_commit"`

	// IntervalMinutes is the scheduler tick interval. The store accepts
	// any value; callers validate before starting a loop.
	IntervalMinutes int `yaml:"interval_minutes"`

	// AutoStart starts the scheduler when the application launches.
	AutoStart bool `yaml:"auto_start"`

	// APIKey authenticates to the remote text-generation service.
	// May be empty; the pipeline rejects runs without it.
	APIKey string `yaml:"api_key"`
}

// Default returns the built-in configuration defaults.
func Default() Config {
	return Config{
		IntervalMinutes: 30,
	}
}
