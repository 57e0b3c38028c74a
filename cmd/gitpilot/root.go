package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	gitpilot "github.com/randalmurphal/gitpilot"
	"github.com/randalmurphal/gitpilot/config"
	"github.com/randalmurphal/gitpilot/gemini"
	"github.com/randalmurphal/gitpilot/prompt"
)

var (
	cfgPath string
	verbose bool

	// store holds the configuration for the whole invocation. It is
	// filled from the config file before any command runs.
	store = config.NewStore(config.Default())
)

var rootCmd = &cobra.Command{
	Use:   "gitpilot",
	Short: "Automatic commits with generated messages",
	Long: `gitpilot stages pending changes in a git repository, asks a
text-generation service for a conventional commit message, then commits
and pushes. Run it once with "run" or on an interval with "watch".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store.Replace(cfg)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := store.Get()
		if cfg.AutoStart && cfg.AutoCommit {
			return runWatch(cmd, nil)
		}
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "",
		"config file (default ~/.config/gitpilot/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	rootCmd.AddCommand(runCmd, watchCmd, configCmd, validateKeyCmd, initCmd)
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func loadConfig() (config.Config, error) {
	if cfgPath != "" {
		return config.LoadFrom(cfgPath)
	}
	return config.Load()
}

func saveConfig(cfg config.Config) error {
	if cfgPath != "" {
		return config.SaveTo(cfg, cfgPath)
	}
	return config.Save(cfg)
}

func configFilePath() (string, error) {
	if cfgPath != "" {
		return cfgPath, nil
	}
	return config.Path()
}

// repoPath resolves the repository to operate on: explicit argument,
// then the configured path, then the working directory.
func repoPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if p := store.Get().RepoPath; p != "" {
		return p, nil
	}
	return os.Getwd()
}

// newPipeline builds the commit pipeline for a repository, honoring a
// .gitpilot/prompts override of the commit message instruction.
func newPipeline(repoDir string) (*gitpilot.Pipeline, error) {
	system, err := prompt.NewLoader(repoDir).Load("commit_message")
	if err != nil {
		return nil, err
	}
	client, err := gemini.NewClient(gemini.WithSystemInstruction(system))
	if err != nil {
		return nil, err
	}
	return gitpilot.NewPipeline(gitpilot.PipelineConfig{
		Store:     store,
		Generator: client,
	}), nil
}
