package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the stored configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := store.Get()
		fmt.Printf("repo:        %s\n", orUnset(cfg.RepoPath))
		fmt.Printf("interval:    %d minute(s)\n", cfg.IntervalMinutes)
		fmt.Printf("auto-commit: %t\n", cfg.AutoCommit)
		fmt.Printf("auto-start:  %t\n", cfg.AutoStart)
		fmt.Printf("api-key:     %s\n", maskKey(cfg.APIKey))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value and save it",
	Long: `Keys: repo, interval, auto-commit, auto-start, api-key.
The value is written to the config file and takes effect on the next run.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := store.Get()
		key, value := args[0], args[1]

		switch key {
		case "repo":
			cfg.RepoPath = value
		case "interval":
			minutes, err := strconv.Atoi(value)
			if err != nil || minutes <= 0 {
				return fmt.Errorf("interval must be a positive number of minutes, got %q", value)
			}
			cfg.IntervalMinutes = minutes
		case "auto-commit":
			enabled, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("auto-commit must be true or false, got %q", value)
			}
			cfg.AutoCommit = enabled
		case "auto-start":
			enabled, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("auto-start must be true or false, got %q", value)
			}
			cfg.AutoStart = enabled
		case "api-key":
			cfg.APIKey = value
		default:
			return fmt.Errorf("unknown key %q (repo, interval, auto-commit, auto-start, api-key)", key)
		}

		if err := saveConfig(cfg); err != nil {
			return err
		}
		store.Replace(cfg)
		fmt.Printf("Saved %s.\n", key)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configFilePath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd, configPathCmd)
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}

// maskKey keeps a short prefix so keys stay distinguishable without
// leaking the credential.
func maskKey(key string) string {
	if key == "" {
		return "(unset)"
	}
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-4)
}
