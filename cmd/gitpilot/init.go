package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/gitpilot/git"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactive first-time setup",
	Long: `init walks through the configuration: which repository to watch,
the API key, and the commit interval. Answers are written to the config
file; press Enter to keep the current value.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := store.Get()
		in := bufio.NewScanner(os.Stdin)

		path := ask(in, "Repository to watch", cfg.RepoPath)
		if path != "" {
			if _, err := git.Open(path); err != nil {
				return err
			}
			cfg.RepoPath = path
		}

		if key := ask(in, "API key", maskKey(cfg.APIKey)); key != "" && key != maskKey(cfg.APIKey) {
			cfg.APIKey = key
		}

		for {
			answer := ask(in, "Commit interval in minutes", strconv.Itoa(cfg.IntervalMinutes))
			if answer == "" || answer == strconv.Itoa(cfg.IntervalMinutes) {
				break
			}
			minutes, err := strconv.Atoi(answer)
			if err != nil || minutes <= 0 {
				fmt.Println("Please enter a positive number of minutes.")
				continue
			}
			cfg.IntervalMinutes = minutes
			break
		}

		cfg.AutoCommit = askBool(in, "Enable automatic commits", cfg.AutoCommit)
		cfg.AutoStart = askBool(in, "Start watching on launch", cfg.AutoStart)

		if err := saveConfig(cfg); err != nil {
			return err
		}
		store.Replace(cfg)

		path, err := configFilePath()
		if err != nil {
			return err
		}
		fmt.Printf("Configuration saved to %s.\n", path)
		return nil
	},
}

// ask prompts on stdout and returns the trimmed answer; an empty answer
// means keep the current value.
func ask(in *bufio.Scanner, question, current string) string {
	if current != "" && current != "(unset)" {
		fmt.Printf("%s [%s]: ", question, current)
	} else {
		fmt.Printf("%s: ", question)
	}
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

func askBool(in *bufio.Scanner, question string, current bool) bool {
	answer := ask(in, question+" (true/false)", strconv.FormatBool(current))
	if answer == "" {
		return current
	}
	value, err := strconv.ParseBool(answer)
	if err != nil {
		fmt.Printf("Keeping %t.\n", current)
		return current
	}
	return value
}
