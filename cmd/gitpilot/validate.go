package main

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	gitpilot "github.com/randalmurphal/gitpilot"
	"github.com/randalmurphal/gitpilot/gemini"
)

var validateKeyCmd = &cobra.Command{
	Use:   "validate-key [key]",
	Short: "Check an API key against the remote service",
	Long: `validate-key sends a minimal request with the given key, or the
stored one when no argument is passed, and reports whether the service
accepts it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := store.Get().APIKey
		if len(args) > 0 {
			key = args[0]
		}
		if key == "" {
			return gitpilot.ErrAPIKeyMissing
		}

		client, err := gemini.NewClient()
		if err != nil {
			return err
		}

		s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
		s.Suffix = " Validating API key..."
		s.Start()
		err = client.ValidateKey(cmd.Context(), key)
		s.Stop()
		if err != nil {
			return fmt.Errorf("key rejected: %w", err)
		}

		fmt.Println("API key is valid.")
		return nil
	},
}
