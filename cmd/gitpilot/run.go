package main

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [path]",
	Short: "Commit and push pending changes once",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := repoPath(args)
		if err != nil {
			return err
		}

		p, err := newPipeline(path)
		if err != nil {
			return err
		}

		s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
		s.Suffix = " Committing pending changes..."
		s.Start()
		out, err := p.Run(cmd.Context(), path)
		s.Stop()
		if err != nil {
			return err
		}

		if out.NoChanges {
			fmt.Println("No changes to commit.")
			return nil
		}
		fmt.Printf("Committed and pushed: %s\n", out.Message)
		return nil
	},
}
