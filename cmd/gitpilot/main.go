// Command gitpilot watches a git repository and turns pending changes
// into pushed commits with generated messages.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
