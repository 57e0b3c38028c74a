// Package prompt provides prompt template loading for the message
// generator. Prompts ship embedded in the binary; a repository can
// override them by placing .txt files under .gitpilot/prompts/.
//
// Core types:
//   - Loader: Loads prompt templates from override directories or
//     embedded resources
//
// Example usage:
//
//	loader := prompt.NewLoader("/path/to/repo")
//	system, err := loader.Load("commit_message")
package prompt
