// Package gemini provides the client for the remote text-generation
// service used to synthesize commit messages, plus a standalone API key
// check.
//
// Core types:
//   - Client: generateContent calls for commit messages and key validation
//   - APIError: Non-success responses with status code and body
//
// The wire contract is a fixed system instruction plus a single user
// turn; only the first candidate's first text part of the response is
// consumed. Calls are not retried and carry no timeout.
package gemini
