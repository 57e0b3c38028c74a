package gitpilot

import "strings"

// CleanMessage sanitizes a generated commit message: surrounding
// whitespace is trimmed, and one layer of enclosing straight quotes
// (double or single) is removed if the message is wrapped in a matching
// pair. The message content is otherwise returned verbatim.
func CleanMessage(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}
