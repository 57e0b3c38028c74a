package gitpilot

import "unicode/utf8"

// MaxDiffChars bounds the detailed diff text forwarded to the remote
// service, to stay within its input limits. The stat section is always
// forwarded in full.
const MaxDiffChars = 10000

// DiffSummary describes the staged changes sent to the message generator.
type DiffSummary struct {
	Stat      string // compact summary (git diff --cached --stat)
	Body      string // detailed diff, possibly truncated
	Truncated bool   // whether Body was cut to the budget
}

// Text returns the combined text forwarded to the generator.
func (d DiffSummary) Text() string {
	return d.Stat + "\n\n" + d.Body
}

// NewDiffSummary builds a summary from a stat section and a full diff
// body, truncating the body to limit bytes. The cut point is moved back
// to the nearest rune boundary so a multi-byte character is never split.
func NewDiffSummary(stat, body string, limit int) DiffSummary {
	truncated := truncateToRuneBoundary(body, limit)
	return DiffSummary{
		Stat:      stat,
		Body:      truncated,
		Truncated: len(truncated) < len(body),
	}
}

// StagedDiffer reports the staged changes of a repository.
type StagedDiffer interface {
	StagedStat() (string, error)
	StagedDiff() (string, error)
}

// CollectDiff gathers the staged diff summary for a repository,
// bounded by limit.
func CollectDiff(repo StagedDiffer, limit int) (DiffSummary, error) {
	stat, err := repo.StagedStat()
	if err != nil {
		return DiffSummary{}, err
	}
	body, err := repo.StagedDiff()
	if err != nil {
		return DiffSummary{}, err
	}
	return NewDiffSummary(stat, body, limit), nil
}

// truncateToRuneBoundary returns s cut to at most limit bytes, backing
// up so the result ends on a complete UTF-8 sequence.
func truncateToRuneBoundary(s string, limit int) string {
	if limit < 0 {
		limit = 0
	}
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
