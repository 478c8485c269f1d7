package entity

import (
	"regexp"
	"strings"
)

// Contest is a single race or ballot measure within a precinct.
type Contest struct {
	Title      string // raw title line, party token stripped
	Party      string // contest-level party code, "" when nonpartisan
	Modifier   string // secondary qualifiers lifted out of the title
	VoteFor    string // "Vote for N" capture, "1" when absent
	CastVotes  string
	Overvotes  string
	Undervotes string

	Candidates []*CandidateResult
}

var voteForSuffix = regexp.MustCompile(`(?i)\s*[\(\[]?(Vote|Elect|Choose|Top)\s+\d+[\)\]]?`)

// Office returns the base office name: the title before any " - "
// qualifier, with "Vote for N"-style suffixes removed.
func (c *Contest) Office() string {
	base := c.Title
	if i := strings.Index(base, " - "); i >= 0 {
		base = base[:i]
	}
	return strings.TrimSpace(voteForSuffix.ReplaceAllString(base, ""))
}
