package parse

import (
	"regexp"
	"strings"

	"github.com/joseph-ayodele/election-extractor/constants"
	"github.com/joseph-ayodele/election-extractor/internal/entity"
)

var (
	// Parenthesized layout: NAME (PARTY) total [early] [absentee] [election-day]
	candidateColumnar = regexp.MustCompile(`(?i)^\s*` +
		`(?P<name>.+?)\s+` +
		`\((?P<party>` + partyAlt + `)?\)\s+` +
		`(?P<total>\d{1,3}(?:,\d{3})*)` +
		`(?:\s+(?P<early>\d{1,3}(?:,\d{3})*))?` +
		`(?:\s+(?P<absentee>\d{1,3}(?:,\d{3})*))?` +
		`(?:\s+(?P<eday>\d{1,3}(?:,\d{3})*))?` +
		`\s*$`)

	// Percent layout helpers: counts with an optional trailing percent,
	// and a bare party token not wrapped in parentheses.
	votePair  = regexp.MustCompile(`(\d{1,3}(?:,\d{3})*)\s*(?:\d+\.\d{2}%)?`)
	bareParty = regexp.MustCompile(`(?i)\b(` + partyAlt + `)\b`)
	anyDigit  = regexp.MustCompile(`\d`)
	spaces    = regexp.MustCompile(`\s+`)
)

// ParseCandidate matches one candidate row. The parenthesized columnar
// layout is tried first; rows without parentheses fall back to the
// strip-based parse (collect counts, lift a bare party token, whatever
// remains is the name). Rows with no counts or no name do not match.
func ParseCandidate(line, fallbackParty string) (*entity.CandidateResult, bool) {
	line = strings.TrimSpace(line)
	if line == "" || !anyDigit.MatchString(line) {
		return nil, false
	}
	// Report decoration ("Page 3 of 12") carries counts the stripped
	// parse would otherwise read as a candidate row.
	if blacklistRe.MatchString(line) {
		return nil, false
	}

	if m := candidateColumnar.FindStringSubmatch(line); m != nil {
		party, _ := constants.CanonicalParty(m[2])
		cand := &entity.CandidateResult{
			Name:             strings.TrimSpace(m[1]),
			Party:            party,
			TotalVotes:       NormalizeCount(m[3]),
			EarlyVotes:       NormalizeCount(m[4]),
			AbsenteeVotes:    NormalizeCount(m[5]),
			ElectionDayVotes: NormalizeCount(m[6]),
		}
		if cand.Party == "" {
			cand.Party = fallbackParty
		}
		if cand.Name == "" {
			return nil, false
		}
		return cand, true
	}

	return parseStripped(line, fallbackParty)
}

// parseStripped handles the percent-column layout where the total is the
// last count on the line.
func parseStripped(line, fallbackParty string) (*entity.CandidateResult, bool) {
	pairs := votePair.FindAllStringSubmatch(line, -1)
	if len(pairs) == 0 {
		return nil, false
	}
	counts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		counts = append(counts, NormalizeCount(p[1]))
	}

	rest := votePair.ReplaceAllString(line, "")
	party := ""
	if m := bareParty.FindStringSubmatch(rest); m != nil {
		party, _ = constants.CanonicalParty(m[1])
		rest = bareParty.ReplaceAllString(rest, "")
	}
	name := strings.TrimSpace(spaces.ReplaceAllString(rest, " "))
	if name == "" {
		return nil, false
	}
	if party == "" {
		party = fallbackParty
	}

	// Channel order in this layout: absentee, early, election-day, with
	// the total always the last count on the line.
	cand := &entity.CandidateResult{Name: name, Party: party, TotalVotes: counts[len(counts)-1]}
	if len(counts) > 2 {
		cand.AbsenteeVotes = counts[0]
	}
	if len(counts) > 1 {
		cand.EarlyVotes = counts[1]
	}
	if len(counts) > 3 {
		cand.ElectionDayVotes = counts[2]
	}
	return cand, true
}
