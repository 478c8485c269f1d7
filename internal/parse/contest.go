package parse

import (
	"regexp"
	"strings"

	"github.com/joseph-ayodele/election-extractor/constants"
	"github.com/joseph-ayodele/election-extractor/internal/entity"
)

var (
	officePatterns = func() []*regexp.Regexp {
		pats := make([]*regexp.Regexp, 0, len(constants.OfficeTerms))
		for _, term := range constants.OfficeTerms {
			pats = append(pats, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(term)+`\b`))
		}
		return pats
	}()

	blacklistRe = func() *regexp.Regexp {
		quoted := make([]string, 0, len(constants.BlacklistTitles))
		for _, t := range constants.BlacklistTitles {
			quoted = append(quoted, regexp.QuoteMeta(t))
		}
		return regexp.MustCompile(`(?i)^(?:` + strings.Join(quoted, "|") + `)`)
	}()

	// partyAlt is the alternation of known party codes, shared by the
	// contest-title and candidate-row patterns.
	partyAlt = func() string {
		quoted := make([]string, 0, len(constants.PartyCodes))
		for _, p := range constants.PartyCodes {
			quoted = append(quoted, regexp.QuoteMeta(p))
		}
		return strings.Join(quoted, "|")
	}()

	titleParty  = regexp.MustCompile(`(?i)\((` + partyAlt + `)\)`)
	voteForPat  = regexp.MustCompile(`(?i)\bvote for (\d+)\b`)
	parenMods   = regexp.MustCompile(`\(([^)]*)\)`)
	summaryLead = regexp.MustCompile(`(?i)^(Cast|Over|Under)\s*Votes?:?`)

	phraseHyphen, phraseComma = func() (*regexp.Regexp, *regexp.Regexp) {
		quoted := make([]string, 0, len(constants.PhraseModifiers))
		for _, p := range constants.PhraseModifiers {
			quoted = append(quoted, regexp.QuoteMeta(p))
		}
		phrases := strings.Join(quoted, "|")
		return regexp.MustCompile(`(?i)\s*-\s*(` + phrases + `)(?:\s|$)`),
			regexp.MustCompile(`(?i)\s*,\s*(` + phrases + `)(?:\s|$)`)
	}()

	summaryWithPercent = regexp.MustCompile(`(?i)(?:Cast|Over|Under)\s*Votes?[:\s]+.*?\s(\d{1,3}(?:,\d{3})*)\s+\d+\.\d{2}%$`)
	summaryPlain       = regexp.MustCompile(`(?i)(?:Cast|Over|Under)\s*Votes?[:\s]+.*?\s(\d{1,3}(?:,\d{3})*)$`)
	anyCount           = regexp.MustCompile(`\d{1,3}(?:,\d{3})*`)
)

// IsContestTitle reports whether a line opens a contest segment: it must
// contain an office term and must not be a blacklisted report header.
func IsContestTitle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || blacklistRe.MatchString(line) {
		return false
	}
	// Summary rows mention offices often enough to need an early reject.
	if summaryLead.MatchString(line) {
		return false
	}
	for _, pat := range officePatterns {
		if pat.MatchString(line) {
			return true
		}
	}
	return false
}

// ParseContestTitle builds a Contest from a title line: the party token
// is stripped into Party, phrase and parenthetical qualifiers into
// Modifier, and a "Vote for N" capture into VoteFor.
func ParseContestTitle(line string) (*entity.Contest, bool) {
	line = strings.TrimSpace(line)
	if !IsContestTitle(line) {
		return nil, false
	}

	ct := &entity.Contest{Title: line, VoteFor: "1"}

	if m := titleParty.FindStringSubmatch(line); m != nil {
		ct.Party, _ = constants.CanonicalParty(m[1])
		ct.Title = strings.TrimSpace(titleParty.ReplaceAllString(line, ""))
	}
	if m := voteForPat.FindStringSubmatch(line); m != nil {
		ct.VoteFor = m[1]
	}

	var mods []string
	for _, m := range parenMods.FindAllStringSubmatch(ct.Title, -1) {
		// "At large" is part of the office itself, and "(Vote for N)" is
		// already captured into VoteFor.
		if strings.Contains(strings.ToLower(m[1]), "at large") || voteForPat.MatchString(m[1]) {
			continue
		}
		mods = append(mods, m[1])
	}
	for _, m := range phraseHyphen.FindAllStringSubmatch(ct.Title, -1) {
		mods = append(mods, m[1])
	}
	for _, m := range phraseComma.FindAllStringSubmatch(ct.Title, -1) {
		mods = append(mods, m[1])
	}
	ct.Modifier = strings.TrimSpace(strings.Join(mods, " "))

	return ct, true
}

// SummaryField identifies which tally a summary row carries.
type SummaryField int

const (
	SummaryCast SummaryField = iota
	SummaryOver
	SummaryUnder
)

// ParseSummary matches Cast/Over/Under Votes rows in their percent and
// plain layouts, falling back to the last count on the line.
func ParseSummary(line string) (SummaryField, string, bool) {
	line = strings.TrimSpace(line)
	lead := summaryLead.FindStringSubmatch(line)
	if lead == nil {
		return 0, "", false
	}

	var value string
	if m := summaryWithPercent.FindStringSubmatch(line); m != nil {
		value = NormalizeCount(m[1])
	} else if m := summaryPlain.FindStringSubmatch(line); m != nil {
		value = NormalizeCount(m[1])
	} else if counts := anyCount.FindAllString(line, -1); len(counts) > 0 {
		value = NormalizeCount(counts[len(counts)-1])
	}
	if value == "" {
		return 0, "", false
	}

	switch strings.ToLower(lead[1]) {
	case "over":
		return SummaryOver, value, true
	case "under":
		return SummaryUnder, value, true
	default:
		return SummaryCast, value, true
	}
}
