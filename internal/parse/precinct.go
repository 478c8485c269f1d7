package parse

import (
	"regexp"

	"github.com/joseph-ayodele/election-extractor/internal/entity"
)

// Precinct header forms, tried in order:
//
//	"Precinct 3040 (Ballots Cast: 356)"
//	"3040 356 ballots cast"
//	"1001 379 of 1,760 registered voters = 21.53%"
var (
	precinctParen = regexp.MustCompile(
		`(?i)^\s*(?:Precinct\s*)?(\d+(?:-\w+)?)\s*\(Ballots Cast:\s*(\d{1,3}(?:,\d{3})*)\)`)
	precinctSimple = regexp.MustCompile(
		`(?i)^\s*(?:Precinct\s*)?(\d+(?:-\w+)?)\s+(\d{1,3}(?:,\d{3})*)\s+ballots\s+cast`)
	precinctRegistered = regexp.MustCompile(
		`(?i)^\s*(\d+(?:-\w+)?)\s+(\d{1,3}(?:,\d{3})*)\s+of\s+(\d{1,3}(?:,\d{3})*)\s+registered voters` +
			`(?:\s*=\s*(\d{1,3}(?:,\d{3})*(?:\.\d+)?%))?`)
)

// ParsePrecinctHeader matches the ballots-cast header forms that always
// open a segment, regardless of context.
func ParsePrecinctHeader(line string) (*entity.Precinct, bool) {
	if m := precinctParen.FindStringSubmatch(line); m != nil {
		return &entity.Precinct{Number: m[1], BallotsCast: NormalizeCount(m[2])}, true
	}
	if m := precinctSimple.FindStringSubmatch(line); m != nil {
		return &entity.Precinct{Number: m[1], BallotsCast: NormalizeCount(m[2])}, true
	}
	return nil, false
}

// ParseRegisteredLine matches the "N M of R registered voters = P%"
// form. With no precinct open it opens one; inside an open precinct the
// same line is a turnout update for that segment.
func ParseRegisteredLine(line string) (*entity.Precinct, bool) {
	m := precinctRegistered.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	return &entity.Precinct{
		Number:           m[1],
		BallotsCast:      NormalizeCount(m[2]),
		RegisteredVoters: NormalizeCount(m[3]),
		TurnoutPercent:   NormalizePercent(m[4]),
	}, true
}
