package parse

import (
	"regexp"
	"strings"

	"github.com/joseph-ayodele/election-extractor/internal/entity"
	"github.com/joseph-ayodele/election-extractor/internal/runconfig"
)

// Event header patterns. Each field keeps its first capture within the
// header window; fields that never match stay empty.
var (
	dateSlash = regexp.MustCompile(
		`^(?:0[1-9]|1[0-2]|[1-9])/(?:[1-9]|0[1-9]|[12][0-9]|3[01])/(?:19|20)\d{2}$`)
	dateMonth = regexp.MustCompile(
		`(?i)^.*\s([A-Z][a-z]+\s+\d{1,2},\s+\d{4})$`)
	electionType = regexp.MustCompile(
		`(?i)^.*\s[-—–]\s(.*election.*)\s[-—–].*`)
	countyPat = regexp.MustCompile(
		`(?i)^(.*?\s*County)(.*)`)
	totalVoters = regexp.MustCompile(
		`Total Number of Voters\s*:\s+(\d{1,3}(?:,\d{3})*)`)
	ballotsRatio = regexp.MustCompile(
		`^(\d{1,3}(?:,\d{3})+|\d+)\s+of\s+(\d{1,3}(?:,\d{3})+|\d+)\s+=\s+\d+\.\d{2}%$`)
	fileParty = regexp.MustCompile(`(?i)(Dem|Rep)`)
)

// EventExtractor scans a document's header window for event metadata and
// applies configured overrides on top of whatever was extracted.
type EventExtractor struct {
	Overrides *runconfig.Overrides
}

// Extract builds the Event for one document. lines is the header window
// (already cut off at the first precinct header or the window size).
func (e *EventExtractor) Extract(lines []string, sourceFile string) *entity.Event {
	ev := &entity.Event{SourceFile: sourceFile}

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if ev.Date == "" {
			if dateSlash.MatchString(line) {
				ev.Date = line
			} else if m := dateMonth.FindStringSubmatch(line); m != nil {
				ev.Date = m[1]
			}
		}
		if ev.ElectionType == "" {
			if m := electionType.FindStringSubmatch(line); m != nil {
				ev.ElectionType = strings.TrimSpace(m[1])
			}
		}
		if ev.County == "" {
			if m := countyPat.FindStringSubmatch(line); m != nil {
				ev.County = strings.TrimSpace(m[1])
			}
		}
		if ev.TotalBallots == "" {
			if m := ballotsRatio.FindStringSubmatch(line); m != nil {
				ev.TotalBallots = NormalizeCount(m[1])
			} else if totalVoters.MatchString(line) && i+1 < len(lines) {
				// The figure sits on the line after the label in some layouts.
				if m := ballotsRatio.FindStringSubmatch(strings.TrimSpace(lines[i+1])); m != nil {
					ev.TotalBallots = NormalizeCount(m[1])
				}
			}
		}
	}

	if m := fileParty.FindStringSubmatch(sourceFile); m != nil {
		ev.Party = strings.ToUpper(m[1])
	}

	// Override layering: extraction first, configuration wins.
	if e.Overrides != nil {
		if e.Overrides.FixedDate != "" {
			ev.Date = e.Overrides.FixedDate
		}
		if e.Overrides.FixedTotalBallots != "" {
			ev.TotalBallots = e.Overrides.FixedTotalBallots
		}
		if p := e.Overrides.PartyFor(sourceFile); p != "" {
			ev.Party = strings.ToUpper(p)
		}
	}
	return ev
}
