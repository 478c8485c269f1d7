package parse

import (
	"log/slog"
	"strings"

	"github.com/joseph-ayodele/election-extractor/internal/entity"
	"github.com/joseph-ayodele/election-extractor/internal/pdftext"
	"github.com/joseph-ayodele/election-extractor/internal/runconfig"
)

// Stats summarizes one document's segmentation pass.
type Stats struct {
	PrecinctHeaders    int
	PrecinctsClosed    int
	PrecinctsDiscarded int
	ContestsClosed     int
	CandidateRows      int
	NoiseLines         int
}

// DocumentResult is the full hierarchy extracted from one document plus
// its denormalized rows in extraction order.
type DocumentResult struct {
	Event     *entity.Event
	Precincts []*entity.Precinct
	Rows      []entity.Row
	Stats     Stats
}

// Parser runs the extractor chain over one document's line stream.
type Parser struct {
	Logger       *slog.Logger
	Overrides    *runconfig.Overrides
	HeaderWindow int // lines of page 1 scanned for event metadata
}

func NewParser(logger *slog.Logger, ov *runconfig.Overrides, headerWindow int) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	if headerWindow <= 0 {
		headerWindow = 15
	}
	return &Parser{Logger: logger, Overrides: ov, HeaderWindow: headerWindow}
}

// ParseDocument makes a single forward pass over the document's pages.
// With pattern parsing disabled it returns an empty result; there is no
// non-pattern extraction path.
func (p *Parser) ParseDocument(pages []pdftext.Page, sourceFile string) *DocumentResult {
	if !p.Overrides.ParsingEnabled() {
		p.Logger.Warn("pattern parsing disabled, skipping document", "file", sourceFile)
		return &DocumentResult{Event: &entity.Event{SourceFile: sourceFile}}
	}

	ex := &EventExtractor{Overrides: p.Overrides}
	event := ex.Extract(p.headerLines(pages), sourceFile)

	s := &segmenter{
		logger: p.Logger,
		policy: p.Overrides.DuplicatePolicy(),
		event:  event,
		forced: strings.ToUpper(p.Overrides.PartyFor(sourceFile)),
	}
	for _, page := range pages {
		s.page = page.Number
		for i, line := range page.Lines {
			s.lineNo = i + 1
			s.feed(line)
		}
	}
	s.finish()

	return &DocumentResult{
		Event:     event,
		Precincts: s.precincts,
		Rows:      s.rows,
		Stats:     s.stats,
	}
}

// headerLines cuts the event window: first-page lines up to the window
// size or the first precinct header, whichever comes first.
func (p *Parser) headerLines(pages []pdftext.Page) []string {
	if len(pages) == 0 {
		return nil
	}
	lines := pages[0].Lines
	if len(lines) > p.HeaderWindow {
		lines = lines[:p.HeaderWindow]
	}
	for i, line := range lines {
		if k := Classify(line, CtxScanning); k == KindPrecinctHeader || k == KindRegisteredHeader {
			return lines[:i]
		}
	}
	return lines
}

// segmenter is the two-level state machine over the line stream. Its
// state is the classifier context; transitions close the deeper segment
// before opening a sibling.
type segmenter struct {
	logger *slog.Logger
	policy string
	event  *entity.Event
	forced string // configured party override for this document

	state       Context
	precinct    *entity.Precinct
	contest     *entity.Contest
	contestSeen bool // since the current precinct opened

	precincts []*entity.Precinct
	rows      []entity.Row
	stats     Stats

	page   int
	lineNo int
}

func (s *segmenter) feed(line string) {
	switch Classify(line, s.state) {
	case KindTurnout:
		t, _ := ParseRegisteredLine(line)
		if s.precinct.RegisteredVoters == "" {
			s.precinct.RegisteredVoters = t.RegisteredVoters
		}
		if s.precinct.BallotsCast == "" {
			s.precinct.BallotsCast = t.BallotsCast
		}
		if s.precinct.TurnoutPercent == "" {
			s.precinct.TurnoutPercent = t.TurnoutPercent
		}

	case KindPrecinctHeader:
		next, _ := ParsePrecinctHeader(line)
		s.openPrecinct(next)

	case KindRegisteredHeader:
		next, _ := ParseRegisteredLine(line)
		s.openPrecinct(next)

	case KindSummary:
		field, value, _ := ParseSummary(line)
		s.applySummary(field, value)

	case KindContestHeader:
		s.closeContest()
		ct, _ := ParseContestTitle(line)
		if s.forced != "" {
			ct.Party = s.forced
		}
		s.contest = ct
		s.contestSeen = true
		s.state = CtxContest
		s.logger.Debug("contest open", "title", ct.Title, "page", s.page)

	case KindCandidate:
		fallback := s.contest.Party
		if fallback == "" {
			fallback = s.event.Party
		}
		cand, ok := ParseCandidate(line, fallback)
		if !ok || cand.Name == "" {
			s.logger.Warn("candidate row without a name, discarding",
				"file", s.event.SourceFile, "page", s.page, "line", s.lineNo)
			return
		}
		s.contest.Candidates = append(s.contest.Candidates, cand)
		s.stats.CandidateRows++

	default:
		s.stats.NoiseLines++
		s.logger.Debug("unmatched line", "page", s.page, "line", s.lineNo, "text", clip(line))
	}
}

// openPrecinct closes the previous segment and opens the next one. A
// repeated header for the same number with no contest in between follows
// the configured duplicate policy.
func (s *segmenter) openPrecinct(next *entity.Precinct) {
	s.stats.PrecinctHeaders++

	if s.precinct != nil && !s.contestSeen && s.precinct.Number == next.Number &&
		s.policy == runconfig.DuplicateMerge {
		if s.precinct.BallotsCast == "" {
			s.precinct.BallotsCast = next.BallotsCast
		}
		if s.precinct.RegisteredVoters == "" {
			s.precinct.RegisteredVoters = next.RegisteredVoters
		}
		if s.precinct.TurnoutPercent == "" {
			s.precinct.TurnoutPercent = next.TurnoutPercent
		}
		s.logger.Debug("duplicate precinct header merged", "number", next.Number, "page", s.page)
		return
	}

	s.closePrecinct()
	s.precinct = next
	s.contestSeen = false
	s.state = CtxPrecinct
	s.logger.Debug("precinct open", "number", next.Number, "ballots_cast", next.BallotsCast, "page", s.page)
}

func (s *segmenter) applySummary(field SummaryField, value string) {
	if s.state == CtxContest {
		switch field {
		case SummaryCast:
			if s.contest.CastVotes == "" {
				s.contest.CastVotes = value
			}
		case SummaryOver:
			if s.contest.Overvotes == "" {
				s.contest.Overvotes = value
			}
		case SummaryUnder:
			if s.contest.Undervotes == "" {
				s.contest.Undervotes = value
			}
		}
		return
	}
	// Before any contest the tallies belong to the precinct itself.
	switch field {
	case SummaryOver:
		if s.precinct.Overvotes == "" {
			s.precinct.Overvotes = value
		}
	case SummaryUnder:
		if s.precinct.Undervotes == "" {
			s.precinct.Undervotes = value
		}
	case SummaryCast:
		s.logger.Debug("cast-votes row outside a contest", "page", s.page, "line", s.lineNo)
	}
}

func (s *segmenter) closeContest() {
	if s.contest == nil {
		return
	}
	s.precinct.Contests = append(s.precinct.Contests, s.contest)
	s.stats.ContestsClosed++
	s.contest = nil
	s.state = CtxPrecinct
}

// closePrecinct finalizes the open segment. A precinct that ends without
// a number is discarded with all its descendants.
func (s *segmenter) closePrecinct() {
	s.closeContest()
	if s.precinct == nil {
		return
	}
	if s.precinct.Number == "" {
		s.logger.Warn("precinct segment without a number, discarding",
			"file", s.event.SourceFile, "page", s.page, "line", s.lineNo)
		s.stats.PrecinctsDiscarded++
	} else {
		s.precincts = append(s.precincts, s.precinct)
		s.stats.PrecinctsClosed++
		for _, ct := range s.precinct.Contests {
			for _, cand := range ct.Candidates {
				s.rows = append(s.rows, entity.Flatten(s.event, s.precinct, ct, cand))
			}
		}
	}
	s.precinct = nil
	s.contestSeen = false
	s.state = CtxScanning
}

// finish closes the last open segment at end of stream.
func (s *segmenter) finish() {
	s.closePrecinct()
}

func clip(s string) string {
	if len(s) <= 80 {
		return s
	}
	r := []rune(s)
	if len(r) <= 80 {
		return s
	}
	return string(r[:80])
}
