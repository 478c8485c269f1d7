package parse

// Context is the open-segment level the classifier is gating on.
type Context int

const (
	// CtxScanning: no precinct opened yet (or between segments).
	CtxScanning Context = iota
	// CtxPrecinct: a precinct is open, no contest yet.
	CtxPrecinct
	// CtxContest: a contest is open inside a precinct.
	CtxContest
)

// Kind is the semantic role the classifier assigns to a line.
type Kind int

const (
	KindNoise Kind = iota
	KindTurnout
	KindPrecinctHeader
	KindRegisteredHeader
	KindSummary
	KindContestHeader
	KindCandidate
)

func (k Kind) String() string {
	switch k {
	case KindTurnout:
		return "turnout"
	case KindPrecinctHeader:
		return "precinct-header"
	case KindRegisteredHeader:
		return "registered-header"
	case KindSummary:
		return "summary"
	case KindContestHeader:
		return "contest-header"
	case KindCandidate:
		return "candidate"
	}
	return "noise"
}

// Rule pairs a predicate with the kind it assigns and the contexts it is
// attempted in. Rules is ordered; classification is first-match-wins, so
// edits here are behavior edits.
type Rule struct {
	Kind     Kind
	Contexts []Context
	Matches  func(line string) bool
}

// Rules is the classifier table. Order matters:
//   - a registered-voters line inside an open precinct is a turnout
//     update, never a new segment;
//   - ballots-cast headers open a segment from any context;
//   - summary rows must be rejected before candidate matching.
var Rules = []Rule{
	{
		Kind:     KindTurnout,
		Contexts: []Context{CtxPrecinct, CtxContest},
		Matches:  func(line string) bool { _, ok := ParseRegisteredLine(line); return ok },
	},
	{
		Kind:     KindPrecinctHeader,
		Contexts: []Context{CtxScanning, CtxPrecinct, CtxContest},
		Matches:  func(line string) bool { _, ok := ParsePrecinctHeader(line); return ok },
	},
	{
		Kind:     KindRegisteredHeader,
		Contexts: []Context{CtxScanning},
		Matches:  func(line string) bool { _, ok := ParseRegisteredLine(line); return ok },
	},
	{
		Kind:     KindSummary,
		Contexts: []Context{CtxPrecinct, CtxContest},
		Matches:  func(line string) bool { _, _, ok := ParseSummary(line); return ok },
	},
	{
		Kind:     KindContestHeader,
		Contexts: []Context{CtxPrecinct, CtxContest},
		Matches:  IsContestTitle,
	},
	{
		Kind:     KindCandidate,
		Contexts: []Context{CtxContest},
		Matches:  func(line string) bool { _, ok := ParseCandidate(line, ""); return ok },
	},
}

// Classify assigns a line its semantic role for the given context. Lines
// matching no rule are noise; that is common and never an error.
func Classify(line string, ctx Context) Kind {
	for _, r := range Rules {
		if !appliesTo(r, ctx) {
			continue
		}
		if r.Matches(line) {
			return r.Kind
		}
	}
	return KindNoise
}

func appliesTo(r Rule, ctx Context) bool {
	for _, c := range r.Contexts {
		if c == ctx {
			return true
		}
	}
	return false
}
