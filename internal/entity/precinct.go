package entity

// Precinct is one precinct summary block within a document. Number is
// the only required field; a segment without one is discarded.
type Precinct struct {
	Number           string
	BallotsCast      string
	RegisteredVoters string
	TurnoutPercent   string
	Overvotes        string
	Undervotes       string

	Contests []*Contest
}
