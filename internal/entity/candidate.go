package entity

// CandidateResult is one candidate row within a contest. Vote columns
// that were not reported stay "" so "not reported" and "0" remain
// distinguishable.
type CandidateResult struct {
	Name             string
	Party            string
	TotalVotes       string
	EarlyVotes       string
	AbsenteeVotes    string
	ElectionDayVotes string
}

// VoteChannel names the first populated vote column, defaulting to Total.
func (c *CandidateResult) VoteChannel() string {
	switch {
	case c.TotalVotes != "":
		return "Total"
	case c.EarlyVotes != "":
		return "Early"
	case c.AbsenteeVotes != "":
		return "Absentee"
	case c.ElectionDayVotes != "":
		return "Election Day"
	}
	return "Total"
}
