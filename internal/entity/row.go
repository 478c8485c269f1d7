package entity

// Row is the fully joined Event x Precinct x Contest x CandidateResult
// record, one per output line. Ancestor fields repeat across all rows of
// the same segment.
type Row struct {
	EventDate          string
	EventType          string
	County             string
	Party              string
	TotalBallots       string
	PrecinctNumber     string
	BallotsCast        string
	RegisteredVoters   string
	PrecinctOvervotes  string
	PrecinctUndervotes string
	Office             string
	OfficeModifier     string
	RawTitle           string
	ContestParty       string
	NWinners           string
	CastVotes          string
	Overvotes          string
	Undervotes         string
	Candidate          string
	CandidateParty     string
	VoteChannel        string
	TotalVotes         string
	EarlyVotes         string
	AbsenteeVotes      string
	ElectionDayVotes   string
	SourceFile         string
}

// RowHeaders is the artifact column order. Keep in sync with Values.
var RowHeaders = []string{
	"Event_Date", "Event_Type", "County", "Party", "Total_Ballots",
	"Precinct_Number", "Ballots_Cast", "Registered_Voters",
	"Precinct_Overvotes", "Precinct_Undervotes",
	"Office", "Office_Modifier", "Raw_Title", "Contest_Party", "N_Winners",
	"Cast_Votes", "Overvotes", "Undervotes",
	"Candidate", "Candidate_Party", "Vote_Channel",
	"Total_Votes", "Early_Votes", "Absentee_Votes", "Election_Day_Votes",
	"Source_File",
}

// Values returns the row fields in RowHeaders order.
func (r *Row) Values() []string {
	return []string{
		r.EventDate, r.EventType, r.County, r.Party, r.TotalBallots,
		r.PrecinctNumber, r.BallotsCast, r.RegisteredVoters,
		r.PrecinctOvervotes, r.PrecinctUndervotes,
		r.Office, r.OfficeModifier, r.RawTitle, r.ContestParty, r.NWinners,
		r.CastVotes, r.Overvotes, r.Undervotes,
		r.Candidate, r.CandidateParty, r.VoteChannel,
		r.TotalVotes, r.EarlyVotes, r.AbsenteeVotes, r.ElectionDayVotes,
		r.SourceFile,
	}
}

// Flatten denormalizes one candidate with its full ancestor chain.
func Flatten(ev *Event, p *Precinct, ct *Contest, cand *CandidateResult) Row {
	return Row{
		EventDate:          ev.Date,
		EventType:          ev.ElectionType,
		County:             ev.County,
		Party:              ev.Party,
		TotalBallots:       ev.TotalBallots,
		PrecinctNumber:     p.Number,
		BallotsCast:        p.BallotsCast,
		RegisteredVoters:   p.RegisteredVoters,
		PrecinctOvervotes:  p.Overvotes,
		PrecinctUndervotes: p.Undervotes,
		Office:             ct.Office(),
		OfficeModifier:     ct.Modifier,
		RawTitle:           ct.Title,
		ContestParty:       ct.Party,
		NWinners:           ct.VoteFor,
		CastVotes:          ct.CastVotes,
		Overvotes:          ct.Overvotes,
		Undervotes:         ct.Undervotes,
		Candidate:          cand.Name,
		CandidateParty:     cand.Party,
		VoteChannel:        cand.VoteChannel(),
		TotalVotes:         cand.TotalVotes,
		EarlyVotes:         cand.EarlyVotes,
		AbsenteeVotes:      cand.AbsenteeVotes,
		ElectionDayVotes:   cand.ElectionDayVotes,
		SourceFile:         ev.SourceFile,
	}
}
