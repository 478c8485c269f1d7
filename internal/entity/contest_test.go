package entity

import "testing"

func TestContestOffice(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain title", "District Judge", "District Judge"},
		{"hyphen qualifier dropped", "City Council - Unexpired Term", "City Council"},
		{"vote suffix dropped", "School Board Trustee (Vote 2)", "School Board Trustee"},
		{"elect suffix dropped", "City Council Elect 3", "City Council"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Contest{Title: tt.title}
			if got := c.Office(); got != tt.want {
				t.Errorf("Office() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCandidateVoteChannel(t *testing.T) {
	tests := []struct {
		name string
		cand CandidateResult
		want string
	}{
		{"total present", CandidateResult{TotalVotes: "10"}, "Total"},
		{"early only", CandidateResult{EarlyVotes: "3"}, "Early"},
		{"absentee only", CandidateResult{AbsenteeVotes: "1"}, "Absentee"},
		{"election day only", CandidateResult{ElectionDayVotes: "7"}, "Election Day"},
		{"nothing reported", CandidateResult{}, "Total"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cand.VoteChannel(); got != tt.want {
				t.Errorf("VoteChannel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFlatten(t *testing.T) {
	ev := &Event{Date: "11/08/2022", ElectionType: "General Election",
		County: "Somewhere County", Party: "DEM", TotalBallots: "379",
		SourceFile: "a.txt"}
	p := &Precinct{Number: "3040", BallotsCast: "356", RegisteredVoters: "1760",
		Overvotes: "2", Undervotes: "4"}
	ct := &Contest{Title: "City Council - Unexpired Term", Party: "REP",
		Modifier: "Unexpired", VoteFor: "1", CastVotes: "300", Undervotes: "12"}
	cand := &CandidateResult{Name: "JANE DOE", Party: "DEM", TotalVotes: "150"}

	r := Flatten(ev, p, ct, cand)
	if r.Office != "City Council" || r.RawTitle != "City Council - Unexpired Term" {
		t.Errorf("got office %q raw %q", r.Office, r.RawTitle)
	}
	if r.PrecinctOvervotes != "2" || r.Overvotes != "" {
		t.Errorf("precinct and contest overvotes must stay separate: %+v", r)
	}
	if r.TotalBallots != "379" {
		t.Errorf("total ballots = %q, want 379", r.TotalBallots)
	}
	if len(r.Values()) != len(RowHeaders) {
		t.Fatalf("Values() has %d fields, headers have %d", len(r.Values()), len(RowHeaders))
	}
	for i, h := range RowHeaders {
		if h == "Total_Ballots" && r.Values()[i] != "379" {
			t.Errorf("Values()[%d] (%s) = %q, want 379", i, h, r.Values()[i])
		}
	}
	if r.Values()[0] != "11/08/2022" || r.Values()[len(RowHeaders)-1] != "a.txt" {
		t.Errorf("Values() order drifted from RowHeaders: %v", r.Values())
	}
}
