package parse

import "testing"

// The classifier is first-match-wins over an ordered table, so these
// cases pin both the per-rule matching and the ordering decisions.
func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		ctx  Context
		want Kind
	}{
		{
			name: "ballots-cast header while scanning",
			line: "Precinct 3040 (Ballots Cast: 356)",
			ctx:  CtxScanning,
			want: KindPrecinctHeader,
		},
		{
			name: "ballots-cast header closes an open contest",
			line: "Precinct 3041 (Ballots Cast: 120)",
			ctx:  CtxContest,
			want: KindPrecinctHeader,
		},
		{
			name: "registered line opens a segment while scanning",
			line: "1001 379 of 1,760 registered voters = 21.53%",
			ctx:  CtxScanning,
			want: KindRegisteredHeader,
		},
		{
			name: "registered line inside a precinct is turnout",
			line: "1001 379 of 1,760 registered voters = 21.53%",
			ctx:  CtxPrecinct,
			want: KindTurnout,
		},
		{
			name: "registered line inside a contest is turnout",
			line: "1001 379 of 1,760 registered voters = 21.53%",
			ctx:  CtxContest,
			want: KindTurnout,
		},
		{
			name: "summary wins over candidate inside a contest",
			line: "Cast Votes: 3,579 100.00%",
			ctx:  CtxContest,
			want: KindSummary,
		},
		{
			name: "summary before any contest",
			line: "Overvotes: 2",
			ctx:  CtxPrecinct,
			want: KindSummary,
		},
		{
			name: "contest title inside a precinct",
			line: "City Council Member, Place 3 (Rep)",
			ctx:  CtxPrecinct,
			want: KindContestHeader,
		},
		{
			name: "candidate row inside a contest",
			line: "JANE DOE (Dem) 1,234",
			ctx:  CtxContest,
			want: KindCandidate,
		},
		{
			name: "candidate row outside a contest is noise",
			line: "JANE DOE (Dem) 1,234",
			ctx:  CtxPrecinct,
			want: KindNoise,
		},
		{
			name: "contest title is not recognized while scanning",
			line: "City Council Member, Place 3 (Rep)",
			ctx:  CtxScanning,
			want: KindNoise,
		},
		{
			name: "decoration is noise everywhere",
			line: "Page 3 of 12",
			ctx:  CtxContest,
			want: KindNoise,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.line, tt.ctx); got != tt.want {
				t.Errorf("Classify(%q, %v) = %v, want %v", tt.line, tt.ctx, got, tt.want)
			}
		})
	}
}
