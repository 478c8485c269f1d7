package parse

import "testing"

func TestParseCandidateColumnar(t *testing.T) {
	tests := []struct {
		name string
		line string
		want struct{ name, party, total, early, absentee, eday string }
	}{
		{
			name: "total only",
			line: "JANE DOE (Dem) 1,234",
			want: struct{ name, party, total, early, absentee, eday string }{
				"JANE DOE", "DEM", "1234", "", "", ""},
		},
		{
			name: "all four columns",
			line: "JOHN SMITH (Rep) 2,345 100 245 2,000",
			want: struct{ name, party, total, early, absentee, eday string }{
				"JOHN SMITH", "REP", "2345", "100", "245", "2000"},
		},
		{
			name: "empty party falls back",
			line: "WRITE-IN () 5",
			want: struct{ name, party, total, early, absentee, eday string }{
				"WRITE-IN", "NP", "5", "", "", ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cand, ok := ParseCandidate(tt.line, "NP")
			if !ok {
				t.Fatalf("ParseCandidate(%q) did not match", tt.line)
			}
			if cand.Name != tt.want.name || cand.Party != tt.want.party {
				t.Errorf("got name=%q party=%q, want %q/%q", cand.Name, cand.Party, tt.want.name, tt.want.party)
			}
			if cand.TotalVotes != tt.want.total || cand.EarlyVotes != tt.want.early ||
				cand.AbsenteeVotes != tt.want.absentee || cand.ElectionDayVotes != tt.want.eday {
				t.Errorf("got votes total=%q early=%q absentee=%q eday=%q, want %q/%q/%q/%q",
					cand.TotalVotes, cand.EarlyVotes, cand.AbsenteeVotes, cand.ElectionDayVotes,
					tt.want.total, tt.want.early, tt.want.absentee, tt.want.eday)
			}
		})
	}
}

func TestParseCandidateStripped(t *testing.T) {
	t.Run("percent column layout", func(t *testing.T) {
		cand, ok := ParseCandidate("JANE DOE 1,234 56.78%", "")
		if !ok {
			t.Fatal("expected match")
		}
		if cand.Name != "JANE DOE" {
			t.Errorf("name = %q, want JANE DOE", cand.Name)
		}
		if cand.TotalVotes != "1234" {
			t.Errorf("total = %q, want 1234", cand.TotalVotes)
		}
	})

	t.Run("bare party token lifted", func(t *testing.T) {
		cand, ok := ParseCandidate("JOHN SMITH REP 10 20 30 40", "")
		if !ok {
			t.Fatal("expected match")
		}
		if cand.Name != "JOHN SMITH" || cand.Party != "REP" {
			t.Errorf("got name=%q party=%q, want JOHN SMITH/REP", cand.Name, cand.Party)
		}
		// Channel order for this layout is absentee, early, election-day,
		// with the total last.
		if cand.AbsenteeVotes != "10" || cand.EarlyVotes != "20" ||
			cand.ElectionDayVotes != "30" || cand.TotalVotes != "40" {
			t.Errorf("got absentee=%q early=%q eday=%q total=%q, want 10/20/30/40",
				cand.AbsenteeVotes, cand.EarlyVotes, cand.ElectionDayVotes, cand.TotalVotes)
		}
	})

	t.Run("three counts leave election day empty", func(t *testing.T) {
		cand, ok := ParseCandidate("MARY JONES 10 20 30", "")
		if !ok {
			t.Fatal("expected match")
		}
		if cand.AbsenteeVotes != "10" || cand.EarlyVotes != "20" ||
			cand.ElectionDayVotes != "" || cand.TotalVotes != "30" {
			t.Errorf("got absentee=%q early=%q eday=%q total=%q, want 10/20/empty/30",
				cand.AbsenteeVotes, cand.EarlyVotes, cand.ElectionDayVotes, cand.TotalVotes)
		}
	})

	t.Run("two counts map early and total", func(t *testing.T) {
		cand, ok := ParseCandidate("MARY JONES 100 356", "")
		if !ok {
			t.Fatal("expected match")
		}
		if cand.AbsenteeVotes != "" || cand.EarlyVotes != "356" || cand.TotalVotes != "356" {
			t.Errorf("got absentee=%q early=%q total=%q, want empty/356/356",
				cand.AbsenteeVotes, cand.EarlyVotes, cand.TotalVotes)
		}
	})

	t.Run("fallback party applied", func(t *testing.T) {
		cand, ok := ParseCandidate("MARY JONES 356", "DEM")
		if !ok {
			t.Fatal("expected match")
		}
		if cand.Party != "DEM" {
			t.Errorf("party = %q, want DEM", cand.Party)
		}
	})
}

func TestParseCandidateRejects(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"no digits", "JANE DOE"},
		{"empty", ""},
		{"counts without a name", "1,234 56.78%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := ParseCandidate(tt.line, ""); ok {
				t.Errorf("ParseCandidate(%q) matched, want no match", tt.line)
			}
		})
	}
}
