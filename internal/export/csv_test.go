package export

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/joseph-ayodele/election-extractor/internal/entity"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleRows() []entity.Row {
	return []entity.Row{
		{
			EventDate: "11/08/2022", County: "Somewhere County", TotalBallots: "379",
			PrecinctNumber: "3040", BallotsCast: "356",
			Office: "District Judge", Candidate: "JANE DOE",
			CandidateParty: "DEM", VoteChannel: "Total", TotalVotes: "1234",
			SourceFile: "a.txt",
		},
		{
			EventDate: "11/08/2022", County: "Somewhere County", TotalBallots: "379",
			PrecinctNumber: "3041", BallotsCast: "120",
			Office: "District Judge", Candidate: "JOHN SMITH",
			CandidateParty: "REP", VoteChannel: "Total", TotalVotes: "500",
			SourceFile: "a.txt",
		},
	}
}

func writeArtifact(t *testing.T, path string, rows []entity.Row, batchSize int) {
	t.Helper()
	w := NewCSVWriter(path, batchSize, discard())
	if err := w.Add(rows...); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestCSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "results.csv")
	writeArtifact(t, path, sampleRows(), 300)

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2 rows", len(records))
	}
	if len(records[0]) != len(entity.RowHeaders) || records[0][0] != "Event_Date" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[0][4] != "Total_Ballots" || records[1][4] != "379" {
		t.Errorf("total ballots column missing: %v / %v", records[0], records[1])
	}
	if records[1][5] != "3040" || records[2][5] != "3041" {
		t.Errorf("row order not preserved: %v / %v", records[1], records[2])
	}
}

func TestCSVWriterDeterministic(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "one.csv")
	p2 := filepath.Join(dir, "two.csv")
	// A batch size smaller than the row count forces mid-run flushes.
	writeArtifact(t, p1, sampleRows(), 1)
	writeArtifact(t, p2, sampleRows(), 300)

	b1, err := os.ReadFile(p1)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := os.ReadFile(p2)
	if err != nil {
		t.Fatal(err)
	}
	if string(b1) != string(b2) {
		t.Error("identical input must produce byte-identical artifacts")
	}
}

func TestCSVWriterLazyCreation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	if err := os.WriteFile(path, []byte("previous artifact"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := NewCSVWriter(path, 300, discard())
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "previous artifact" {
		t.Error("a run with no rows must not touch the previous artifact")
	}
}

func TestCSVWriterRowCount(t *testing.T) {
	w := NewCSVWriter(filepath.Join(t.TempDir(), "results.csv"), 300, discard())
	if err := w.Add(sampleRows()...); err != nil {
		t.Fatal(err)
	}
	if w.Rows() != 2 {
		t.Errorf("rows = %d, want 2", w.Rows())
	}
}
