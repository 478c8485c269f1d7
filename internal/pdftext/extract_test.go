package pdftext

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

type stubRunner struct {
	stdout []byte
	stderr []byte
	err    error

	name string
	args []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.name = name
	s.args = args
	return s.stdout, s.stderr, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExtractPDF(t *testing.T) {
	stub := &stubRunner{stdout: []byte("page one line 1\npage one line 2\n\f  page two  \n\n")}
	e := NewExtractor(Config{}, testLogger())
	e.runner = stub

	res, err := e.Extract(context.Background(), "/reports/a.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if stub.name != "pdftotext" {
		t.Errorf("binary = %q, want pdftotext", stub.name)
	}
	if len(stub.args) == 0 || stub.args[0] != "-layout" {
		t.Errorf("args = %v, want -layout first", stub.args)
	}

	if res.TotalPages != 2 || len(res.Pages) != 2 {
		t.Fatalf("got %d/%d pages, want 2/2", len(res.Pages), res.TotalPages)
	}
	if res.Pages[0].Number != 1 || len(res.Pages[0].Lines) != 2 {
		t.Errorf("unexpected first page: %+v", res.Pages[0])
	}
	// Lines are trimmed and blanks dropped.
	if len(res.Pages[1].Lines) != 1 || res.Pages[1].Lines[0] != "page two" {
		t.Errorf("unexpected second page: %+v", res.Pages[1])
	}
}

func TestExtractPDFFailure(t *testing.T) {
	stub := &stubRunner{stderr: []byte("broken xref"), err: errors.New("exit status 1")}
	e := NewExtractor(Config{}, testLogger())
	e.runner = stub

	if _, err := e.Extract(context.Background(), "/reports/bad.pdf"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestExtractTXT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.txt")
	if err := os.WriteFile(path, []byte("alpha\n\fbeta\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	e := NewExtractor(Config{}, testLogger())
	res, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Pages) != 2 || res.Pages[0].Lines[0] != "alpha" || res.Pages[1].Lines[0] != "beta" {
		t.Errorf("unexpected pages: %+v", res.Pages)
	}
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, testLogger())
	if _, err := e.Extract(context.Background(), "report.docx"); err == nil {
		t.Fatal("expected an error for unsupported extensions")
	}
}

func TestSplitPageBounds(t *testing.T) {
	text := "p1\fp2\fp3\fp4\fp5"

	tests := []struct {
		name      string
		cfg       Config
		wantFirst int
		wantCount int
	}{
		{"no bounds", Config{}, 1, 5},
		{"page range", Config{PageStart: 2, PageEnd: 4}, 2, 3},
		{"max pages", Config{MaxPages: 2}, 1, 2},
		{"range capped by max", Config{PageStart: 2, MaxPages: 2}, 2, 2},
		{"end past document", Config{PageStart: 4, PageEnd: 99}, 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExtractor(tt.cfg, testLogger())
			res := e.split(text)
			if res.TotalPages != 5 {
				t.Errorf("total pages = %d, want 5", res.TotalPages)
			}
			if len(res.Pages) != tt.wantCount {
				t.Fatalf("got %d pages, want %d", len(res.Pages), tt.wantCount)
			}
			if res.Pages[0].Number != tt.wantFirst {
				t.Errorf("first page = %d, want %d", res.Pages[0].Number, tt.wantFirst)
			}
		})
	}
}
