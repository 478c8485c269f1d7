package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/joseph-ayodele/election-extractor/internal/entity"
)

// RowSink mirrors consolidated rows to Postgres when a DSN is
// configured. The CSV artifact stays canonical; the sink exists for
// downstream querying.
type RowSink struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

const rowsTable = `
CREATE TABLE IF NOT EXISTS consolidated_rows (
	run_id             UUID NOT NULL,
	seq                INTEGER NOT NULL,
	event_date         TEXT NOT NULL DEFAULT '',
	event_type         TEXT NOT NULL DEFAULT '',
	county             TEXT NOT NULL DEFAULT '',
	party              TEXT NOT NULL DEFAULT '',
	total_ballots      TEXT NOT NULL DEFAULT '',
	precinct_number    TEXT NOT NULL,
	ballots_cast       TEXT NOT NULL DEFAULT '',
	registered_voters  TEXT NOT NULL DEFAULT '',
	office             TEXT NOT NULL DEFAULT '',
	raw_title          TEXT NOT NULL DEFAULT '',
	contest_party      TEXT NOT NULL DEFAULT '',
	candidate          TEXT NOT NULL,
	candidate_party    TEXT NOT NULL DEFAULT '',
	total_votes        TEXT NOT NULL DEFAULT '',
	early_votes        TEXT NOT NULL DEFAULT '',
	absentee_votes     TEXT NOT NULL DEFAULT '',
	election_day_votes TEXT NOT NULL DEFAULT '',
	source_file        TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (run_id, seq)
)`

// OpenPostgres builds a pgx pool and ensures the sink table exists.
func OpenPostgres(ctx context.Context, dsn string, logger *slog.Logger) (*RowSink, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("connecting to row sink", "dsn", dsn)
	pc, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	pc.ConnConfig.RuntimeParams["application_name"] = "election-extractor"

	dialCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	pool, err := pgxpool.NewWithConfig(dialCtx, pc)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if _, err := pool.Exec(ctx, rowsTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create sink table: %w", err)
	}
	return &RowSink{pool: pool, logger: logger}, nil
}

func (s *RowSink) Close() {
	s.pool.Close()
}

// InsertRows appends a run's rows in order using a single batch.
func (s *RowSink) InsertRows(ctx context.Context, runID uuid.UUID, rows []entity.Row) error {
	start := time.Now()
	batch := &pgx.Batch{}
	for i := range rows {
		r := &rows[i]
		batch.Queue(
			`INSERT INTO consolidated_rows (
				run_id, seq, event_date, event_type, county, party, total_ballots,
				precinct_number, ballots_cast, registered_voters,
				office, raw_title, contest_party,
				candidate, candidate_party,
				total_votes, early_votes, absentee_votes, election_day_votes,
				source_file
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)`,
			runID, i, r.EventDate, r.EventType, r.County, r.Party, r.TotalBallots,
			r.PrecinctNumber, r.BallotsCast, r.RegisteredVoters,
			r.Office, r.RawTitle, r.ContestParty,
			r.Candidate, r.CandidateParty,
			r.TotalVotes, r.EarlyVotes, r.AbsenteeVotes, r.ElectionDayVotes,
			r.SourceFile,
		)
	}
	br := s.pool.SendBatch(ctx, batch)
	defer func() {
		if cerr := br.Close(); cerr != nil {
			s.logger.Error("close sink batch", "error", cerr)
		}
	}()
	for range rows {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert row: %w", err)
		}
	}
	s.logger.Info("sink.rows.ok", "rows", len(rows), "elapsed_ms", time.Since(start).Milliseconds())
	return nil
}
