// Package store persists run results to a local SQLite database so
// "playperf history" can list past runs without re-parsing CSV output. It
// is a listener on the same Summary values report.PrintText renders, not a
// second source of truth.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/studiowebux/playperf/internal/stats"
)

// Store wraps the SQLite connection used for run history.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path and brings
// its schema up to date.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %q: %w", path, err)
	}
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// RunConfig is the subset of run configuration worth recording alongside
// its results.
type RunConfig struct {
	Clients    int
	RecvLen    uint64
	IntervalUs int64
	TimeoutS   int64
	Detail     bool
}

// SaveRun records one completed run: its configuration, the overall
// Summary's rendered line, and one rendered line per URL Summary.
func (s *Store) SaveRun(startedAt time.Time, cfg RunConfig, overall *stats.Summary, perURL map[string]*stats.Summary) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (started_at, clients, recv_len, interval_us, timeout_s, detail, overall_line)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		startedAt, cfg.Clients, cfg.RecvLen, cfg.IntervalUs, cfg.TimeoutS, cfg.Detail, overall.Line(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	for url, sum := range perURL {
		if _, err := tx.Exec(
			`INSERT INTO run_summaries (run_id, url, summary_line) VALUES (?, ?, ?)`,
			runID, url, sum.Line(),
		); err != nil {
			return 0, fmt.Errorf("insert run_summary for %q: %w", url, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return runID, nil
}

// RunRecord is one row from ListRuns.
type RunRecord struct {
	ID          int64
	StartedAt   time.Time
	Clients     int
	RecvLen     uint64
	OverallLine string
}

// GetRun returns the run recorded under id.
func (s *Store) GetRun(id int64) (RunRecord, error) {
	var r RunRecord
	row := s.db.QueryRow(
		`SELECT id, started_at, clients, recv_len, overall_line FROM runs WHERE id = ?`, id,
	)
	if err := row.Scan(&r.ID, &r.StartedAt, &r.Clients, &r.RecvLen, &r.OverallLine); err != nil {
		return RunRecord{}, fmt.Errorf("get run %d: %w", id, err)
	}
	return r, nil
}

// ListRuns returns the most recent runs, newest first, up to limit.
func (s *Store) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, started_at, clients, recv_len, overall_line
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.Clients, &r.RecvLen, &r.OverallLine); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// URLSummaries returns the per-URL summary lines recorded for runID.
func (s *Store) URLSummaries(runID int64) (map[string]string, error) {
	rows, err := s.db.Query(`SELECT url, summary_line FROM run_summaries WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("query run_summaries: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var url, line string
		if err := rows.Scan(&url, &line); err != nil {
			return nil, fmt.Errorf("scan run_summary: %w", err)
		}
		out[url] = line
	}
	return out, rows.Err()
}
