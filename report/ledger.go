package report

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const ledgerSchema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id         TEXT PRIMARY KEY,
	started_at     TEXT NOT NULL,
	file           TEXT NOT NULL,
	instance       TEXT NOT NULL,
	strategy       TEXT NOT NULL,
	partitions     INTEGER NOT NULL,
	routes         INTEGER NOT NULL,
	construct_cost REAL NOT NULL,
	final_cost     REAL NOT NULL,
	construct_ns   INTEGER NOT NULL,
	elapsed_ns     INTEGER NOT NULL,
	valid          INTEGER NOT NULL,
	load_mean      REAL NOT NULL,
	load_stddev    REAL NOT NULL,
	platform       TEXT NOT NULL,
	cpu            TEXT NOT NULL,
	memory         TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_started ON runs(started_at);
`

// startedLayout is RFC 3339 with a fixed nine-digit fraction, so text
// order of started_at is time order.
const startedLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Ledger stores final run summaries in a SQLite database.
type Ledger struct {
	db *sql.DB
}

// OpenLedger opens or creates the ledger at path.
func OpenLedger(path string) (*Ledger, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("report: ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("report: open ledger: %w", err)
	}
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("report: %s: %w", p, err)
		}
	}
	if _, err := db.Exec(ledgerSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("report: ledger schema: %w", err)
	}
	return &Ledger{db: db}, nil
}

// Close closes the database.
func (l *Ledger) Close() error { return l.db.Close() }

// Record inserts s.
func (l *Ledger) Record(ctx context.Context, s Summary) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO runs (run_id, started_at, file, instance, strategy, partitions, routes,
			construct_cost, final_cost, construct_ns, elapsed_ns, valid, load_mean, load_stddev,
			platform, cpu, memory)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.RunID.String(), s.Started.UTC().Format(startedLayout), s.File, s.Instance, s.Strategy,
		s.Partitions, s.Routes, s.ConstructCost, s.FinalCost,
		int64(s.ConstructElapsed), int64(s.Elapsed), s.Valid, s.LoadMean, s.LoadStdDev,
		s.System.Platform, s.System.CPU, s.System.Memory,
	)
	if err != nil {
		return fmt.Errorf("report: record run %s: %w", s.RunID, err)
	}
	return nil
}

// Recent returns up to limit summaries, newest first.
func (l *Ledger) Recent(ctx context.Context, limit int) ([]Summary, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT run_id, started_at, file, instance, strategy, partitions, routes,
			construct_cost, final_cost, construct_ns, elapsed_ns, valid, load_mean, load_stddev,
			platform, cpu, memory
		FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("report: query runs: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var (
			s                   Summary
			id, started         string
			constructNs, elapNs int64
		)
		if err := rows.Scan(&id, &started, &s.File, &s.Instance, &s.Strategy, &s.Partitions, &s.Routes,
			&s.ConstructCost, &s.FinalCost, &constructNs, &elapNs, &s.Valid, &s.LoadMean, &s.LoadStdDev,
			&s.System.Platform, &s.System.CPU, &s.System.Memory); err != nil {
			return nil, fmt.Errorf("report: scan run: %w", err)
		}
		if s.RunID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("report: run id %q: %w", id, err)
		}
		if s.Started, err = time.Parse(startedLayout, started); err != nil {
			return nil, fmt.Errorf("report: run %s start: %w", id, err)
		}
		s.ConstructElapsed = time.Duration(constructNs)
		s.Elapsed = time.Duration(elapNs)
		out = append(out, s)
	}
	return out, rows.Err()
}
