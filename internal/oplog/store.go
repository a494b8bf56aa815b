package oplog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS origin_log (
	origin_id   TEXT PRIMARY KEY,
	record      TEXT NOT NULL,
	created_at  TEXT NOT NULL
);
`
// #endregion schema

// #region errors

// ErrNotFound is returned by Get for an id the log has never
// acknowledged. A very recently enqueued record may still be in
// flight; waiting that window out is the caller's concern.
var ErrNotFound = errors.New("origin record not found")

// #endregion errors

// #region types

// Entry is one (id, serialized origin) pair, the persisted unit.
type Entry struct {
	ID     string
	Record []byte
}

// Store is the append-only origin log over SQLite. Appends and point
// lookups run concurrently; WAL keeps readers off the writer's back.
type Store struct {
	db *sql.DB
}

// #endregion types

// #region constructor

// NewStore opens the log database and runs migrations. The pragmas
// ride in the DSN so every pooled connection gets them, not just the
// one a bare Exec would land on.
func NewStore(dbPath string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion constructor

// #region append

// Append durably persists a batch in one transaction. The batch is the
// unit of durability: on failure nothing from it is visible, and
// previously acknowledged records are untouched. Records are immutable;
// re-appending an existing id fails the batch.
func (s *Store) Append(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO origin_log (origin_id, record, created_at) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, e := range entries {
		if e.ID == "" {
			return fmt.Errorf("append: entry with empty id")
		}
		if _, err := stmt.ExecContext(ctx, e.ID, string(e.Record), now); err != nil {
			return fmt.Errorf("insert %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// #endregion append

// #region get

// Get returns the serialized origin for id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) ([]byte, error) {
	var record string
	err := s.db.QueryRowContext(ctx,
		`SELECT record FROM origin_log WHERE origin_id = ?`, id,
	).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", id, err)
	}
	return []byte(record), nil
}

// Has reports whether id has been acknowledged into the log.
func (s *Store) Has(ctx context.Context, id string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM origin_log WHERE origin_id = ?`, id,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("has %s: %w", id, err)
	}
	return true, nil
}

// Count returns the number of records in the log.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM origin_log`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

// Recent returns up to n most recently appended entries, newest first.
// Used by the inspect tool, not by traversal.
func (s *Store) Recent(ctx context.Context, n int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT origin_id, record FROM origin_log ORDER BY rowid DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("recent: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var record string
		if err := rows.Scan(&e.ID, &record); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		e.Record = []byte(record)
		out = append(out, e)
	}
	return out, rows.Err()
}

// #endregion get
