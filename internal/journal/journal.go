// Package journal records how dialog sessions ended in a local SQLite
// database so scripts can audit dismissals after the fact.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// DefaultFile is the journal location relative to the base directory.
const DefaultFile = ".dlg/journal.db"

// Entry is one recorded dialog session.
type Entry struct {
	ID       string
	Dialog   string
	Outcome  string
	Value    string
	ClosedAt time.Time
}

// Journal wraps the database connection
type Journal struct {
	conn *sql.DB
	path string
}

// Open opens or creates the journal at path and applies the schema.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	// Single writer; keeps :memory: databases on one connection
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA busy_timeout=500"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	j := &Journal{conn: conn, path: path}
	if err := j.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return j, nil
}

// Close closes the journal
func (j *Journal) Close() error {
	return j.conn.Close()
}

// Path returns the database file path.
func (j *Journal) Path() string {
	return j.path
}

// SchemaVersion returns the schema version stored in the database.
func (j *Journal) SchemaVersion() (int, error) {
	var v string
	err := j.conn.QueryRow(`SELECT value FROM schema_info WHERE key = 'version'`).Scan(&v)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(v)
}

func (j *Journal) migrate() error {
	current, err := j.SchemaVersion()
	if err != nil {
		return err
	}
	if current >= schemaVersion {
		return nil
	}
	_, err = j.conn.Exec(`INSERT OR REPLACE INTO schema_info (key, value) VALUES ('version', ?)`,
		strconv.Itoa(schemaVersion))
	return err
}

// Record stores e. Missing ID and ClosedAt are filled in and the stored
// entry is returned.
func (j *Journal) Record(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.ClosedAt.IsZero() {
		e.ClosedAt = time.Now()
	}
	e.ClosedAt = e.ClosedAt.UTC()

	_, err := j.conn.ExecContext(ctx,
		`INSERT INTO dismissals (id, dialog, outcome, value, closed_at) VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.Dialog, e.Outcome, e.Value, e.ClosedAt)
	if err != nil {
		return Entry{}, fmt.Errorf("record dismissal: %w", err)
	}
	return e, nil
}

// Recent returns up to limit entries, newest first. A non-positive limit
// returns everything.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT id, dialog, outcome, value, closed_at FROM dismissals ORDER BY closed_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := j.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query dismissals: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var value sql.NullString
		if err := rows.Scan(&e.ID, &e.Dialog, &e.Outcome, &value, &e.ClosedAt); err != nil {
			return nil, fmt.Errorf("scan dismissal: %w", err)
		}
		e.Value = value.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Counts returns the number of entries per outcome.
func (j *Journal) Counts(ctx context.Context) (map[string]int, error) {
	rows, err := j.conn.QueryContext(ctx, `SELECT outcome, COUNT(*) FROM dismissals GROUP BY outcome`)
	if err != nil {
		return nil, fmt.Errorf("count dismissals: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[outcome] = n
	}
	return counts, rows.Err()
}
