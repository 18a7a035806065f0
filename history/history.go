// Package history keeps a local log of profile switches so users can see
// when and how the machine changed modes. Logging is best effort: the
// tray keeps working when the database cannot be opened or written.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/yllada/power-profiles-tray/power"
)

// Switch sources.
const (
	// SourceTray marks switches made through the tray menu.
	SourceTray = "tray"
	// SourceCLI marks switches made through the command line.
	SourceCLI = "cli"
	// SourceExternal marks switches observed during resync that were made
	// outside this application.
	SourceExternal = "external"
)

// Entry is one recorded profile switch.
type Entry struct {
	ID   string
	From power.Profile
	To   power.Profile
	// Source is where the switch originated: tray, cli or external.
	Source string
	At     time.Time
}

// Store persists switch entries in a local SQLite database.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS switches (
	id           TEXT PRIMARY KEY,
	from_profile TEXT NOT NULL,
	to_profile   TEXT NOT NULL,
	source       TEXT NOT NULL,
	switched_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_switches_at ON switches(switched_at);
`

// Open opens or creates the switch log at path. WAL mode keeps the tray
// responsive when a CLI invocation reads the log concurrently.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Append records a switch. A zero timestamp is filled with the current
// time and a missing ID is generated.
func (s *Store) Append(e Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.At.IsZero() {
		e.At = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO switches (id, from_profile, to_profile, source, switched_at) VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.From.String(), e.To.String(), e.Source, e.At.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record switch: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, from_profile, to_profile, source, switched_at
		 FROM switches ORDER BY switched_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e      Entry
			from   string
			to     string
			millis int64
		)
		if err := rows.Scan(&e.ID, &from, &to, &e.Source, &millis); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		e.From = power.Profile(from)
		e.To = power.Profile(to)
		e.At = time.UnixMilli(millis)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %w", err)
	}

	return entries, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
