// Package storage provides SQLite-based persistence for session recordings.
// A recording is everything needed to replay a session deterministically:
// seed, tuning and the tick-stamped input log.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/bullet-frenzy/internal/core"
)

var (
	// ErrNotFound is returned when no recording matches an ID.
	ErrNotFound = errors.New("storage: recording not found")
	// ErrAmbiguous is returned when an ID prefix matches several recordings.
	ErrAmbiguous = errors.New("storage: recording id is ambiguous")
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Recording is a stored session.
type Recording struct {
	ID        string
	GameID    string
	Seed      int64
	Config    string // Tuning YAML the session ran with
	Ticks     uint64 // Completed ticks when the recording stopped
	Score     int
	Missed    int
	Life      int
	Events    []core.InputEvent // Empty in listings
	CreatedAt time.Time
}

// ShortID returns the first block of the UUID, enough to address a
// recording from the CLI.
func (r Recording) ShortID() string {
	if len(r.ID) < 8 {
		return r.ID
	}
	return r.ID[:8]
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS recordings (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			config TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			final_score INTEGER NOT NULL DEFAULT 0,
			final_missed INTEGER NOT NULL DEFAULT 0,
			final_life INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_recordings_created ON recordings(created_at DESC);

		CREATE TABLE IF NOT EXISTS recording_events (
			recording_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			tick INTEGER NOT NULL,
			action TEXT NOT NULL,
			PRIMARY KEY (recording_id, seq)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRecording stores a recording with its events in one transaction.
// A new UUID is assigned when rec.ID is empty. Returns the ID.
func (s *Store) SaveRecording(rec Recording) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO recordings
		 (id, game_id, seed, config, ticks, final_score, final_missed, final_life)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.GameID, rec.Seed, rec.Config, int64(rec.Ticks),
		rec.Score, rec.Missed, rec.Life,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save recording: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO recording_events (recording_id, seq, tick, action) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot prepare event insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range rec.Events {
		if _, err := stmt.Exec(rec.ID, i, int64(e.Tick), e.Action.String()); err != nil {
			return "", fmt.Errorf("storage: cannot save event %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit recording: %w", err)
	}
	return rec.ID, nil
}

// LoadRecording fetches a recording and its events. id may be a unique
// prefix of the full UUID.
func (s *Store) LoadRecording(id string) (*Recording, error) {
	fullID, err := s.resolveID(id)
	if err != nil {
		return nil, err
	}

	var (
		rec       Recording
		ticks     int64
		createdAt any
	)
	err = s.db.QueryRow(
		`SELECT id, game_id, seed, config, ticks, final_score, final_missed, final_life, created_at
		 FROM recordings
		 WHERE id = ?`,
		fullID,
	).Scan(&rec.ID, &rec.GameID, &rec.Seed, &rec.Config, &ticks,
		&rec.Score, &rec.Missed, &rec.Life, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recording: %w", err)
	}
	rec.Ticks = uint64(ticks)
	rec.CreatedAt = parseTime(createdAt)

	rec.Events, err = s.loadEvents(fullID)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) loadEvents(id string) ([]core.InputEvent, error) {
	rows, err := s.db.Query(
		"SELECT tick, action FROM recording_events WHERE recording_id = ? ORDER BY seq",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query events: %w", err)
	}
	defer rows.Close()

	var events []core.InputEvent
	for rows.Next() {
		var (
			tick int64
			name string
		)
		if err := rows.Scan(&tick, &name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan event: %w", err)
		}
		action, ok := core.ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("storage: unknown action %q in recording %s", name, id)
		}
		events = append(events, core.InputEvent{Tick: uint64(tick), Action: action})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return events, nil
}

// resolveID expands an ID prefix to the full ID.
func (s *Store) resolveID(prefix string) (string, error) {
	if prefix == "" {
		return "", ErrNotFound
	}

	rows, err := s.db.Query(
		"SELECT id FROM recordings WHERE substr(id, 1, length(?)) = ? LIMIT 2",
		prefix, prefix,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot resolve id: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("storage: cannot scan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("storage: row iteration error: %w", err)
	}

	switch len(ids) {
	case 0:
		return "", ErrNotFound
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("%w: %q", ErrAmbiguous, prefix)
	}
}

// ListRecordings returns the most recent recordings without their events.
func (s *Store) ListRecordings(limit int) ([]Recording, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, config, ticks, final_score, final_missed, final_life, created_at
		 FROM recordings
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recordings: %w", err)
	}
	defer rows.Close()

	var recs []Recording
	for rows.Next() {
		var (
			rec       Recording
			ticks     int64
			createdAt any
		)
		if err := rows.Scan(&rec.ID, &rec.GameID, &rec.Seed, &rec.Config, &ticks,
			&rec.Score, &rec.Missed, &rec.Life, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.Ticks = uint64(ticks)
		rec.CreatedAt = parseTime(createdAt)
		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return recs, nil
}

// DeleteRecording removes a recording and its events. id may be a prefix.
func (s *Store) DeleteRecording(id string) error {
	fullID, err := s.resolveID(id)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM recording_events WHERE recording_id = ?", fullID); err != nil {
		return fmt.Errorf("storage: cannot delete events: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM recordings WHERE id = ?", fullID); err != nil {
		return fmt.Errorf("storage: cannot delete recording: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
