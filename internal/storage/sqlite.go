// Package storage provides SQLite-based checkpoints of engine states.
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

	"github.com/vovakirdan/pong-engine/internal/games/pong"
)

// Store manages the SQLite database connection for checkpoint persistence.
type Store struct {
	db *sql.DB
}

// Checkpoint is a stored State together with its metadata.
type Checkpoint struct {
	ID          string
	Label       string
	Step        int
	Fingerprint string
	State       pong.State
	CreatedAt   time.Time
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS checkpoints (
			id TEXT PRIMARY KEY,
			label TEXT NOT NULL,
			step INTEGER NOT NULL,
			fingerprint TEXT NOT NULL,
			state TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_checkpoints_label ON checkpoints(label, created_at DESC);
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

// SaveCheckpoint stores state under label and returns the new record.
func (s *Store) SaveCheckpoint(label string, state pong.State) (Checkpoint, error) {
	data, err := pong.MarshalState(state)
	if err != nil {
		return Checkpoint{}, fmt.Errorf("storage: cannot save checkpoint: %w", err)
	}

	cp := Checkpoint{
		ID:          uuid.NewString(),
		Label:       label,
		Step:        state.Step,
		Fingerprint: state.FingerprintHex(),
		State:       state,
	}

	_, err = s.db.Exec(
		"INSERT INTO checkpoints (id, label, step, fingerprint, state) VALUES (?, ?, ?, ?, ?)",
		cp.ID, cp.Label, cp.Step, cp.Fingerprint, string(data),
	)
	if err != nil {
		return Checkpoint{}, fmt.Errorf("storage: cannot save checkpoint: %w", err)
	}

	// Read back so CreatedAt reflects the database clock.
	saved, err := s.Checkpoint(cp.ID)
	if err != nil {
		return Checkpoint{}, err
	}
	if saved == nil {
		return cp, nil
	}
	return *saved, nil
}

// Checkpoint retrieves a checkpoint by ID. Returns nil if it does not exist.
func (s *Store) Checkpoint(id string) (*Checkpoint, error) {
	row := s.db.QueryRow(
		`SELECT id, label, step, fingerprint, state, created_at
		 FROM checkpoints
		 WHERE id = ?`,
		id,
	)

	cp, err := scanCheckpoint(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query checkpoint: %w", err)
	}
	return cp, nil
}

// LatestCheckpoint returns the most recent checkpoint with the given label,
// or nil if there is none.
func (s *Store) LatestCheckpoint(label string) (*Checkpoint, error) {
	row := s.db.QueryRow(
		`SELECT id, label, step, fingerprint, state, created_at
		 FROM checkpoints
		 WHERE label = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT 1`,
		label,
	)

	cp, err := scanCheckpoint(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query checkpoint: %w", err)
	}
	return cp, nil
}

// ListCheckpoints retrieves the most recent checkpoints, newest first.
func (s *Store) ListCheckpoints(limit int) ([]Checkpoint, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, label, step, fingerprint, state, created_at
		 FROM checkpoints
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query checkpoints: %w", err)
	}
	defer rows.Close()

	var results []Checkpoint
	for rows.Next() {
		cp, err := scanCheckpoint(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, *cp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// DeleteCheckpoint removes a checkpoint. Deleting a missing ID is not an error.
func (s *Store) DeleteCheckpoint(id string) error {
	_, err := s.db.Exec("DELETE FROM checkpoints WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete checkpoint: %w", err)
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCheckpoint(row scanner) (*Checkpoint, error) {
	var cp Checkpoint
	var data string
	var createdAt any

	if err := row.Scan(&cp.ID, &cp.Label, &cp.Step, &cp.Fingerprint, &data, &createdAt); err != nil {
		return nil, err
	}

	state, err := pong.UnmarshalState([]byte(data))
	if err != nil {
		return nil, err
	}
	cp.State = state
	cp.CreatedAt = parseTime(createdAt)

	return &cp, nil
}

// parseTime handles both time.Time and string datetime values.
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
