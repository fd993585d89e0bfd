// Package storage provides SQLite-based persistence for named pattern
// presets. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for preset persistence.
type Store struct {
	db *sql.DB
}

// Preset is a saved set of pattern tunables that can be recalled by name.
type Preset struct {
	ID         int64
	Name       string
	PatternID  string
	Speed      float64
	Chars      string
	DropChance float64
	CreatedAt  time.Time
}

// ErrPresetNotFound is returned when a named preset does not exist.
var ErrPresetNotFound = errors.New("storage: preset not found")

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
		CREATE TABLE IF NOT EXISTS presets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			pattern_id TEXT NOT NULL,
			speed REAL NOT NULL DEFAULT 0,
			chars TEXT NOT NULL DEFAULT '',
			drop_chance REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_presets_pattern ON presets(pattern_id);
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

// SavePreset inserts a preset, replacing any existing preset with the same
// name. Returns the ID of the stored record.
func (s *Store) SavePreset(p Preset) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO presets (name, pattern_id, speed, chars, drop_chance)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			pattern_id = excluded.pattern_id,
			speed = excluded.speed,
			chars = excluded.chars,
			drop_chance = excluded.drop_chance`,
		p.Name, p.PatternID, p.Speed, p.Chars, p.DropChance,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save preset: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// GetPreset retrieves a preset by name.
// Returns ErrPresetNotFound if no preset has that name.
func (s *Store) GetPreset(name string) (Preset, error) {
	row := s.db.QueryRow(
		`SELECT id, name, pattern_id, speed, chars, drop_chance, created_at
		 FROM presets WHERE name = ?`,
		name,
	)

	p, err := scanPreset(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Preset{}, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	if err != nil {
		return Preset{}, fmt.Errorf("storage: cannot load preset: %w", err)
	}
	return p, nil
}

// ListPresets retrieves all presets ordered by name.
func (s *Store) ListPresets() ([]Preset, error) {
	rows, err := s.db.Query(
		`SELECT id, name, pattern_id, speed, chars, drop_chance, created_at
		 FROM presets ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query presets: %w", err)
	}
	defer rows.Close()

	var presets []Preset
	for rows.Next() {
		p, err := scanPreset(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		presets = append(presets, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return presets, nil
}

// DeletePreset removes a preset by name.
// Returns ErrPresetNotFound if no preset has that name.
func (s *Store) DeletePreset(name string) error {
	result, err := s.db.Exec("DELETE FROM presets WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete preset: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	return nil
}

// scanPreset reads one preset from a row scanner. The created_at column can
// come back as time.Time or as a string depending on how it was written.
func scanPreset(scan func(dest ...any) error) (Preset, error) {
	var p Preset
	var createdAt any
	if err := scan(&p.ID, &p.Name, &p.PatternID, &p.Speed, &p.Chars, &p.DropChance, &createdAt); err != nil {
		return Preset{}, err
	}

	switch v := createdAt.(type) {
	case time.Time:
		p.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			p.CreatedAt = parsed
		}
	}
	return p, nil
}
