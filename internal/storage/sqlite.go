// Package storage provides SQLite-based persistence for high scores and
// run history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/dino-dash/internal/game"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry is one finished run.
type RunEntry struct {
	ID        int64
	Mode      string
	Score     int
	Outcome   string // "won" or "lost"
	Duration  time.Duration
	CreatedAt time.Time
}

// ModeStats aggregates the run history of one mode.
type ModeStats struct {
	Mode       string
	Runs       int
	Wins       int
	Best       int
	Average    float64
	TotalTime  time.Duration
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(mode, score DESC);
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

// Get reads an integer setting. ok is false when the key is absent.
func (s *Store) Get(key string) (value int64, ok bool, err error) {
	err = s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot read setting %q: %w", key, err)
	}
	return value, true, nil
}

// Set writes an integer setting.
func (s *Store) Set(key string, value int64) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write setting %q: %w", key, err)
	}
	return nil
}

func highScoreKey(mode string) string {
	return "highscore:" + mode
}

// HighScore returns the stored high score for a mode, 0 when none.
func (s *Store) HighScore(mode string) (int, error) {
	v, _, err := s.Get(highScoreKey(mode))
	return int(v), err
}

// SetHighScore raises the stored high score for a mode. Lower values are ignored.
func (s *Store) SetHighScore(mode string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = MAX(value, excluded.value)`,
		highScoreKey(mode), score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(run RunEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (mode, score, outcome, duration_ms) VALUES (?, ?, ?, ?)",
		run.Mode, run.Score, run.Outcome, run.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best N runs for a mode, highest score first.
func (s *Store) TopRuns(mode string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, score, outcome, duration_ms, created_at
		 FROM runs
		 WHERE mode = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.Score, &e.Outcome, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ModeStats aggregates the history of a mode. A mode without runs yields zero stats.
func (s *Store) ModeStats(mode string) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}

	var best sql.NullInt64
	var avg sql.NullFloat64
	var total sql.NullInt64
	var wins sql.NullInt64
	var last any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END),
		        MAX(score), AVG(score), SUM(duration_ms), MAX(created_at)
		 FROM runs
		 WHERE mode = ?`,
		mode,
	).Scan(&stats.Runs, &wins, &best, &avg, &total, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	stats.Wins = int(wins.Int64)
	stats.Best = int(best.Int64)
	stats.Average = avg.Float64
	stats.TotalTime = time.Duration(total.Int64) * time.Millisecond
	stats.LastPlayed = parseTime(last)
	return stats, nil
}

// ClearRuns deletes the run history and high score of a mode.
func (s *Store) ClearRuns(mode string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE mode = ?", mode); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM settings WHERE key = ?", highScoreKey(mode)); err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and the SQLite text timestamp.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

// HighScoreKey binds a Store to one mode so the simulation can use it as
// its high score port. The value is cached; writes go straight through.
type HighScoreKey struct {
	store *Store
	mode  string
	best  int
}

var _ game.HighScores = (*HighScoreKey)(nil)

// NewHighScoreKey loads the current high score of mode.
func NewHighScoreKey(store *Store, mode string) (*HighScoreKey, error) {
	best, err := store.HighScore(mode)
	if err != nil {
		return nil, err
	}
	return &HighScoreKey{store: store, mode: mode, best: best}, nil
}

func (k *HighScoreKey) HighScore() int {
	return k.best
}

func (k *HighScoreKey) SetHighScore(score int) error {
	if score <= k.best {
		return nil
	}
	k.best = score
	return k.store.SetHighScore(k.mode, score)
}
