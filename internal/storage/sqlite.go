// Package storage provides SQLite-based persistence for solved levels.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

// timeLayout is how SQLite's CURRENT_TIMESTAMP renders.
const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Solve is one recorded completion of a level.
type Solve struct {
	ID        int64
	Pack      string
	Level     int // 0-based level index within the pack
	Steps     int
	Player    string
	CreatedAt time.Time
}

// LevelBest is the best recorded result for one level of a pack.
type LevelBest struct {
	Level     int
	BestSteps int
	Solves    int
	Player    string // who holds the best result
	CreatedAt time.Time
}

// PackStats aggregates all solves of a pack.
type PackStats struct {
	Pack         string
	Solves       int
	LevelsSolved int
	TotalBest    int // sum of the best step counts over solved levels
	LastPlayed   time.Time
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
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pack TEXT NOT NULL,
			level INTEGER NOT NULL,
			steps INTEGER NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_pack_level ON solves(pack, level, steps);
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

// SaveSolve records a completed level.
// Returns the ID of the inserted record.
func (s *Store) SaveSolve(pack string, level, steps int, player string) (int64, error) {
	if level < 0 || steps < 0 {
		return 0, fmt.Errorf("storage: invalid solve (level %d, steps %d)", level, steps)
	}

	result, err := s.db.Exec(
		"INSERT INTO solves (pack, level, steps, player) VALUES (?, ?, ?, ?)",
		pack, level, steps, player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestSteps returns the fewest steps recorded for a level.
// ok is false when the level was never solved.
func (s *Store) BestSteps(pack string, level int) (steps int, ok bool, err error) {
	var best sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MIN(steps) FROM solves WHERE pack = ? AND level = ?",
		pack, level,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best steps: %w", err)
	}

	if !best.Valid {
		return 0, false, nil
	}
	return int(best.Int64), true, nil
}

// TopSolves retrieves the best N solves for a level, fewest steps first.
// Ties go to the earlier solve.
func (s *Store) TopSolves(pack string, level, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, pack, level, steps, player, created_at
		 FROM solves
		 WHERE pack = ? AND level = ?
		 ORDER BY steps ASC, id ASC
		 LIMIT ?`,
		pack, level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var entries []Solve
	for rows.Next() {
		var e Solve
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Pack, &e.Level, &e.Steps, &e.Player, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestByLevel returns the best result of every solved level of a pack,
// ordered by level.
func (s *Store) BestByLevel(pack string) ([]LevelBest, error) {
	// The correlated subquery picks the earliest row holding the minimum.
	rows, err := s.db.Query(
		`SELECT b.level, b.steps, c.cnt, b.player, b.created_at
		 FROM solves b
		 JOIN (SELECT level, COUNT(*) AS cnt FROM solves WHERE pack = ? GROUP BY level) c
		   ON c.level = b.level
		 WHERE b.pack = ?
		   AND b.id = (SELECT id FROM solves s
		               WHERE s.pack = b.pack AND s.level = b.level
		               ORDER BY s.steps ASC, s.id ASC LIMIT 1)
		 ORDER BY b.level`,
		pack, pack,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best by level: %w", err)
	}
	defer rows.Close()

	var result []LevelBest
	for rows.Next() {
		var lb LevelBest
		var createdAt any
		if err := rows.Scan(&lb.Level, &lb.BestSteps, &lb.Solves, &lb.Player, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		lb.CreatedAt = parseTime(createdAt)
		result = append(result, lb)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return result, nil
}

// PackStats retrieves aggregated statistics for a pack.
func (s *Store) PackStats(pack string) (*PackStats, error) {
	stats := &PackStats{Pack: pack}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT level) FROM solves WHERE pack = ?`,
		pack,
	).Scan(&stats.Solves, &stats.LevelsSolved)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get pack stats: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT COALESCE(SUM(best), 0) FROM
		   (SELECT MIN(steps) AS best FROM solves WHERE pack = ? GROUP BY level)`,
		pack,
	).Scan(&stats.TotalBest)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot sum best steps: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM solves WHERE pack = ? ORDER BY id DESC LIMIT 1`,
		pack,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearPack deletes all solves of a pack.
func (s *Store) ClearPack(pack string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE pack = ?", pack)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// parseTime handles both driver-decoded times and raw strings.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
