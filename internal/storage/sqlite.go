// Package storage provides SQLite-based persistence for finished rounds.
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
)

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for round history.
type Store struct {
	db *sql.DB
}

// Round is one finished round as recorded in the history.
type Round struct {
	ID        uuid.UUID
	GameID    string
	Score     int
	Lines     int
	Blocks    int
	Duration  time.Duration
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			lines INTEGER NOT NULL DEFAULT 0,
			blocks INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_game_id ON rounds(game_id);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(game_id, score DESC);
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

// SaveRound records a finished round. A zero ID is replaced with a fresh one.
// Returns the ID the round was stored under.
func (s *Store) SaveRound(r Round) (uuid.UUID, error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	_, err := s.db.Exec(
		`INSERT INTO rounds (id, game_id, score, lines, blocks, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID.String(), r.GameID, r.Score, r.Lines, r.Blocks, r.Duration.Milliseconds(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot save round: %w", err)
	}

	return r.ID, nil
}

// SaveScore records a round known only by its score.
func (s *Store) SaveScore(gameID string, score int) (uuid.UUID, error) {
	return s.SaveRound(Round{GameID: gameID, Score: score})
}

// Round retrieves a round by ID. Returns nil if it does not exist.
func (s *Store) Round(id uuid.UUID) (*Round, error) {
	row := s.db.QueryRow(
		`SELECT id, game_id, score, lines, blocks, duration_ms, created_at
		 FROM rounds WHERE id = ?`,
		id.String(),
	)

	r, err := scanRound(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query round: %w", err)
	}
	return r, nil
}

// TopScores retrieves the top N rounds for the given game.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, lines, blocks, duration_ms, created_at
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY score DESC, lines DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return collectRounds(rows)
}

// AllScores retrieves all rounds for the given game (no limit).
func (s *Store) AllScores(gameID string) ([]Round, error) {
	rows, err := s.db.Query(
		`SELECT id, game_id, score, lines, blocks, duration_ms, created_at
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY score DESC, lines DESC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return collectRounds(rows)
}

// HighScore returns the highest score for the given game.
// Returns 0 if no rounds exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM rounds WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all rounds for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalLines int64
	BestLines  int
	PlayTime   time.Duration
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var playMs int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(lines), 0), COALESCE(MAX(lines), 0), COALESCE(SUM(duration_ms), 0)
		 FROM rounds WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore,
		&stats.TotalLines, &stats.BestLines, &playMs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.PlayTime = time.Duration(playMs) * time.Millisecond

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM rounds WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRound(row rowScanner) (*Round, error) {
	var (
		r         Round
		id        string
		durMs     int64
		createdAt any
	)
	if err := row.Scan(&id, &r.GameID, &r.Score, &r.Lines, &r.Blocks, &durMs, &createdAt); err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("bad round id %q: %w", id, err)
	}
	r.ID = parsed
	r.Duration = time.Duration(durMs) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

func collectRounds(rows *sql.Rows) ([]Round, error) {
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		r, err := scanRound(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rounds = append(rounds, *r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return rounds, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
