// Package storage provides SQLite-based persistence for match history.
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

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// Match is one finished round.
type Match struct {
	ID           int64
	MatchID      string // UUID, generated on save when empty
	GameID       string
	Source       string // "local" or the SSH user name
	ScoreA       int
	ScoreB       int
	Winner       string // "A" or "B"
	Duration     time.Duration
	LongestRally int
	StartedAt    time.Time
	EndedAt      time.Time
	CreatedAt    time.Time
}

// Totals aggregates the match history of one game.
type Totals struct {
	GameID       string
	Matches      int
	WinsA        int
	WinsB        int
	LongestRally int
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			source TEXT NOT NULL DEFAULT 'local',
			score_a INTEGER NOT NULL DEFAULT 0,
			score_b INTEGER NOT NULL DEFAULT 0,
			winner TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			longest_rally INTEGER NOT NULL DEFAULT 0,
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_game_id ON matches(game_id);
		CREATE INDEX IF NOT EXISTS idx_matches_ended ON matches(game_id, ended_at DESC);
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

// SaveMatch records a finished round and returns it with its IDs filled in.
func (s *Store) SaveMatch(m Match) (Match, error) {
	if m.MatchID == "" {
		m.MatchID = uuid.NewString()
	}
	if m.Source == "" {
		m.Source = "local"
	}

	res, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, game_id, source, score_a, score_b, winner, duration_ms, longest_rally, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.MatchID,
		m.GameID,
		m.Source,
		m.ScoreA,
		m.ScoreB,
		m.Winner,
		m.Duration.Milliseconds(),
		m.LongestRally,
		m.StartedAt.UnixMilli(),
		m.EndedAt.UnixMilli(),
	)
	if err != nil {
		return m, fmt.Errorf("storage: cannot save match: %w", err)
	}

	m.ID, err = res.LastInsertId()
	if err != nil {
		return m, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return m, nil
}

const matchColumns = `id, match_id, game_id, source, score_a, score_b, winner,
	duration_ms, longest_rally, started_at, ended_at, created_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(r rowScanner) (Match, error) {
	var m Match
	var durationMs, startedAt, endedAt int64
	var createdAt any

	err := r.Scan(
		&m.ID,
		&m.MatchID,
		&m.GameID,
		&m.Source,
		&m.ScoreA,
		&m.ScoreB,
		&m.Winner,
		&durationMs,
		&m.LongestRally,
		&startedAt,
		&endedAt,
		&createdAt,
	)
	if err != nil {
		return m, err
	}

	m.Duration = time.Duration(durationMs) * time.Millisecond
	m.StartedAt = time.UnixMilli(startedAt)
	m.EndedAt = time.UnixMilli(endedAt)
	m.CreatedAt = parseTimestamp(createdAt)
	return m, nil
}

// parseTimestamp handles both time.Time and string DATETIME values.
func parseTimestamp(v any) time.Time {
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

// MatchByID retrieves a match by its match ID. Returns nil if not found.
func (s *Store) MatchByID(matchID string) (*Match, error) {
	m, err := scanMatch(s.db.QueryRow(
		`SELECT `+matchColumns+` FROM matches WHERE match_id = ?`,
		matchID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &m, nil
}

// RecentMatches retrieves the most recent matches of a game, newest first.
func (s *Store) RecentMatches(gameID string, limit int) ([]Match, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 WHERE game_id = ?
		 ORDER BY ended_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return matches, nil
}

// MatchTotals returns the per-side win counts of a game.
func (s *Store) MatchTotals(gameID string) (*Totals, error) {
	totals := &Totals{GameID: gameID}
	var lastEnded sql.NullInt64

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 'A' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 'B' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(longest_rally), 0),
		        MAX(ended_at)
		 FROM matches WHERE game_id = ?`,
		gameID,
	).Scan(&totals.Matches, &totals.WinsA, &totals.WinsB, &totals.LongestRally, &lastEnded)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get match totals: %w", err)
	}

	if lastEnded.Valid {
		totals.LastPlayed = time.UnixMilli(lastEnded.Int64)
	}

	return totals, nil
}

// ClearMatches deletes the history of a game.
func (s *Store) ClearMatches(gameID string) error {
	_, err := s.db.Exec("DELETE FROM matches WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}
