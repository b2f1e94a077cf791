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

// ErrNotFound is returned when a round ID does not exist.
var ErrNotFound = errors.New("storage: round not found")

// Store manages the SQLite database connection for round persistence.
type Store struct {
	db *sql.DB
}

// RoundRecord is one finished round.
type RoundRecord struct {
	ID          string    `json:"id"`
	GameID      string    `json:"game_id"`
	Outcome     string    `json:"outcome"` // "won" or "lost"
	Points      int       `json:"points"`
	Lives       int       `json:"lives"`
	Seconds     int       `json:"seconds"`
	TreatsX3    int       `json:"treats_x3"`
	TreatsX2    int       `json:"treats_x2"`
	TreatsX1    int       `json:"treats_x1"`
	BigTreatsX3 int       `json:"big_treats_x3"`
	BigTreatsX2 int       `json:"big_treats_x2"`
	BigTreatsX1 int       `json:"big_treats_x1"`
	Mines       int       `json:"mines"`
	CreatedAt   time.Time `json:"created_at"`
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string    `json:"game_id"`
	Rounds     int       `json:"rounds"`
	Wins       int       `json:"wins"`
	HighScore  int       `json:"high_score"`
	AvgScore   float64   `json:"avg_score"`
	BestTime   int       `json:"best_time"` // Fastest win in seconds, 0 without wins
	Mines      int       `json:"mines"`
	LastPlayed time.Time `json:"last_played"`
}

const roundColumns = `id, game_id, outcome, points, lives, seconds,
	x3_treats, x2_treats, x1_treats, x3_big, x2_big, x1_big, mines, created_at`

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			outcome TEXT NOT NULL,
			points INTEGER NOT NULL,
			lives INTEGER NOT NULL,
			seconds INTEGER NOT NULL,
			x3_treats INTEGER NOT NULL DEFAULT 0,
			x2_treats INTEGER NOT NULL DEFAULT 0,
			x1_treats INTEGER NOT NULL DEFAULT 0,
			x3_big INTEGER NOT NULL DEFAULT 0,
			x2_big INTEGER NOT NULL DEFAULT 0,
			x1_big INTEGER NOT NULL DEFAULT 0,
			mines INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(game_id, points DESC);
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

// SaveRound records a finished round and returns its generated ID.
// A zero CreatedAt is filled by the database.
func (s *Store) SaveRound(r RoundRecord) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	var createdAt any
	if !r.CreatedAt.IsZero() {
		createdAt = r.CreatedAt.UTC().Format(timeLayout)
	}

	_, err := s.db.Exec(
		`INSERT INTO rounds (`+roundColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, COALESCE(?, CURRENT_TIMESTAMP))`,
		r.ID, r.GameID, r.Outcome, r.Points, r.Lives, r.Seconds,
		r.TreatsX3, r.TreatsX2, r.TreatsX1,
		r.BigTreatsX3, r.BigTreatsX2, r.BigTreatsX1,
		r.Mines, createdAt,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}
	return r.ID, nil
}

// TopRounds retrieves the best N rounds for the given game, by points and
// then by time.
func (s *Store) TopRounds(gameID string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY points DESC, seconds ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		r, err := scanRound(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// RoundByID retrieves one round. It returns ErrNotFound for unknown IDs.
func (s *Store) RoundByID(id string) (RoundRecord, error) {
	row := s.db.QueryRow(`SELECT `+roundColumns+` FROM rounds WHERE id = ?`, id)
	r, err := scanRound(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RoundRecord{}, ErrNotFound
	}
	return r, err
}

// HighScore returns the highest score for the given game.
// Returns 0 if no rounds exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(points) FROM rounds WHERE game_id = ?",
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

// Stats retrieves aggregated statistics for a game.
func (s *Store) Stats(gameID string) (GameStats, error) {
	stats := GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(points), 0),
		        COALESCE(AVG(points), 0),
		        COALESCE(MIN(CASE WHEN outcome = 'won' THEN seconds END), 0),
		        COALESCE(SUM(mines), 0),
		        MAX(created_at)
		 FROM rounds WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Rounds, &stats.Wins, &stats.HighScore, &stats.AvgScore, &stats.BestTime, &stats.Mines, &lastPlayed)
	if err != nil {
		return GameStats{}, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTimestamp(lastPlayed)
	return stats, nil
}

// ClearRounds deletes all rounds for the given game.
func (s *Store) ClearRounds(gameID string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRound(row scanner) (RoundRecord, error) {
	var r RoundRecord
	var createdAt any
	err := row.Scan(
		&r.ID, &r.GameID, &r.Outcome, &r.Points, &r.Lives, &r.Seconds,
		&r.TreatsX3, &r.TreatsX2, &r.TreatsX1,
		&r.BigTreatsX3, &r.BigTreatsX2, &r.BigTreatsX1,
		&r.Mines, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return RoundRecord{}, err
	}
	if err != nil {
		return RoundRecord{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	r.CreatedAt = parseTimestamp(createdAt)
	return r, nil
}

const timeLayout = "2006-01-02 15:04:05"

// parseTimestamp handles both time.Time and string values from the driver.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
