// Package storage keeps the round results of the running session in an
// in-memory SQLite database. Results are gone when the program exits.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// memoryDSN opens a private in-memory database. The pool is limited to one
// connection, since every new connection would see an empty database.
const memoryDSN = ":memory:"

// RoundResult records one finished round.
type RoundResult struct {
	ID          int64 // 1-based, in play order
	Variant     string
	Score       int
	Misses      int
	EndedByMiss bool
	FinishedAt  time.Time
}

// GameStats contains aggregated statistics for a variant.
type GameStats struct {
	Variant    string
	Rounds     int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Store manages the session database. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Open creates an empty session store.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

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

// migrate creates the schema. Without AUTOINCREMENT, ids restart at 1
// once the table is emptied.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY,
			variant TEXT NOT NULL,
			score INTEGER NOT NULL,
			misses INTEGER NOT NULL DEFAULT 0,
			ended_by_miss INTEGER NOT NULL DEFAULT 0,
			finished_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_variant ON rounds(variant);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(variant, score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database. Its results are discarded.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a result and returns it with its ID assigned.
// A zero FinishedAt is set to now.
func (s *Store) SaveRound(r RoundResult) (RoundResult, error) {
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now()
	}

	res, err := s.db.Exec(
		`INSERT INTO rounds (variant, score, misses, ended_by_miss, finished_at)
		 VALUES (?, ?, ?, ?, ?)`,
		r.Variant, r.Score, r.Misses, r.EndedByMiss, r.FinishedAt.UnixNano(),
	)
	if err != nil {
		return r, fmt.Errorf("storage: cannot save round: %w", err)
	}

	if r.ID, err = res.LastInsertId(); err != nil {
		return r, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return r, nil
}

// Rounds returns every result in play order.
func (s *Store) Rounds() ([]RoundResult, error) {
	return s.query(
		`SELECT id, variant, score, misses, ended_by_miss, finished_at
		 FROM rounds
		 ORDER BY id`,
	)
}

// TopScores returns the best N results for the variant, highest first.
// An empty variant matches every result. Ties keep play order.
func (s *Store) TopScores(variant string, limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.query(
		`SELECT id, variant, score, misses, ended_by_miss, finished_at
		 FROM rounds
		 WHERE ? = '' OR variant = ?
		 ORDER BY score DESC, id
		 LIMIT ?`,
		variant, variant, limit,
	)
}

func (s *Store) query(q string, args ...any) ([]RoundResult, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var results []RoundResult
	for rows.Next() {
		var r RoundResult
		var finished int64
		if err := rows.Scan(&r.ID, &r.Variant, &r.Score, &r.Misses, &r.EndedByMiss, &finished); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.FinishedAt = time.Unix(0, finished)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// HighScore returns the highest score for the variant, or 0.
// An empty variant covers every result.
func (s *Store) HighScore(variant string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM rounds WHERE ? = '' OR variant = ?",
		variant, variant,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats aggregates the results of the variant. An empty variant
// aggregates every result.
func (s *Store) Stats(variant string) (GameStats, error) {
	stats := GameStats{Variant: variant}

	var last int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0), COALESCE(MAX(finished_at), 0)
		 FROM rounds WHERE ? = '' OR variant = ?`,
		variant, variant,
	).Scan(&stats.Rounds, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &last)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	if stats.Rounds > 0 {
		stats.LastPlayed = time.Unix(0, last)
	}
	return stats, nil
}

// AllStats returns statistics for every variant that has been played.
func (s *Store) AllStats() (map[string]GameStats, error) {
	rows, err := s.db.Query(
		`SELECT variant, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(finished_at)
		 FROM rounds
		 GROUP BY variant`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]GameStats)
	for rows.Next() {
		var gs GameStats
		var last int64
		if err := rows.Scan(&gs.Variant, &gs.Rounds, &gs.HighScore, &gs.AvgScore, &gs.TotalScore, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = time.Unix(0, last)
		stats[gs.Variant] = gs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// Clear deletes every result.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM rounds"); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// MissReporter is implemented by games that report how their last round went
// beyond the score.
type MissReporter interface {
	RoundMisses() (misses int, endedByMiss bool)
}

// ResultFor builds the result of a round that just ended in game.
func ResultFor(game interface{ ID() string }, score int, at time.Time) RoundResult {
	r := RoundResult{
		Variant:    game.ID(),
		Score:      score,
		FinishedAt: at,
	}
	if mr, ok := game.(MissReporter); ok {
		r.Misses, r.EndedByMiss = mr.RoundMisses()
	}
	return r
}
