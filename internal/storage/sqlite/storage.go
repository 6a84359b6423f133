package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mcoot/bullscows/internal/dependencies/clock"
	"github.com/mcoot/bullscows/internal/model"
	"github.com/mcoot/bullscows/internal/scorelog"
	"github.com/mcoot/bullscows/internal/storage"
)

const backendName = "sqlite"

//go:embed schema.sql
var schema string

// formatTimestamp converts time.Time to an SQLite-compatible UTC ISO8601 string
func formatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

// Storage keeps the result log in an SQLite table, one row per game
type Storage struct {
	db    *sql.DB
	clock clock.Clock
}

// New opens (creating if needed) the database at dbPath and applies the schema.
// clk stamps each recorded result.
func New(dbPath string, clk clock.Clock) (*Storage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, model.NewStorageError(backendName, "open", err)
	}

	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, model.NewStorageError(backendName, "pragma", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, model.NewStorageError(backendName, "schema", err)
	}

	return &Storage{db: db, clock: clk}, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.ResultLog = (*Storage)(nil)

func (s *Storage) AppendResult(ctx context.Context, result model.GameResult) error {
	if _, err := scorelog.EncodeLine(result); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO game_results (username, guesses, recorded_at) VALUES (?, ?, ?)`,
		result.Username, result.Guesses, formatTimestamp(s.clock.Now()),
	)
	return model.NewStorageError(backendName, "insert", err)
}

func (s *Storage) LoadResults(ctx context.Context) ([]model.GameResult, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT username, guesses FROM game_results ORDER BY id`)
	if err != nil {
		return nil, model.NewStorageError(backendName, "query", err)
	}
	defer rows.Close()

	results := []model.GameResult{}
	for rows.Next() {
		var r model.GameResult
		if err := rows.Scan(&r.Username, &r.Guesses); err != nil {
			return nil, model.NewStorageError(backendName, "scan", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, model.NewStorageError(backendName, "query", err)
	}
	return results, nil
}
