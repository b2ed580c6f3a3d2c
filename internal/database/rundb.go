package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/seedscan/internal/model"
)

// FileName is the name of the history database inside its directory.
const FileName = "seedscan.db"

// timeLayout stores timestamps with fixed-width fractions so that text
// ordering in SQLite matches chronological ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrNotFound is returned when a run ID does not exist.
var ErrNotFound = errors.New("run not found")

// RunDB provides SQLite-based storage for search run metadata.
type RunDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures RunDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a RunDB in the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*RunDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite: mode=rw refuses to create the file, mode=rwc allows it.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	rdb := &RunDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := rdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return rdb, nil
}

// Path returns the database file path.
func (rdb *RunDB) Path() string {
	return rdb.dbPath
}

// Close closes the database connection.
func (rdb *RunDB) Close() error {
	return rdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (rdb *RunDB) createTables() error {
	schema := `
	-- One row per search. No phrase material is stored.
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		strategy TEXT NOT NULL,
		phrase_length INTEGER NOT NULL,
		estimated TEXT NOT NULL,
		processed INTEGER NOT NULL,
		matches INTEGER NOT NULL,
		workers INTEGER NOT NULL DEFAULT 1,
		cancelled INTEGER NOT NULL DEFAULT 0,
		started_at TEXT NOT NULL,
		elapsed_ns INTEGER NOT NULL,
		chain TEXT,
		language TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	CREATE INDEX IF NOT EXISTS idx_runs_strategy ON runs(strategy);
	`

	_, err := rdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveRun inserts a run and returns its ID.
func (rdb *RunDB) SaveRun(ctx context.Context, run model.Run) (int64, error) {
	query := `
	INSERT INTO runs (strategy, phrase_length, estimated, processed, matches, workers,
		cancelled, started_at, elapsed_ns, chain, language)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := rdb.db.ExecContext(ctx, query,
		run.Strategy.String(),
		run.PhraseLength,
		run.Estimated,
		int64(run.Processed), //nolint:gosec // Candidate counts stay far below 2^63
		run.Matches,
		run.Workers,
		run.Cancelled,
		run.StartedAt.UTC().Format(timeLayout),
		int64(run.Elapsed),
		run.Chain,
		run.Language,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}
	return id, nil
}

// ListRuns returns the most recent runs, newest first.
// A non-positive limit returns every run.
func (rdb *RunDB) ListRuns(ctx context.Context, limit int) ([]model.Run, error) {
	query := `
	SELECT id, strategy, phrase_length, estimated, processed, matches, workers,
		cancelled, started_at, elapsed_ns, chain, language
	FROM runs
	ORDER BY started_at DESC, id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := rdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []model.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// GetRun retrieves a run by its database ID.
func (rdb *RunDB) GetRun(ctx context.Context, id int64) (model.Run, error) {
	query := `
	SELECT id, strategy, phrase_length, estimated, processed, matches, workers,
		cancelled, started_at, elapsed_ns, chain, language
	FROM runs
	WHERE id = ?
	`

	run, err := scanRun(rdb.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Run{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return run, err
}

// DeleteRuns removes every recorded run and returns how many were removed.
func (rdb *RunDB) DeleteRuns(ctx context.Context) (int64, error) {
	res, err := rdb.db.ExecContext(ctx, "DELETE FROM runs")
	if err != nil {
		return 0, fmt.Errorf("failed to delete runs: %w", err)
	}
	return res.RowsAffected()
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (model.Run, error) {
	var (
		run       model.Run
		strategy  string
		processed int64
		startedAt string
		elapsed   int64
		chain     sql.NullString
		language  sql.NullString
	)
	err := row.Scan(&run.ID, &strategy, &run.PhraseLength, &run.Estimated, &processed,
		&run.Matches, &run.Workers, &run.Cancelled, &startedAt, &elapsed, &chain, &language)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Run{}, err
	}
	if err != nil {
		return model.Run{}, fmt.Errorf("failed to scan run: %w", err)
	}

	run.Strategy = model.ParseStrategyKind(strategy)
	run.Processed = uint64(processed) //nolint:gosec // Stored from a uint64
	run.StartedAt = parseTimestamp(startedAt)
	run.Elapsed = time.Duration(elapsed)
	run.Chain = chain.String
	run.Language = language.String
	return run, nil
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	timeLayout,            // Format written by SaveRun
	time.RFC3339Nano,      // RFC3339 with nanoseconds
	"2006-01-02 15:04:05", // SQLite default datetime format
	"2006-01-02T15:04:05", // ISO 8601 without timezone
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
