package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"
)

//go:embed migrations
var migrations embed.FS

type DB struct {
	*sql.DB
	driver string
}

// parseDatabaseURL maps DATABASE_URL to a database/sql driver and DSN.
// postgres:// and postgresql:// URLs go to lib/pq unchanged; sqlite3://path
// and bare paths open a SQLite file.
func parseDatabaseURL(databaseURL string) (driver, dsn string, err error) {
	switch {
	case databaseURL == "":
		return "", "", fmt.Errorf("database url is empty")
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return "postgres", databaseURL, nil
	case strings.HasPrefix(databaseURL, "sqlite3://"):
		dsn = strings.TrimPrefix(databaseURL, "sqlite3://")
	case strings.Contains(databaseURL, "://"):
		return "", "", fmt.Errorf("unsupported database url scheme: %s", databaseURL)
	default:
		dsn = databaseURL
	}
	if dsn == "" {
		return "", "", fmt.Errorf("sqlite database path is empty")
	}
	return "sqlite3", dsn, nil
}

func New(ctx context.Context, databaseURL string) (*DB, error) {
	driver, dsn, err := parseDatabaseURL(databaseURL)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Postgres may still be starting when the server comes up
	backoff := retry.WithMaxRetries(5, retry.NewExponential(200*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close() // Ignore close error, we're already returning ping error
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, driver: driver}, nil
}

func (db *DB) Migrate() error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect(db.driver); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db.DB, "migrations/"+db.driver); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
