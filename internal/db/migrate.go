package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// migrations are applied in order, each inside its own transaction. The
// current version lives in schema_version, so a rerun at startup is a no-op
// by construction rather than by swallowing "already exists" errors.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS inventory (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		stock INTEGER NOT NULL DEFAULT 0,
		low_stock INTEGER NOT NULL DEFAULT 1,
		purchase_price DOUBLE PRECISION NOT NULL DEFAULT 0.0,
		sale_price DOUBLE PRECISION NOT NULL DEFAULT 0.0,
		supplier TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS history_log (
		id SERIAL PRIMARY KEY,
		timestamp TEXT NOT NULL,
		item_name TEXT NOT NULL,
		action TEXT NOT NULL,
		details TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user'
	)`,
}

// Migrate brings the schema up to the latest version. Idempotent; run once at
// startup before the repositories are constructed.
func Migrate(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version: %w", err)
	}

	var version int
	err = db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&version)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for i := version; i < len(migrations); i++ {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", i+1, err)
		}
		if _, err := tx.ExecContext(ctx, migrations[i]); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM schema_version`); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO schema_version (version) VALUES ($1)`, i+1); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", i+1, err)
		}
	}
	return nil
}
