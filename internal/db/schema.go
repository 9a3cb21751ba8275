package db

import (
	"context"
	"fmt"
)

// Package codes are TEXT so leading zeros and prefixes survive. The unique
// index scopes duplicates to one carrier and one capture day.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
        id       BIGSERIAL PRIMARY KEY,
        username TEXT UNIQUE NOT NULL,
        password TEXT NOT NULL,
        role     TEXT NOT NULL CHECK (role IN ('admin', 'user'))
    )`,
	`CREATE TABLE IF NOT EXISTS packages (
        id           BIGSERIAL PRIMARY KEY,
        carrier      TEXT NOT NULL,
        code         TEXT NOT NULL,
        capture_date DATE NOT NULL,
        captured_at  TIMESTAMPTZ NOT NULL,
        status       TEXT NOT NULL CHECK (status IN ('pending', 'collected')),
        batch_number INTEGER NOT NULL CHECK (batch_number > 0),
        scanned_by   TEXT
    )`,
	`CREATE UNIQUE INDEX IF NOT EXISTS packages_carrier_code_day_idx
        ON packages (carrier, code, capture_date)`,
	`CREATE INDEX IF NOT EXISTS packages_batch_idx
        ON packages (carrier, capture_date, status, batch_number)`,
	`CREATE TABLE IF NOT EXISTS batch_history (
        id           UUID PRIMARY KEY,
        carrier      TEXT NOT NULL,
        capture_date DATE NOT NULL,
        batch_number INTEGER NOT NULL,
        action       TEXT NOT NULL,
        affected     BIGINT NOT NULL,
        operator     TEXT,
        changed_at   TIMESTAMPTZ NOT NULL
    )`,
}

func Migrate(ctx context.Context, database DB) error {
	for _, stmt := range schema {
		if _, err := database.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
