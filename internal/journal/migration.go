package journal

import (
	"database/sql"
	"fmt"
	"log"
)

type CreateMigrationsLedger struct{}

func (m *CreateMigrationsLedger) UpMigration(db *sql.DB) error {
	query := `
	CREATE SCHEMA IF NOT EXISTS migrations;
	CREATE TABLE IF NOT EXISTS migrations.migrations (
		name VARCHAR(255) PRIMARY KEY,
		time TIMESTAMP WITH TIME ZONE NOT NULL
	);`
	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create migrations ledger: %w", err)
	}
	return nil
}

type CreateSyncSchema struct{}

func (m *CreateSyncSchema) UpMigration(db *sql.DB) error {
	query := `
	CREATE SCHEMA IF NOT EXISTS sync;`
	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create schema sync: %w", err)
	}
	return nil
}

type CreateRunsTable struct{}

func (m *CreateRunsTable) UpMigration(db *sql.DB) error {
	if ok, err := checkAndSkipMigration(db, "sync.runs"); err != nil {
		return err
	} else if ok {
		return nil
	}
	query := `
	CREATE TABLE IF NOT EXISTS sync.runs (
		id SERIAL PRIMARY KEY,
		run_id UUID NOT NULL,
		channel VARCHAR(64) NOT NULL,
		offers_total INT NOT NULL,
		stocks_submitted INT NOT NULL,
		stocks_nonzero INT NOT NULL,
		prices_submitted INT NOT NULL,
		started_at TIMESTAMP WITH TIME ZONE NOT NULL,
		finished_at TIMESTAMP WITH TIME ZONE NOT NULL,
		status VARCHAR(16) NOT NULL,
		detail TEXT
	);
	CREATE INDEX IF NOT EXISTS sync_runs_channel_idx ON sync.runs(channel, finished_at);`
	if err := executeAndMarkMigration(db, query, "sync.runs"); err != nil {
		return err
	}
	log.Println("Migration 'sync.runs' completed successfully.")
	return nil
}

func checkAndSkipMigration(db *sql.DB, migrationName string) (bool, error) {
	var migrationExists bool
	err := db.QueryRow("SELECT EXISTS (SELECT 1 FROM migrations.migrations WHERE name = $1)", migrationName).Scan(&migrationExists)
	if err != nil {
		return migrationExists, fmt.Errorf("failed to check migration status: %w", err)
	}
	if migrationExists {
		log.Printf("Migration '%s' already completed. Skipping.\n", migrationName)
		return migrationExists, nil
	}
	return migrationExists, nil
}

func executeAndMarkMigration(db *sql.DB, query string, migrationName string) error {
	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to execute migration '%s': %w", migrationName, err)
	}
	_, err = db.Exec("INSERT INTO migrations.migrations (name, time) VALUES ($1, current_timestamp)", migrationName)
	if err != nil {
		return fmt.Errorf("failed to mark migration '%s' as complete: %w", migrationName, err)
	}
	return nil
}
