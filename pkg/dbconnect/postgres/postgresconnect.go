package postgres

import (
	"context"
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"

	"gomarketsync/config"
)

const connectAttempts = 3
const retryDelay = 2 * time.Second

// PostgresDatabase открывает соединение для журнала прогонов. Процесс
// пакетный и однопоточный: одного соединения достаточно.
type PostgresDatabase struct {
	config.DbConfig
}

func NewPgConnector(dbConfig config.DbConfig) *PostgresDatabase {
	return &PostgresDatabase{DbConfig: dbConfig}
}

func (pg *PostgresDatabase) Connect(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("postgres", pg.GetConnectionString())
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	for attempt := 1; ; attempt++ {
		err = db.PingContext(ctx)
		if err == nil {
			log.Printf("Successfully connected to Postgres")
			return db, nil
		}
		if attempt >= connectAttempts {
			break
		}
		log.Printf("Failed to ping Postgres db (attempt %d/%d): %v", attempt, connectAttempts, err)
		select {
		case <-time.After(retryDelay):
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		}
	}
	db.Close()
	return nil, err
}
