package journal

import (
	"context"
	"database/sql"
)

// PostgresJournal хранит записи прогонов в Postgres.
type PostgresJournal struct {
	db *sql.DB
}

func NewPostgresJournal(db *sql.DB) *PostgresJournal {
	return &PostgresJournal{db: db}
}

func (p *PostgresJournal) InsertRun(ctx context.Context, r RunRecord) error {
	query := `
		INSERT INTO sync.runs (run_id, channel, offers_total, stocks_submitted,
			stocks_nonzero, prices_submitted, started_at, finished_at, status, detail)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := p.db.ExecContext(ctx, query,
		r.RunID, r.Channel, r.OffersTotal, r.StocksSubmitted,
		r.StocksNonZero, r.PricesSubmitted, r.StartedAt, r.FinishedAt, r.Status, r.Detail)
	return err
}
