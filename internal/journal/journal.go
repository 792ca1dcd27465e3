package journal

import (
	"context"
	"time"
)

// RunRecord — итог одного канального прохода для таблицы sync.runs.
type RunRecord struct {
	RunID           string
	Channel         string
	OffersTotal     int
	StocksSubmitted int
	StocksNonZero   int
	PricesSubmitted int
	StartedAt       time.Time
	FinishedAt      time.Time
	Status          string
	Detail          string
}

const (
	StatusOk     = "ok"
	StatusFailed = "failed"
)

// Store пишет итоги прогонов. Журнал вспомогательный: его ошибки
// логируются, но синхронизацию не валят.
type Store interface {
	InsertRun(ctx context.Context, record RunRecord) error
}

// Discard — заглушка при выключенном журнале.
type Discard struct{}

func (Discard) InsertRun(context.Context, RunRecord) error { return nil }
