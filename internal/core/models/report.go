package models

import "time"

// SyncReport — итог одного канального прохода (для Маркета — одной кампании).
type SyncReport struct {
	Channel         string
	OffersTotal     int
	StocksSubmitted int
	StocksNonZero   int
	PricesSubmitted int
	StartedAt       time.Time
	FinishedAt      time.Time
}
