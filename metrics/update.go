package metrics

import "sync/atomic"

// SyncMetrics — сквозные счётчики одного прогона, общие для всех каналов.
type SyncMetrics struct {
	OffersCollected atomic.Int32
	StocksSubmitted atomic.Int32
	PricesSubmitted atomic.Int32
	RunErrors       atomic.Int32
}
