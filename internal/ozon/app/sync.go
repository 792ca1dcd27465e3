package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/time/rate"

	"gomarketsync/config"
	"gomarketsync/internal/core/models"
	"gomarketsync/internal/core/reconcile"
	"gomarketsync/internal/ozon/business/models/dto/request"
	"gomarketsync/internal/ozon/business/services"
	"gomarketsync/internal/ozon/business/services/get"
	"gomarketsync/internal/ozon/business/services/update"
	"gomarketsync/metrics"
	"gomarketsync/pkg/clients"
	"gomarketsync/pkg/logger"
	"gomarketsync/pkg/middleware"
)

const channelName = "ozon"

// SyncApp гонит один проход синхронизации Ozon: каталог, сверка,
// остатки, цены. Остатки и цены получают каждый свою копию множества
// артикулов.
type SyncApp struct {
	cfg     config.OzonConfig
	writer  io.Writer
	log     logger.Logger
	metrics *metrics.SyncMetrics
}

func NewSyncApp(cfg config.OzonConfig, writer io.Writer, m *metrics.SyncMetrics) *SyncApp {
	return &SyncApp{
		cfg:     cfg,
		writer:  writer,
		log:     logger.NewLogger(writer, "[ozon]"),
		metrics: m,
	}
}

func (a *SyncApp) Run(ctx context.Context, remnants []models.RemnantRecord) (*models.SyncReport, error) {
	report := &models.SyncReport{Channel: channelName, StartedAt: time.Now().UTC()}
	defer func() { report.FinishedAt = time.Now().UTC() }()

	auth := services.NewApiKeyAuth(a.cfg.ClientID, a.cfg.ApiKey)
	if auth == nil {
		return report, fmt.Errorf("ozon credentials are not configured")
	}
	rpm := a.cfg.Values.RequestsPerMinute
	client := clients.NewBaseClient(a.cfg.ApiURL, a.writer, "[ozon]").
		SetAuth(auth).
		SetLimiter(rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), rpm)).
		Use(middleware.PrometheusMiddleware(channelName))

	offerIDs, err := get.NewProductListService(client, a.log).FetchOfferIDs(ctx)
	if err != nil {
		return report, fmt.Errorf("fetching offer ids: %w", err)
	}
	report.OffersTotal = offerIDs.Len()
	a.metrics.OffersCollected.Add(int32(offerIDs.Len()))

	engine := reconcile.NewEngine()
	now := time.Now().UTC().Truncate(time.Second)

	stocks, err := engine.CreateStocks(remnants, offerIDs.Clone(), "", now)
	if err != nil {
		return report, err
	}
	submitted, err := update.NewStockService(client, a.log).
		UploadStocks(ctx, request.NewStocks(stocks), a.cfg.Values.StockBatchSize)
	report.StocksSubmitted = submitted
	a.metrics.StocksSubmitted.Add(int32(submitted))
	metrics.RecordUpdates(channelName, "stocks", submitted)
	if err != nil {
		return report, err
	}
	report.StocksNonZero = len(reconcile.NotEmpty(stocks))

	prices := engine.CreatePrices(remnants, offerIDs.Clone())
	submitted, err = update.NewPriceService(client, a.log).
		UploadPrices(ctx, request.NewPrices(prices), a.cfg.Values.PriceBatchSize)
	report.PricesSubmitted = submitted
	a.metrics.PricesSubmitted.Add(int32(submitted))
	metrics.RecordUpdates(channelName, "prices", submitted)
	if err != nil {
		return report, err
	}

	a.log.Log("Sync finished: offers=%d stocks=%d (non-zero=%d) prices=%d",
		report.OffersTotal, report.StocksSubmitted, report.StocksNonZero, report.PricesSubmitted)
	return report, nil
}
