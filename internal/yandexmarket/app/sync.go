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
	"gomarketsync/internal/yandexmarket/business/models/dto/request"
	"gomarketsync/internal/yandexmarket/business/services"
	"gomarketsync/internal/yandexmarket/business/services/get"
	"gomarketsync/internal/yandexmarket/business/services/update"
	"gomarketsync/metrics"
	"gomarketsync/pkg/clients"
	"gomarketsync/pkg/logger"
	"gomarketsync/pkg/middleware"
)

const channelName = "yandex-market"

// SyncApp гонит проход синхронизации Яндекс Маркета по всем кампаниям
// подряд: сначала fbs, затем dbs. Неудача кампании прерывает остальные.
type SyncApp struct {
	cfg     config.MarketConfig
	writer  io.Writer
	log     logger.Logger
	metrics *metrics.SyncMetrics
}

func NewSyncApp(cfg config.MarketConfig, writer io.Writer, m *metrics.SyncMetrics) *SyncApp {
	return &SyncApp{
		cfg:     cfg,
		writer:  writer,
		log:     logger.NewLogger(writer, "[market]"),
		metrics: m,
	}
}

func (a *SyncApp) Run(ctx context.Context, remnants []models.RemnantRecord) ([]*models.SyncReport, error) {
	auth := services.NewBearerAuth(a.cfg.Token)
	if auth == nil {
		return nil, fmt.Errorf("market token is not configured")
	}

	reports := make([]*models.SyncReport, 0, len(a.cfg.Campaigns))
	for _, campaign := range a.cfg.Campaigns {
		if campaign.CampaignID == "" {
			a.log.Log("Campaign %q is not configured, skipping", campaign.Label)
			continue
		}
		report, err := a.syncCampaign(ctx, auth, campaign, remnants)
		reports = append(reports, report)
		if err != nil {
			return reports, fmt.Errorf("campaign %s: %w", campaign.Label, err)
		}
	}
	return reports, nil
}

func (a *SyncApp) syncCampaign(ctx context.Context, auth services.AuthEngine, campaign config.MarketCampaign, remnants []models.RemnantRecord) (*models.SyncReport, error) {
	label := fmt.Sprintf("%s/%s", channelName, campaign.Label)
	report := &models.SyncReport{Channel: label, StartedAt: time.Now().UTC()}
	defer func() { report.FinishedAt = time.Now().UTC() }()

	rpm := a.cfg.Values.RequestsPerMinute
	client := clients.NewBaseClient(a.cfg.ApiURL, a.writer, "[market/"+campaign.Label+"]").
		SetAuth(auth).
		SetLimiter(rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), rpm)).
		Use(middleware.PrometheusMiddleware(channelName))

	offerIDs, err := get.NewOfferMappingsService(client, campaign.CampaignID, a.log).FetchOfferIDs(ctx)
	if err != nil {
		return report, fmt.Errorf("fetching offer ids: %w", err)
	}
	report.OffersTotal = offerIDs.Len()
	a.metrics.OffersCollected.Add(int32(offerIDs.Len()))

	engine := reconcile.NewEngine()
	now := time.Now().UTC().Truncate(time.Second)

	stocks, err := engine.CreateStocks(remnants, offerIDs.Clone(), campaign.WarehouseID, now)
	if err != nil {
		return report, err
	}
	submitted, err := update.NewStockService(client, campaign.CampaignID, a.log).
		UploadStocks(ctx, request.NewSkus(stocks), a.cfg.Values.StockBatchSize)
	report.StocksSubmitted = submitted
	a.metrics.StocksSubmitted.Add(int32(submitted))
	metrics.RecordUpdates(channelName, "stocks", submitted)
	if err != nil {
		return report, err
	}
	report.StocksNonZero = len(reconcile.NotEmpty(stocks))

	offers, err := request.NewOfferPrices(engine.CreatePrices(remnants, offerIDs.Clone()))
	if err != nil {
		return report, err
	}
	submitted, err = update.NewPriceService(client, campaign.CampaignID, a.log).
		UploadPrices(ctx, offers, a.cfg.Values.PriceBatchSize)
	report.PricesSubmitted = submitted
	a.metrics.PricesSubmitted.Add(int32(submitted))
	metrics.RecordUpdates(channelName, "prices", submitted)
	if err != nil {
		return report, err
	}

	a.log.Log("Campaign %s finished: offers=%d stocks=%d (non-zero=%d) prices=%d",
		campaign.Label, report.OffersTotal, report.StocksSubmitted, report.StocksNonZero, report.PricesSubmitted)
	return report, nil
}
