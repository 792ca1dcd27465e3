package main

import (
	"context"
	"database/sql"
	"flag"
	"os"

	"github.com/google/uuid"

	"gomarketsync/config"
	"gomarketsync/internal/core/models"
	"gomarketsync/internal/journal"
	ozonapp "gomarketsync/internal/ozon/app"
	"gomarketsync/internal/supplier"
	marketapp "gomarketsync/internal/yandexmarket/app"
	"gomarketsync/metrics"
	"gomarketsync/pkg/dbconnect"
	"gomarketsync/pkg/dbconnect/migration"
	"gomarketsync/pkg/dbconnect/postgres"
	"gomarketsync/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.yaml", "путь к yaml-конфигу")
	flag.Parse()

	writer := os.Stdout
	_log := logger.NewLogger(writer, "[MarketSync]")

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		if os.IsNotExist(err) {
			_log.Log("Config file %s not found, using defaults", *configPath)
			cfg = config.DefaultConfig()
		} else {
			_log.FatalLog("Failed to load config: %v", err)
		}
	}
	config.ApplyEnv(cfg)

	runID := uuid.NewString()
	_log.Log("Started sync run %s", runID)

	ctx := context.Background()

	store, db := openJournal(ctx, cfg, _log)
	if db != nil {
		defer db.Close()
	}

	m := &metrics.SyncMetrics{}

	remnants, err := supplier.NewStockService(cfg.Supplier, writer).DownloadStock(ctx)
	if err != nil {
		_log.FatalLog("Failed to download supplier stock: %v", err)
	}

	ozonReport, err := ozonapp.NewSyncApp(cfg.Ozon, writer, m).Run(ctx, remnants)
	if err != nil {
		m.RunErrors.Add(1)
		_log.Log("Ozon sync failed: %v", err)
	}
	recordRun(ctx, store, _log, runID, ozonReport, err)

	marketReports, err := marketapp.NewSyncApp(cfg.Market, writer, m).Run(ctx, remnants)
	if err != nil {
		m.RunErrors.Add(1)
		_log.Log("Yandex Market sync failed: %v", err)
	}
	for i, report := range marketReports {
		// ошибка относится к последней кампании в списке, остальные прошли
		var runErr error
		if err != nil && i == len(marketReports)-1 {
			runErr = err
		}
		recordRun(ctx, store, _log, runID, report, runErr)
	}

	if cfg.Metrics.PushgatewayURL != "" {
		if err := metrics.PushAll(cfg.Metrics.PushgatewayURL, cfg.Metrics.Job); err != nil {
			_log.Log("Failed to push metrics: %v", err)
		}
	}
	_log.Log("Sync run %s finished: errors=%d", runID, m.RunErrors.Load())
}

// openJournal подключает журнал прогонов, если настроен Postgres.
// Любая неудача здесь оставляет журнал выключенным, прогон продолжается.
func openJournal(ctx context.Context, cfg *config.AppConfig, _log logger.Logger) (journal.Store, *sql.DB) {
	if !cfg.Postgres.Enabled() {
		return journal.Discard{}, nil
	}
	var connector dbconnect.Database = postgres.NewPgConnector(&cfg.Postgres)
	db, err := connector.Connect(ctx)
	if err != nil {
		_log.Log("Journal disabled, could not connect to Postgres: %v", err)
		return journal.Discard{}, nil
	}

	migrationApply := []migration.MigrationInterface{
		&journal.CreateMigrationsLedger{},
		&journal.CreateSyncSchema{},
		&journal.CreateRunsTable{},
	}
	for _, _migration := range migrationApply {
		if err := _migration.UpMigration(db); err != nil {
			_log.Log("Journal disabled, migration failed: %v", err)
			db.Close()
			return journal.Discard{}, nil
		}
	}
	return journal.NewPostgresJournal(db), db
}

func recordRun(ctx context.Context, store journal.Store, _log logger.Logger, runID string, report *models.SyncReport, runErr error) {
	record := journal.RunRecord{
		RunID:           runID,
		Channel:         report.Channel,
		OffersTotal:     report.OffersTotal,
		StocksSubmitted: report.StocksSubmitted,
		StocksNonZero:   report.StocksNonZero,
		PricesSubmitted: report.PricesSubmitted,
		StartedAt:       report.StartedAt,
		FinishedAt:      report.FinishedAt,
		Status:          journal.StatusOk,
	}
	if runErr != nil {
		record.Status = journal.StatusFailed
		record.Detail = runErr.Error()
	}
	if err := store.InsertRun(ctx, record); err != nil {
		_log.Log("Failed to record run in journal: %v", err)
	}
}
