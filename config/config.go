package config

import (
	"os"
)

// ApplyEnv накладывает переменные окружения поверх файла конфигурации.
// Имена переменных те же, что и у прежнего скрипта синхронизации.
func ApplyEnv(cfg *AppConfig) {
	cfg.Ozon.ClientID = getEnv("CLIENT_ID", cfg.Ozon.ClientID)
	cfg.Ozon.ApiKey = getEnv("SELLER_TOKEN", cfg.Ozon.ApiKey)
	cfg.Market.Token = getEnv("MARKET_TOKEN", cfg.Market.Token)
	cfg.Supplier.StockURL = getEnv("STOCK_URL", cfg.Supplier.StockURL)

	for i := range cfg.Market.Campaigns {
		campaign := &cfg.Market.Campaigns[i]
		switch campaign.Label {
		case "fbs":
			campaign.CampaignID = getEnv("FBS_ID", campaign.CampaignID)
			campaign.WarehouseID = getEnv("WAREHOUSE_FBS_ID", campaign.WarehouseID)
		case "dbs":
			campaign.CampaignID = getEnv("DBS_ID", campaign.CampaignID)
			campaign.WarehouseID = getEnv("WAREHOUSE_DBS_ID", campaign.WarehouseID)
		}
	}

	cfg.Postgres.Host = getEnv("POSTGRES_HOST", cfg.Postgres.Host)
	cfg.Postgres.Port = getEnv("POSTGRES_PORT", cfg.Postgres.Port)
	cfg.Postgres.User = getEnv("POSTGRES_USER", cfg.Postgres.User)
	cfg.Postgres.Password = getEnv("POSTGRES_PASSWORD", cfg.Postgres.Password)
	cfg.Postgres.DBName = getEnv("POSTGRES_NAME", cfg.Postgres.DBName)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
