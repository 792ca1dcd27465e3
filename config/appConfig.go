package config

import (
	"gopkg.in/yaml.v3"
	"os"

	"gomarketsync/config/values"
)

type OzonConfig struct {
	ClientID string            `yaml:"client_id"`
	ApiKey   string            `yaml:"api_key"`
	ApiURL   string            `yaml:"api_url"`
	Values   values.SyncValues `yaml:"default_values"`
}

// MarketCampaign — одна кампания Яндекс Маркета (fbs либо dbs) со своим складом.
type MarketCampaign struct {
	Label       string `yaml:"label"`
	CampaignID  string `yaml:"campaign_id"`
	WarehouseID string `yaml:"warehouse_id"`
}

type MarketConfig struct {
	Token     string            `yaml:"token"`
	ApiURL    string            `yaml:"api_url"`
	Campaigns []MarketCampaign  `yaml:"campaigns"`
	Values    values.SyncValues `yaml:"default_values"`
}

type SupplierConfig struct {
	StockURL  string `yaml:"stock_url"`
	HeaderRow int    `yaml:"header_row"`
}

type MetricsConfig struct {
	PushgatewayURL string `yaml:"pushgateway_url"`
	Job            string `yaml:"job"`
}

type AppConfig struct {
	Supplier SupplierConfig `yaml:"supplier"`
	Ozon     OzonConfig     `yaml:"ozon"`
	Market   MarketConfig   `yaml:"yandex_market"`
	Postgres PostgresConfig `yaml:"postgres"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

func LoadConfig(filename string) (*AppConfig, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	config := &AppConfig{}
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}
	config.withDefaults()
	return config, nil
}

// DefaultConfig — конфигурация при отсутствии файла: значения по умолчанию
// плюс переменные окружения.
func DefaultConfig() *AppConfig {
	config := &AppConfig{}
	config.withDefaults()
	return config
}

func (c *AppConfig) withDefaults() {
	if c.Supplier.StockURL == "" {
		c.Supplier.StockURL = values.DefaultStockURL
	}
	if c.Supplier.HeaderRow == 0 {
		c.Supplier.HeaderRow = values.DefaultHeaderRow
	}
	if c.Ozon.ApiURL == "" {
		c.Ozon.ApiURL = values.DefaultOzonApiURL
	}
	c.Ozon.Values = c.Ozon.Values.OrDefault(values.DefaultOzonValues)
	if c.Market.ApiURL == "" {
		c.Market.ApiURL = values.DefaultMarketApiURL
	}
	c.Market.Values = c.Market.Values.OrDefault(values.DefaultMarketValues)
	if len(c.Market.Campaigns) == 0 {
		// Кампании прежнего скрипта: fbs и dbs, идентификаторы из окружения.
		c.Market.Campaigns = []MarketCampaign{{Label: "fbs"}, {Label: "dbs"}}
	}
	if c.Metrics.Job == "" {
		c.Metrics.Job = "gomarketsync"
	}
}
