package app

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomarketsync/config"
	"gomarketsync/config/values"
	"gomarketsync/internal/core/models"
	"gomarketsync/internal/yandexmarket/business/models/dto/request"
	"gomarketsync/metrics"
)

func testConfig(apiURL string, campaigns ...config.MarketCampaign) config.MarketConfig {
	return config.MarketConfig{
		Token:     "tok",
		ApiURL:    apiURL,
		Campaigns: campaigns,
		Values:    values.SyncValues{StockBatchSize: 2000, PriceBatchSize: 500, RequestsPerMinute: 6000},
	}
}

func TestRunSyncsEveryCampaign(t *testing.T) {
	stockBatches := map[string][]request.StockSku{}
	priceBatches := map[string][]request.OfferPrice{}

	mux := http.NewServeMux()
	for _, id := range []string{"900", "901"} {
		campaignID := id
		mux.HandleFunc("/campaigns/"+campaignID+"/offer-mapping-entries", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"result":{"paging":{},"offerMappingEntries":[{"offer":{"shopSku":"A"}},{"offer":{"shopSku":"B"}}]}}`))
		})
		mux.HandleFunc("/campaigns/"+campaignID+"/offers/stocks", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			var body request.StocksUpdateRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			stockBatches[campaignID] = append(stockBatches[campaignID], body.Skus...)
			w.Write([]byte(`{"status":"OK"}`))
		})
		mux.HandleFunc("/campaigns/"+campaignID+"/offer-prices/updates", func(w http.ResponseWriter, r *http.Request) {
			var body request.PricesUpdateRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			priceBatches[campaignID] = append(priceBatches[campaignID], body.Offers...)
			w.Write([]byte(`{"status":"OK"}`))
		})
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	cfg := testConfig(server.URL,
		config.MarketCampaign{Label: "fbs", CampaignID: "900", WarehouseID: "71"},
		config.MarketCampaign{Label: "dbs", CampaignID: "901", WarehouseID: "72"},
	)
	remnants := []models.RemnantRecord{{Code: "A", Quantity: ">10", Price: "999 руб."}}

	reports, err := NewSyncApp(cfg, io.Discard, &metrics.SyncMetrics{}).
		Run(context.Background(), remnants)
	require.NoError(t, err)

	require.Len(t, reports, 2)
	assert.Equal(t, "yandex-market/fbs", reports[0].Channel)
	assert.Equal(t, "yandex-market/dbs", reports[1].Channel)
	assert.Equal(t, 2, reports[0].StocksSubmitted)
	assert.Equal(t, 1, reports[0].PricesSubmitted)

	require.Len(t, stockBatches["900"], 2)
	assert.Equal(t, "A", stockBatches["900"][0].Sku)
	assert.Equal(t, "71", stockBatches["900"][0].WarehouseID)
	assert.Equal(t, 100, stockBatches["900"][0].Items[0].Count)
	assert.Equal(t, "B", stockBatches["900"][1].Sku)
	assert.Equal(t, 0, stockBatches["900"][1].Items[0].Count)
	assert.Equal(t, "72", stockBatches["901"][0].WarehouseID)

	require.Len(t, priceBatches["901"], 1)
	assert.Equal(t, request.OfferPrice{ID: "A", Price: request.PriceValue{Value: 999, CurrencyID: "RUR"}}, priceBatches["901"][0])
}

func TestRunSkipsUnconfiguredCampaign(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"result":{"paging":{},"offerMappingEntries":[]}}`))
	}))
	t.Cleanup(server.Close)

	cfg := testConfig(server.URL,
		config.MarketCampaign{Label: "fbs", CampaignID: "900"},
		config.MarketCampaign{Label: "dbs"},
	)

	reports, err := NewSyncApp(cfg, io.Discard, &metrics.SyncMetrics{}).
		Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, reports, 1)
}

func TestRunWithoutToken(t *testing.T) {
	cfg := testConfig("http://localhost:1", config.MarketCampaign{Label: "fbs", CampaignID: "900"})
	cfg.Token = ""

	_, err := NewSyncApp(cfg, io.Discard, &metrics.SyncMetrics{}).
		Run(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token is not configured")
}

func TestRunCampaignFailureAbortsRemaining(t *testing.T) {
	var touched []string
	mux := http.NewServeMux()
	mux.HandleFunc("/campaigns/900/offer-mapping-entries", func(w http.ResponseWriter, r *http.Request) {
		touched = append(touched, "900")
		http.Error(w, "forbidden", http.StatusForbidden)
	})
	mux.HandleFunc("/campaigns/901/offer-mapping-entries", func(w http.ResponseWriter, r *http.Request) {
		touched = append(touched, "901")
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	cfg := testConfig(server.URL,
		config.MarketCampaign{Label: "fbs", CampaignID: "900"},
		config.MarketCampaign{Label: "dbs", CampaignID: "901"},
	)

	reports, err := NewSyncApp(cfg, io.Discard, &metrics.SyncMetrics{}).
		Run(context.Background(), nil)
	require.Error(t, err)

	assert.Contains(t, err.Error(), "campaign fbs")
	assert.Equal(t, []string{"900"}, touched)
	assert.Len(t, reports, 1)
}
