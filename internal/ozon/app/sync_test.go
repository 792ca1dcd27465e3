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
	"gomarketsync/internal/ozon/business/models/dto/request"
	"gomarketsync/metrics"
)

func testValues() values.SyncValues {
	return values.SyncValues{StockBatchSize: 100, PriceBatchSize: 1000, RequestsPerMinute: 6000}
}

func TestRunSyncsWholeCatalog(t *testing.T) {
	var stockBatches []request.StocksUpdateRequest
	var priceBatches []request.PricesUpdateRequest

	mux := http.NewServeMux()
	mux.HandleFunc("/v2/product/list", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":{"items":[{"offer_id":"A"},{"offer_id":"B"},{"offer_id":"C"}],"total":3,"last_id":""}}`))
	})
	mux.HandleFunc("/v1/product/import/stocks", func(w http.ResponseWriter, r *http.Request) {
		var body request.StocksUpdateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		stockBatches = append(stockBatches, body)
		w.Write([]byte(`{"result":[]}`))
	})
	mux.HandleFunc("/v1/product/import/prices", func(w http.ResponseWriter, r *http.Request) {
		var body request.PricesUpdateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		priceBatches = append(priceBatches, body)
		w.Write([]byte(`{"result":[]}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	cfg := config.OzonConfig{ClientID: "c", ApiKey: "k", ApiURL: server.URL, Values: testValues()}
	m := &metrics.SyncMetrics{}
	remnants := []models.RemnantRecord{{Code: "A", Quantity: ">10", Price: "5'990.00 руб."}}

	report, err := NewSyncApp(cfg, io.Discard, m).Run(context.Background(), remnants)
	require.NoError(t, err)

	assert.Equal(t, 3, report.OffersTotal)
	assert.Equal(t, 3, report.StocksSubmitted)
	assert.Equal(t, 1, report.StocksNonZero)
	assert.Equal(t, 1, report.PricesSubmitted)

	require.Len(t, stockBatches, 1)
	require.Len(t, stockBatches[0].Stocks, 3)
	assert.Equal(t, request.Stock{OfferID: "A", Stock: 100}, stockBatches[0].Stocks[0])
	assert.Equal(t, request.Stock{OfferID: "B", Stock: 0}, stockBatches[0].Stocks[1])
	assert.Equal(t, request.Stock{OfferID: "C", Stock: 0}, stockBatches[0].Stocks[2])

	require.Len(t, priceBatches, 1)
	require.Len(t, priceBatches[0].Prices, 1)
	assert.Equal(t, "A", priceBatches[0].Prices[0].OfferID)
	assert.Equal(t, "5990", priceBatches[0].Prices[0].Price)

	assert.Equal(t, int32(3), m.OffersCollected.Load())
	assert.Equal(t, int32(3), m.StocksSubmitted.Load())
	assert.Equal(t, int32(1), m.PricesSubmitted.Load())
}

func TestRunWithoutCredentials(t *testing.T) {
	cfg := config.OzonConfig{ApiURL: "http://localhost:1", Values: testValues()}

	report, err := NewSyncApp(cfg, io.Discard, &metrics.SyncMetrics{}).
		Run(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credentials are not configured")
	assert.NotNil(t, report)
}

func TestRunStocksFailureSkipsPrices(t *testing.T) {
	priceCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/product/list", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":{"items":[{"offer_id":"A"}],"total":1,"last_id":""}}`))
	})
	mux.HandleFunc("/v1/product/import/stocks", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rejected", http.StatusConflict)
	})
	mux.HandleFunc("/v1/product/import/prices", func(w http.ResponseWriter, r *http.Request) {
		priceCalls++
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	cfg := config.OzonConfig{ClientID: "c", ApiKey: "k", ApiURL: server.URL, Values: testValues()}

	report, err := NewSyncApp(cfg, io.Discard, &metrics.SyncMetrics{}).
		Run(context.Background(), nil)
	require.Error(t, err)

	assert.Zero(t, report.StocksSubmitted)
	assert.Zero(t, priceCalls)
	assert.False(t, report.FinishedAt.IsZero())
}
