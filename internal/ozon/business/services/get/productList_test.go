package get

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomarketsync/internal/ozon/business/services"
	"gomarketsync/pkg/clients"
	"gomarketsync/pkg/logger"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *ProductListService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := clients.NewBaseClient(server.URL, io.Discard, "[test]").
		SetAuth(services.NewApiKeyAuth("client-1", "key-1"))
	return NewProductListService(client, logger.NewLogger(io.Discard, "[test]"))
}

func TestFetchOfferIDsPaginates(t *testing.T) {
	pages := map[string]string{
		"":     `{"result":{"items":[{"product_id":1,"offer_id":"A"},{"product_id":2,"offer_id":"B"}],"total":4,"last_id":"next"}}`,
		"next": `{"result":{"items":[{"product_id":3,"offer_id":"C"},{"product_id":1,"offer_id":"A"}],"total":4,"last_id":"end"}}`,
	}
	var requested []string
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/product/list", r.URL.Path)
		assert.Equal(t, "client-1", r.Header.Get("Client-Id"))
		assert.Equal(t, "key-1", r.Header.Get("Api-Key"))

		var body struct {
			LastID string `json:"last_id"`
			Limit  int    `json:"limit"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 1000, body.Limit)
		requested = append(requested, body.LastID)
		w.Write([]byte(pages[body.LastID]))
	})

	offerIDs, err := service.FetchOfferIDs(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"", "next"}, requested)
	// повтор A на второй странице засчитан в total, но в множество не попал
	assert.Equal(t, []string{"A", "B", "C"}, offerIDs.Remaining())
}

func TestFetchOfferIDsSinglePage(t *testing.T) {
	requests := 0
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"result":{"items":[{"offer_id":"A"}],"total":1,"last_id":"z"}}`))
	})

	offerIDs, err := service.FetchOfferIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, requests)
	assert.Equal(t, 1, offerIDs.Len())
}

func TestFetchOfferIDsEmptyCatalog(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":{"items":[],"total":0,"last_id":""}}`))
	})

	offerIDs, err := service.FetchOfferIDs(context.Background())
	require.NoError(t, err)
	assert.Zero(t, offerIDs.Len())
}

func TestFetchOfferIDsStalledPagination(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":{"items":[],"total":5,"last_id":"x"}}`))
	})

	_, err := service.FetchOfferIDs(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stalled")
}

func TestFetchOfferIDsServerError(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	})

	_, err := service.FetchOfferIDs(context.Background())
	require.Error(t, err)

	var statusErr *clients.StatusError
	assert.ErrorAs(t, err, &statusErr)
}

func TestGetProductListMissingResult(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := service.GetProductList(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no result")
}
