package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quotaErr struct {
	code int
}

func (e *quotaErr) Error() string   { return fmt.Sprintf("status %d", e.code) }
func (e *quotaErr) HTTPStatus() int { return e.code }

func TestPrometheusMiddlewareRecordsRequests(t *testing.T) {
	mw := PrometheusMiddleware("mw")

	ok := mw(func(ctx context.Context, method, endpoint string, requestBody, response interface{}) error {
		return nil
	})
	quota := mw(func(ctx context.Context, method, endpoint string, requestBody, response interface{}) error {
		return &quotaErr{code: http.StatusTooManyRequests}
	})
	down := mw(func(ctx context.Context, method, endpoint string, requestBody, response interface{}) error {
		return errors.New("connection refused")
	})

	require.NoError(t, ok(context.Background(), http.MethodGet, "/ping?page_token=abc", nil, nil))

	err := quota(context.Background(), http.MethodPost, "/upload", nil, nil)
	var qErr *quotaErr
	require.ErrorAs(t, err, &qErr)

	assert.Error(t, down(context.Background(), http.MethodPost, "/upload", nil, nil))

	expected := `
		# HELP marketsync_api_requests_total Total number of marketplace API requests.
		# TYPE marketsync_api_requests_total counter
		marketsync_api_requests_total{channel="mw",endpoint="/ping",method="GET",status="2xx"} 1
		marketsync_api_requests_total{channel="mw",endpoint="/upload",method="POST",status="4xx"} 1
		marketsync_api_requests_total{channel="mw",endpoint="/upload",method="POST",status="unknown"} 1
	`
	require.NoError(t, testutil.GatherAndCompare(prometheus.DefaultGatherer,
		strings.NewReader(expected), "marketsync_api_requests_total"))
}
