package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"gomarketsync/metrics"
)

// PrometheusMiddleware собирает метрики исходящих запросов канала.
func PrometheusMiddleware(channel string) Middleware {
	return func(next RequestFunc) RequestFunc {
		return func(ctx context.Context, method, endpoint string, requestBody, response interface{}) error {
			start := time.Now()

			err := next(ctx, method, endpoint, requestBody, response)

			// В метку endpoint query не входит: токены страниц не место в метриках.
			if i := strings.IndexByte(endpoint, '?'); i >= 0 {
				endpoint = endpoint[:i]
			}

			// Статус берём из ошибки, если она его несёт; иначе 200 либо 0.
			status := http.StatusOK
			if err != nil {
				status = 0
				var httpErr interface{ HTTPStatus() int }
				if errors.As(err, &httpErr) {
					status = httpErr.HTTPStatus()
				}
			}
			metrics.RecordRequest(channel, method, endpoint, status, time.Since(start))
			return err
		}
	}
}
