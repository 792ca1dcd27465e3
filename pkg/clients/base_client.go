package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"gomarketsync/pkg/logger"
	"gomarketsync/pkg/middleware"
)

// AuthEngine подставляет авторизацию канала в исходящий запрос.
type AuthEngine interface {
	SetApiKey(request *http.Request)
}

// StatusError возвращается на любой статус, отличный от 200 OK.
type StatusError struct {
	Method     string
	Endpoint   string
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	if len(e.Body) > 0 {
		return fmt.Sprintf("unexpected status code: %s, error body: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("unexpected status code: %s", e.Status)
}

func (e *StatusError) HTTPStatus() int {
	return e.StatusCode
}

type BaseClient struct {
	ApiURL  string
	log     logger.Logger
	client  *http.Client
	auth    AuthEngine
	limiter *rate.Limiter
	mws     []middleware.Middleware
	do      middleware.RequestFunc
}

func NewBaseClient(apiURL string, writer io.Writer, logPrefix string) *BaseClient {
	c := &BaseClient{
		ApiURL: apiURL,
		log:    logger.NewLogger(writer, logPrefix),
		client: &http.Client{Timeout: 30 * time.Second},
	}
	c.do = c.doRequest
	return c
}

func (c *BaseClient) SetAuth(auth AuthEngine) *BaseClient {
	c.auth = auth
	return c
}

func (c *BaseClient) SetLimiter(limiter *rate.Limiter) *BaseClient {
	c.limiter = limiter
	return c
}

// Use добавляет middleware; внешним становится первый добавленный.
func (c *BaseClient) Use(mws ...middleware.Middleware) *BaseClient {
	c.mws = append(c.mws, mws...)
	c.do = middleware.Chain(c.doRequest, c.mws...)
	return c
}

// DoRequest выполняет запрос через цепочку middleware, придерживая темп лимитером.
func (c *BaseClient) DoRequest(ctx context.Context, method, endpoint string, requestBody interface{}, response interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}
	return c.do(ctx, method, endpoint, requestBody, response)
}

func (c *BaseClient) doRequest(ctx context.Context, method, endpoint string, requestBody interface{}, response interface{}) error {
	var bodyBytes []byte
	if requestBody != nil {
		var err error
		bodyBytes, err = json.Marshal(requestBody)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s%s", c.ApiURL, endpoint), bytes.NewBuffer(bodyBytes))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.auth != nil {
		c.auth.SetApiKey(req)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		select {
		case <-ctx.Done():
			return fmt.Errorf("request was cancelled: %w", ctx.Err())
		default:
			return fmt.Errorf("failed to execute request: %w", err)
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &StatusError{
			Method:     method,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       body,
		}
	}

	if response != nil && len(body) > 0 {
		if err := json.Unmarshal(body, response); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}
