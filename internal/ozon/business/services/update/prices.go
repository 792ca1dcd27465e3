package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"gomarketsync/internal/ozon/business/models/dto/request"
	"gomarketsync/pkg/business/service"
	"gomarketsync/pkg/clients"
	"gomarketsync/pkg/logger"
)

const updatePricesEndpoint = "/v1/product/import/prices"

type PriceService struct {
	client *clients.BaseClient
	log    logger.Logger
}

func NewPriceService(client *clients.BaseClient, log logger.Logger) *PriceService {
	return &PriceService{client: client, log: log}
}

// UpdatePrices отправляет одну пачку цен.
func (s *PriceService) UpdatePrices(ctx context.Context, prices []request.Price) (json.RawMessage, error) {
	body := request.PricesUpdateRequest{Prices: prices}
	var ack json.RawMessage
	if err := s.client.DoRequest(ctx, http.MethodPost, updatePricesEndpoint, body, &ack); err != nil {
		return nil, fmt.Errorf("updating prices: %w", err)
	}
	return ack, nil
}

// UploadPrices режет цены на пачки и шлёт их по порядку до первой неудачи.
func (s *PriceService) UploadPrices(ctx context.Context, prices []request.Price, batchSize int) (int, error) {
	submitted := 0
	for batch := range service.Divide(prices, batchSize) {
		if _, err := s.UpdatePrices(ctx, batch); err != nil {
			return submitted, err
		}
		submitted += len(batch)
		s.log.Log("Uploaded price batch: %d/%d", submitted, len(prices))
	}
	return submitted, nil
}
