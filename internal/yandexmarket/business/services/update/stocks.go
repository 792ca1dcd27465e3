package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"gomarketsync/internal/yandexmarket/business/models/dto/request"
	"gomarketsync/pkg/business/service"
	"gomarketsync/pkg/clients"
	"gomarketsync/pkg/logger"
)

const updateStocksEndpoint = "/campaigns/%s/offers/stocks"

type StockService struct {
	client     *clients.BaseClient
	campaignID string
	log        logger.Logger
}

func NewStockService(client *clients.BaseClient, campaignID string, log logger.Logger) *StockService {
	return &StockService{client: client, campaignID: campaignID, log: log}
}

// UpdateStocks отправляет одну пачку остатков кампании.
func (s *StockService) UpdateStocks(ctx context.Context, skus []request.StockSku) (json.RawMessage, error) {
	endpoint := fmt.Sprintf(updateStocksEndpoint, s.campaignID)
	body := request.StocksUpdateRequest{Skus: skus}
	var ack json.RawMessage
	if err := s.client.DoRequest(ctx, http.MethodPut, endpoint, body, &ack); err != nil {
		return nil, fmt.Errorf("updating stocks: %w", err)
	}
	return ack, nil
}

// UploadStocks режет остатки на пачки и шлёт их по порядку до первой неудачи.
func (s *StockService) UploadStocks(ctx context.Context, skus []request.StockSku, batchSize int) (int, error) {
	submitted := 0
	for batch := range service.Divide(skus, batchSize) {
		if _, err := s.UpdateStocks(ctx, batch); err != nil {
			return submitted, err
		}
		submitted += len(batch)
		s.log.Log("Uploaded stock batch: %d/%d", submitted, len(skus))
	}
	return submitted, nil
}
