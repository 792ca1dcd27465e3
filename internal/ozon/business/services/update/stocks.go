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

const updateStocksEndpoint = "/v1/product/import/stocks"

type StockService struct {
	client *clients.BaseClient
	log    logger.Logger
}

func NewStockService(client *clients.BaseClient, log logger.Logger) *StockService {
	return &StockService{client: client, log: log}
}

// UpdateStocks отправляет одну пачку остатков. Подтверждение возвращаем
// как есть, вызывающий волен его игнорировать.
func (s *StockService) UpdateStocks(ctx context.Context, stocks []request.Stock) (json.RawMessage, error) {
	body := request.StocksUpdateRequest{Stocks: stocks}
	var ack json.RawMessage
	if err := s.client.DoRequest(ctx, http.MethodPost, updateStocksEndpoint, body, &ack); err != nil {
		return nil, fmt.Errorf("updating stocks: %w", err)
	}
	return ack, nil
}

// UploadStocks режет остатки на пачки и шлёт их по порядку. Первая же
// неудача прерывает отправку оставшихся пачек.
func (s *StockService) UploadStocks(ctx context.Context, stocks []request.Stock, batchSize int) (int, error) {
	submitted := 0
	for batch := range service.Divide(stocks, batchSize) {
		if _, err := s.UpdateStocks(ctx, batch); err != nil {
			return submitted, err
		}
		submitted += len(batch)
		s.log.Log("Uploaded stock batch: %d/%d", submitted, len(stocks))
	}
	return submitted, nil
}
