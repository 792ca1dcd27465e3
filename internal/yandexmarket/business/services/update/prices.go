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

const updatePricesEndpoint = "/campaigns/%s/offer-prices/updates"

type PriceService struct {
	client     *clients.BaseClient
	campaignID string
	log        logger.Logger
}

func NewPriceService(client *clients.BaseClient, campaignID string, log logger.Logger) *PriceService {
	return &PriceService{client: client, campaignID: campaignID, log: log}
}

// UpdatePrices отправляет одну пачку цен кампании.
func (s *PriceService) UpdatePrices(ctx context.Context, offers []request.OfferPrice) (json.RawMessage, error) {
	endpoint := fmt.Sprintf(updatePricesEndpoint, s.campaignID)
	body := request.PricesUpdateRequest{Offers: offers}
	var ack json.RawMessage
	if err := s.client.DoRequest(ctx, http.MethodPost, endpoint, body, &ack); err != nil {
		return nil, fmt.Errorf("updating prices: %w", err)
	}
	return ack, nil
}

// UploadPrices режет цены на пачки и шлёт их по порядку до первой неудачи.
func (s *PriceService) UploadPrices(ctx context.Context, offers []request.OfferPrice, batchSize int) (int, error) {
	submitted := 0
	for batch := range service.Divide(offers, batchSize) {
		if _, err := s.UpdatePrices(ctx, batch); err != nil {
			return submitted, err
		}
		submitted += len(batch)
		s.log.Log("Uploaded price batch: %d/%d", submitted, len(offers))
	}
	return submitted, nil
}
