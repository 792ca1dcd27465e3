package get

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"gomarketsync/internal/core/models"
	"gomarketsync/internal/yandexmarket/business/models/dto/response"
	"gomarketsync/pkg/clients"
	"gomarketsync/pkg/logger"
)

const offerMappingsEndpoint = "/campaigns/%s/offer-mapping-entries"

// pageLimit — максимум записей на страницу списка товаров Маркета.
const pageLimit = 200

type OfferMappingsService struct {
	client     *clients.BaseClient
	campaignID string
	log        logger.Logger
}

func NewOfferMappingsService(client *clients.BaseClient, campaignID string, log logger.Logger) *OfferMappingsService {
	return &OfferMappingsService{client: client, campaignID: campaignID, log: log}
}

// GetOfferMappings запрашивает одну страницу списка товаров кампании.
func (s *OfferMappingsService) GetOfferMappings(ctx context.Context, pageToken string) (*response.OfferMappingsResult, error) {
	endpoint := fmt.Sprintf(offerMappingsEndpoint+"?limit=%d&page_token=%s",
		s.campaignID, pageLimit, url.QueryEscape(pageToken))
	var resp response.OfferMappingsResponse
	if err := s.client.DoRequest(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching offer mappings: %w", err)
	}
	if resp.Result == nil {
		return nil, fmt.Errorf("offer mappings response has no result")
	}
	return resp.Result, nil
}

// FetchOfferIDs собирает shopSku всех товаров кампании, листая страницы,
// пока сервер возвращает nextPageToken.
func (s *OfferMappingsService) FetchOfferIDs(ctx context.Context) (*models.OfferIDSet, error) {
	offerIDs := models.NewOfferIDSet(nil)
	pageToken := ""
	for {
		result, err := s.GetOfferMappings(ctx, pageToken)
		if err != nil {
			return nil, err
		}
		for _, entry := range result.OfferMappingEntries {
			offerIDs.Add(entry.Offer.ShopSku)
		}
		pageToken = result.Paging.NextPageToken
		if pageToken == "" {
			break
		}
	}
	s.log.Log("Collected %d offer ids", offerIDs.Len())
	return offerIDs, nil
}
