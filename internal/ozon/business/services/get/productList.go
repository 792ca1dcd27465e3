package get

import (
	"context"
	"fmt"
	"net/http"

	"gomarketsync/internal/core/models"
	"gomarketsync/internal/ozon/business/models/dto/request"
	"gomarketsync/internal/ozon/business/models/dto/response"
	"gomarketsync/pkg/clients"
	"gomarketsync/pkg/logger"
)

const productListEndpoint = "/v2/product/list"

// pageLimit — максимум позиций на страницу каталога Ozon.
const pageLimit = 1000

type ProductListService struct {
	client *clients.BaseClient
	log    logger.Logger
}

func NewProductListService(client *clients.BaseClient, log logger.Logger) *ProductListService {
	return &ProductListService{client: client, log: log}
}

// GetProductList запрашивает одну страницу каталога, начиная с lastID.
func (s *ProductListService) GetProductList(ctx context.Context, lastID string) (*response.ProductListResult, error) {
	body := request.NewProductListRequest(lastID, pageLimit)
	var resp response.ProductListResponse
	if err := s.client.DoRequest(ctx, http.MethodPost, productListEndpoint, body, &resp); err != nil {
		return nil, fmt.Errorf("fetching product list: %w", err)
	}
	if resp.Result == nil {
		return nil, fmt.Errorf("product list response has no result")
	}
	return resp.Result, nil
}

// FetchOfferIDs собирает артикулы всего каталога, листая страницы, пока
// число полученных позиций не сравняется с total из ответа.
func (s *ProductListService) FetchOfferIDs(ctx context.Context) (*models.OfferIDSet, error) {
	offerIDs := models.NewOfferIDSet(nil)
	lastID := ""
	collected := 0
	for {
		result, err := s.GetProductList(ctx, lastID)
		if err != nil {
			return nil, err
		}
		for _, item := range result.Items {
			offerIDs.Add(item.OfferID)
		}
		collected += len(result.Items)
		if collected == result.Total {
			break
		}
		if len(result.Items) == 0 {
			// Сервер обещает ещё позиции, но страницы кончились.
			return nil, fmt.Errorf("product list pagination stalled: collected %d of %d items", collected, result.Total)
		}
		lastID = result.LastID
	}
	s.log.Log("Collected %d offer ids (%d unique)", collected, offerIDs.Len())
	return offerIDs, nil
}
