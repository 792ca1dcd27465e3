package request

import (
	"time"

	"gomarketsync/internal/core/models"
)

type StocksUpdateRequest struct {
	Skus []StockSku `json:"skus"`
}

type StockSku struct {
	Sku         string      `json:"sku"`
	WarehouseID string      `json:"warehouseId"`
	Items       []StockItem `json:"items"`
}

type StockItem struct {
	Count     int    `json:"count"`
	Type      string `json:"type"`
	UpdatedAt string `json:"updatedAt"`
}

// NewSkus собирает DTO Маркета: на каждый артикул одна позиция типа FIT
// с меткой времени прогона.
func NewSkus(updates []models.StockUpdate) []StockSku {
	skus := make([]StockSku, 0, len(updates))
	for _, u := range updates {
		skus = append(skus, StockSku{
			Sku:         u.OfferID,
			WarehouseID: u.WarehouseID,
			Items: []StockItem{{
				Count:     u.Quantity,
				Type:      "FIT",
				UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
			}},
		})
	}
	return skus
}
