package request

import "gomarketsync/internal/core/models"

type StocksUpdateRequest struct {
	Stocks []Stock `json:"stocks"`
}

type Stock struct {
	OfferID string `json:"offer_id"`
	Stock   int    `json:"stock"`
}

// NewStocks собирает DTO Ozon из нейтральных обновлений.
// Склад и метка времени Ozon не нужны.
func NewStocks(updates []models.StockUpdate) []Stock {
	stocks := make([]Stock, 0, len(updates))
	for _, u := range updates {
		stocks = append(stocks, Stock{OfferID: u.OfferID, Stock: u.Quantity})
	}
	return stocks
}
