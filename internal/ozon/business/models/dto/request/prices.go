package request

import "gomarketsync/internal/core/models"

type PricesUpdateRequest struct {
	Prices []Price `json:"prices"`
}

type Price struct {
	AutoActionEnabled string `json:"auto_action_enabled"`
	CurrencyCode      string `json:"currency_code"`
	OfferID           string `json:"offer_id"`
	OldPrice          string `json:"old_price"`
	Price             string `json:"price"`
}

// NewPrices собирает DTO цен Ozon. old_price обнуляем, чтобы не рисовать
// зачёркнутую цену, авто-акции не трогаем.
func NewPrices(updates []models.PriceUpdate) []Price {
	prices := make([]Price, 0, len(updates))
	for _, u := range updates {
		prices = append(prices, Price{
			AutoActionEnabled: "UNKNOWN",
			CurrencyCode:      "RUB",
			OfferID:           u.OfferID,
			OldPrice:          "0",
			Price:             u.Price,
		})
	}
	return prices
}
