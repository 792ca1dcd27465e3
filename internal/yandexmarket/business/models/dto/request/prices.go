package request

import (
	"fmt"
	"strconv"

	"gomarketsync/internal/core/models"
)

type PricesUpdateRequest struct {
	Offers []OfferPrice `json:"offers"`
}

type OfferPrice struct {
	ID    string     `json:"id"`
	Price PriceValue `json:"price"`
}

type PriceValue struct {
	Value      int    `json:"value"`
	CurrencyID string `json:"currencyId"`
}

// NewOfferPrices переводит нормализованные цены в формат Маркета.
// Маркет требует целое число: пустой результат нормализации здесь фатален.
func NewOfferPrices(updates []models.PriceUpdate) ([]OfferPrice, error) {
	offers := make([]OfferPrice, 0, len(updates))
	for _, u := range updates {
		value, err := strconv.Atoi(u.Price)
		if err != nil {
			return nil, fmt.Errorf("offer %s: price %q is not an integer", u.OfferID, u.Price)
		}
		offers = append(offers, OfferPrice{
			ID:    u.OfferID,
			Price: PriceValue{Value: value, CurrencyID: "RUR"},
		})
	}
	return offers, nil
}
