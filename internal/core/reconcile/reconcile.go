package reconcile

import (
	"fmt"
	"time"

	"gomarketsync/internal/core/models"
	"gomarketsync/pkg/business/service"
)

// Engine сверяет остатки поставщика с артикулами, известными маркетплейсу.
// Каждый вызов получает собственную копию множества артикулов: потребление
// внутри одного прохода не должно влиять на следующий.
type Engine struct {
	prices service.IPriceService
}

func NewEngine() *Engine {
	return &Engine{prices: service.NewPriceService()}
}

// CreateStocks строит обновления остатков в два прохода. Сначала идём по
// строкам файла остатков: совпавший артикул получает остаток из дескриптора
// и потребляется, чтобы дубль строки не сработал ещё раз. Затем все
// оставшиеся артикулы в исходном порядке обнуляются: чего нет в файле,
// того нет на складе.
func (e *Engine) CreateStocks(remnants []models.RemnantRecord, offerIDs *models.OfferIDSet, warehouseID string, now time.Time) ([]models.StockUpdate, error) {
	stocks := make([]models.StockUpdate, 0, offerIDs.Len())
	for _, remnant := range remnants {
		if !offerIDs.Contains(remnant.Code) {
			continue
		}
		count, err := BucketQuantity(remnant.Quantity)
		if err != nil {
			return nil, fmt.Errorf("offer %s: %w", remnant.Code, err)
		}
		stocks = append(stocks, models.StockUpdate{
			OfferID:     remnant.Code,
			Quantity:    count,
			WarehouseID: warehouseID,
			UpdatedAt:   now,
		})
		offerIDs.Remove(remnant.Code)
	}
	for _, id := range offerIDs.Remaining() {
		stocks = append(stocks, models.StockUpdate{
			OfferID:     id,
			Quantity:    0,
			WarehouseID: warehouseID,
			UpdatedAt:   now,
		})
	}
	return stocks, nil
}

// CreatePrices строит обновления цен для строк, чей артикул известен
// маркетплейсу. Здесь только проверка принадлежности, без потребления
// и без обнуления: цену неизвестно чего не шлём.
func (e *Engine) CreatePrices(remnants []models.RemnantRecord, offerIDs *models.OfferIDSet) []models.PriceUpdate {
	prices := make([]models.PriceUpdate, 0, len(remnants))
	for _, remnant := range remnants {
		if !offerIDs.Contains(remnant.Code) {
			continue
		}
		prices = append(prices, models.PriceUpdate{
			OfferID: remnant.Code,
			Price:   e.prices.ConvertPrice(remnant.Price),
		})
	}
	return prices
}

// NotEmpty отфильтровывает обновления с нулевым остатком, порядок сохраняется.
func NotEmpty(stocks []models.StockUpdate) []models.StockUpdate {
	notEmpty := make([]models.StockUpdate, 0, len(stocks))
	for _, stock := range stocks {
		if stock.Quantity > 0 {
			notEmpty = append(notEmpty, stock)
		}
	}
	return notEmpty
}
