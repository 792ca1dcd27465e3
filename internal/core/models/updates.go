package models

import "time"

// StockUpdate — нейтральная запись обновления остатка, одна на артикул за
// проход сверки. Канальные DTO собираются из неё конвертерами.
type StockUpdate struct {
	OfferID  string
	Quantity int
	// WarehouseID и UpdatedAt нужны только Яндекс Маркету; Ozon их игнорирует.
	WarehouseID string
	UpdatedAt   time.Time
}

// PriceUpdate — запись обновления цены. Price хранит результат нормализации
// текста цены ("5990"); пустая строка возможна и отлавливается только там,
// где формат канала требует целое число.
type PriceUpdate struct {
	OfferID string
	Price   string
}
