package models

// RemnantRecord представляет одну строку из файла остатков поставщика.
// Значения намеренно остаются строками: количество может быть числом или
// маркером ">10", цена приходит в виде текста ("5'990.00 руб.").
type RemnantRecord struct {
	// Code — артикул товара у поставщика, он же offer_id на маркетплейсах.
	Code string
	// Quantity — дескриптор количества из колонки "Количество".
	Quantity string
	// Price — текст цены из колонки "Цена".
	Price string
}
