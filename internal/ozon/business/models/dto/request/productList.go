package request

type ProductListRequest struct {
	Filter ProductListFilter `json:"filter"`
	LastID string            `json:"last_id"`
	Limit  int               `json:"limit"`
}

type ProductListFilter struct {
	Visibility string `json:"visibility"`
}

// NewProductListRequest — страница каталога, начиная с lastID.
// Видимость всегда ALL: скрытые товары тоже сверяем.
func NewProductListRequest(lastID string, limit int) *ProductListRequest {
	return &ProductListRequest{
		Filter: ProductListFilter{Visibility: "ALL"},
		LastID: lastID,
		Limit:  limit,
	}
}
