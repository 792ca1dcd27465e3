package response

type OfferMappingsResponse struct {
	Result *OfferMappingsResult `json:"result"`
}

type OfferMappingsResult struct {
	Paging              Paging              `json:"paging"`
	OfferMappingEntries []OfferMappingEntry `json:"offerMappingEntries"`
}

type Paging struct {
	NextPageToken string `json:"nextPageToken"`
}

type OfferMappingEntry struct {
	Offer Offer `json:"offer"`
}

type Offer struct {
	ShopSku string `json:"shopSku"`
}
