package values

// SyncValues — настраиваемые лимиты канала: размеры пачек и темп запросов.
type SyncValues struct {
	StockBatchSize    int `yaml:"stock-batch-size"`
	PriceBatchSize    int `yaml:"price-batch-size"`
	RequestsPerMinute int `yaml:"requests-per-minute"`
}

// OrDefault закрывает незаполненные значения значениями по умолчанию.
func (v SyncValues) OrDefault(def SyncValues) SyncValues {
	if v.StockBatchSize <= 0 {
		v.StockBatchSize = def.StockBatchSize
	}
	if v.PriceBatchSize <= 0 {
		v.PriceBatchSize = def.PriceBatchSize
	}
	if v.RequestsPerMinute <= 0 {
		v.RequestsPerMinute = def.RequestsPerMinute
	}
	return v
}

var (
	DefaultOzonValues   = SyncValues{StockBatchSize: 100, PriceBatchSize: 1000, RequestsPerMinute: 100}
	DefaultMarketValues = SyncValues{StockBatchSize: 2000, PriceBatchSize: 500, RequestsPerMinute: 100}
)

const (
	DefaultStockURL     = "https://timeworld.ru/upload/files/ostatki.zip"
	DefaultHeaderRow    = 17
	DefaultOzonApiURL   = "https://api-seller.ozon.ru"
	DefaultMarketApiURL = "https://api.partner.market.yandex.ru"
)
