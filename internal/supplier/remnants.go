package supplier

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gomarketsync/config"
	"gomarketsync/internal/core/models"
	"gomarketsync/pkg/logger"
)

// Колонки файла остатков. Имена фиксированы поставщиком.
const (
	columnCode     = "Код"
	columnQuantity = "Количество"
	columnPrice    = "Цена"
)

// StockService скачивает архив остатков поставщика и разбирает таблицу
// в записи для сверки.
type StockService struct {
	url       string
	headerRow int
	fetcher   Fetcher
	log       logger.Logger
}

func NewStockService(cfg config.SupplierConfig, writer io.Writer) *StockService {
	return &StockService{
		url:       cfg.StockURL,
		headerRow: cfg.HeaderRow,
		fetcher:   NewHTTPFetcher(),
		log:       logger.NewLogger(writer, "[supplier]"),
	}
}

func (s *StockService) SetFetcher(fetcher Fetcher) *StockService {
	s.fetcher = fetcher
	return s
}

// DownloadStock загружает архив, достаёт из него таблицу и строит записи.
func (s *StockService) DownloadStock(ctx context.Context) ([]models.RemnantRecord, error) {
	body, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return nil, fmt.Errorf("downloading remnants: %w", err)
	}
	defer body.Close()

	archive, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("reading remnants archive: %w", err)
	}
	name, content, err := unpackArchive(archive)
	if err != nil {
		return nil, err
	}
	parser, err := parserFor(name)
	if err != nil {
		return nil, err
	}
	rows, err := parser.ParseTable(content)
	if err != nil {
		return nil, err
	}
	records, err := s.mapRows(rows)
	if err != nil {
		return nil, err
	}
	s.log.Log("Parsed %d remnant records from %s", len(records), name)
	return records, nil
}

// mapRows находит строку заголовка и собирает записи по именованным колонкам.
func (s *StockService) mapRows(rows [][]string) ([]models.RemnantRecord, error) {
	if len(rows) <= s.headerRow {
		return nil, fmt.Errorf("remnant table has %d rows, header expected at row %d", len(rows), s.headerRow)
	}
	header := rows[s.headerRow]
	codeIdx := indexOf(header, columnCode)
	quantityIdx := indexOf(header, columnQuantity)
	priceIdx := indexOf(header, columnPrice)
	if codeIdx < 0 || quantityIdx < 0 || priceIdx < 0 {
		return nil, fmt.Errorf("remnant table header misses columns %q, %q, %q",
			columnCode, columnQuantity, columnPrice)
	}

	records := make([]models.RemnantRecord, 0, len(rows)-s.headerRow-1)
	for _, row := range rows[s.headerRow+1:] {
		record := models.RemnantRecord{
			Code:     cellAt(row, codeIdx),
			Quantity: cellAt(row, quantityIdx),
			Price:    cellAt(row, priceIdx),
		}
		if record.Code == "" {
			// Пустые и итоговые строки в хвосте листа.
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

func indexOf(slice []string, str string) int {
	for i, s := range slice {
		if s == str {
			return i
		}
	}
	return -1
}
