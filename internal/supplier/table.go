package supplier

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// TableParser разбирает файл остатков в таблицу строк.
type TableParser interface {
	ParseTable(data []byte) ([][]string, error)
}

// parserFor выбирает парсер по расширению файла в архиве.
func parserFor(name string) (TableParser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xls":
		return &XLSTable{}, nil
	case ".csv":
		return &CSVTable{}, nil
	}
	return nil, fmt.Errorf("unsupported remnant table format: %s", name)
}

// XLSTable читает старый бинарный Excel, в котором поставщик ведёт остатки.
type XLSTable struct{}

func (t *XLSTable) ParseTable(data []byte) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("opening xls: %w", err)
	}
	sheet := workbook.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("xls has no sheets")
	}
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		width := row.LastCol()
		cells := make([]string, width)
		for j := row.FirstCol(); j < width; j++ {
			cells[j] = row.Col(j)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// CSVTable читает CSV данные, декодируя из Windows-1251.
type CSVTable struct{}

func (t *CSVTable) ParseTable(data []byte) ([][]string, error) {
	decoder := transform.NewReader(bytes.NewReader(data), charmap.Windows1251.NewDecoder())
	csvReader := csv.NewReader(decoder)
	csvReader.Comma = ';'
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv read error: %w", err)
	}
	return allRows, nil
}
