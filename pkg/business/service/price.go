package service

import (
	"regexp"
	"strings"
)

type IPriceService interface {
	ConvertPrice(input string) string
}

type PriceService struct{}

func NewPriceService() *PriceService {
	return &PriceService{}
}

// ConvertPrice приводит цену из файла остатков к целой строке.
// "5'990.00 руб." -> "5990". Если разделителя нет, берём всю строку.
func (ps *PriceService) ConvertPrice(input string) string {
	re := regexp.MustCompile(`[^0-9]`)
	integerPart := strings.SplitN(input, ".", 2)[0]
	return re.ReplaceAllString(integerPart, "")
}
