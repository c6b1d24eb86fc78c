package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var viPrinter = message.NewPrinter(language.Vietnamese)

// FormatVND форматирует сумму как в vi-VN: "180.000 đ", "1.234,5 đ".
func FormatVND(d decimal.Decimal) string {
	return viPrinter.Sprintf("%v đ", number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(2)))
}
