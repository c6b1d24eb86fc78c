package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"station-report/internal/report/model"
)

const (
	DefaultTimeColumn   = "Giờ"
	DefaultAmountColumn = "Thành tiền (VNĐ)"
)

// Filter отбирает строки по окну времени и суммирует колонку денег.
type Filter struct {
	TimeColumn   string
	AmountColumn string
}

func NewFilter(timeCol, amountCol string) Filter {
	if timeCol == "" {
		timeCol = DefaultTimeColumn
	}
	if amountCol == "" {
		amountCol = DefaultAmountColumn
	}
	return Filter{TimeColumn: timeCol, AmountColumn: amountCol}
}

// Apply не меняет входной срез; строки без разбираемого времени выпадают молча.
func (f Filter) Apply(rows []model.Row, tr model.TimeRange) model.FilteredResult {
	res := model.FilteredResult{
		Rows:    make([]model.Row, 0, len(rows)),
		Columns: []string{},
		Total:   decimal.Zero,
	}
	for _, row := range rows {
		minutes, ok := recordMinutes(lookup(row, f.TimeColumn))
		if !ok || !tr.Contains(minutes) {
			continue
		}
		res.Rows = append(res.Rows, row)
		res.Total = res.Total.Add(amount(lookup(row, f.AmountColumn)))
	}
	if len(res.Rows) > 0 {
		res.Columns = res.Rows[0].Keys()
	}
	return res
}

// recordMinutes разбирает "HH:MM:SS"; секунды только проверяются.
func recordMinutes(c model.Cell) (int, bool) {
	if c.IsBlank() {
		return 0, false
	}
	parts := strings.Split(strings.TrimSpace(c.String()), ":")
	if len(parts) < 3 {
		return 0, false
	}
	var hms [3]int
	for i := range hms {
		p := strings.TrimSpace(parts[i])
		if p == "" {
			return 0, false
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, false
		}
		hms[i] = n
	}
	return hms[0]*60 + hms[1], true
}

// amount — best-effort: всё, что не число, даёт 0.
func amount(c model.Cell) decimal.Decimal {
	switch c.Kind {
	case model.KindNumber:
		if math.IsNaN(c.Num) || math.IsInf(c.Num, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(c.Num)
	case model.KindText:
		if d, err := decimal.NewFromString(strings.TrimSpace(c.Text)); err == nil {
			return d
		}
	}
	return decimal.Zero
}
