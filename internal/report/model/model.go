package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Grid — лист как есть, построчно, индексы с 0.
type Grid [][]Cell

// At возвращает пустую ячейку за пределами листа.
func (g Grid) At(r, c int) Cell {
	if r < 0 || r >= len(g) || c < 0 || c >= len(g[r]) {
		return Empty()
	}
	return g[r][c]
}

type Field string

const (
	FieldChain      Field = "chain"
	FieldStation    Field = "station"
	FieldReportType Field = "reportType"
	FieldFromDate   Field = "fromDate"
	FieldToDate     Field = "toDate"
	FieldTotalMoney Field = "totalMoney"
	FieldTotalLit   Field = "totalLit"
)

// FieldSpec — где в листе лежит поле шапки отчёта (0-based).
type FieldSpec struct {
	Field Field
	Row   int
	Col   int
}

// Layout описывает раскладку отчёта: координаты полей шапки и строку заголовков таблицы.
type Layout struct {
	HeaderRow int
	Fields    []FieldSpec
}

// DefaultLayout — раскладка выгрузки "Báo cáo" станции.
func DefaultLayout() Layout {
	return Layout{
		HeaderRow: 7,
		Fields: []FieldSpec{
			{FieldChain, 2, 1},
			{FieldStation, 2, 4},
			{FieldReportType, 3, 1},
			{FieldFromDate, 4, 1},
			{FieldToDate, 4, 4},
			{FieldTotalMoney, 5, 1},
			{FieldTotalLit, 5, 4},
		},
	}
}

type Metadata struct {
	Chain      *string `json:"chain"`
	Station    *string `json:"station"`
	ReportType *string `json:"reportType"`
	FromDate   *string `json:"fromDate"`
	ToDate     *string `json:"toDate"`
	TotalMoney *string `json:"totalMoney"`
	TotalLit   *string `json:"totalLit"`
}

// Set пишет значение поля; неизвестные поля игнорируются.
func (m *Metadata) Set(f Field, v *string) {
	switch f {
	case FieldChain:
		m.Chain = v
	case FieldStation:
		m.Station = v
	case FieldReportType:
		m.ReportType = v
	case FieldFromDate:
		m.FromDate = v
	case FieldToDate:
		m.ToDate = v
	case FieldTotalMoney:
		m.TotalMoney = v
	case FieldTotalLit:
		m.TotalLit = v
	}
}

// Day — дата из "fromDate" без времени ("01/09/2025 00:00:00" -> "01/09/2025").
func (m Metadata) Day() string {
	if m.FromDate == nil {
		return ""
	}
	d, _, _ := strings.Cut(*m.FromDate, " ")
	return d
}

// TimeRange — окно [From, To) в минутах от полуночи; nil = без границы.
type TimeRange struct {
	From *int
	To   *int
}

// Contains: нижняя граница включительно, верхняя — нет.
func (tr TimeRange) Contains(minutes int) bool {
	if tr.From != nil && minutes < *tr.From {
		return false
	}
	if tr.To != nil && minutes >= *tr.To {
		return false
	}
	return true
}

// ParseClock принимает "HH:MM" или "HH:MM:SS" и возвращает минуты от полуночи.
func ParseClock(s string) (int, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour()*60 + t.Minute(), nil
		}
	}
	return 0, fmt.Errorf("invalid clock %q: want HH:MM or HH:MM:SS", s)
}

// ParseTimeRange — обе границы необязательны, пустая строка = без границы.
func ParseTimeRange(from, to string) (TimeRange, error) {
	var tr TimeRange
	if strings.TrimSpace(from) != "" {
		m, err := ParseClock(from)
		if err != nil {
			return tr, fmt.Errorf("from: %w", err)
		}
		tr.From = &m
	}
	if strings.TrimSpace(to) != "" {
		m, err := ParseClock(to)
		if err != nil {
			return tr, fmt.Errorf("to: %w", err)
		}
		tr.To = &m
	}
	return tr, nil
}

type Report struct {
	Sheet    string   `json:"sheet"`
	Metadata Metadata `json:"metadata"`
	Rows     []Row    `json:"rows"`
}

type FilteredResult struct {
	Rows    []Row           `json:"rows"`
	Columns []string        `json:"columns"`
	Total   decimal.Decimal `json:"total"`
}
