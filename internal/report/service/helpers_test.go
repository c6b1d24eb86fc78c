package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"

	"station-report/internal/report/model"
)

var sampleHeader = []any{"Giờ", "Số lượng", "Thành tiền (VNĐ)"}

var sampleData = [][]any{
	{"08:15:00", 10, 100000},
	{"09:05:30", 5, 50000},
	{"10:00:00", 3, 30000},
}

// buildReport пишет книгу в раскладке отчёта: шапка в строках 3-6, заголовки в строке 8.
func buildReport(t *testing.T, meta map[string]any, header []any, data [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	require.NoError(t, f.SetCellValue(sheet, "A1", "BÁO CÁO BÁN HÀNG"))
	for axis, v := range meta {
		require.NoError(t, f.SetCellValue(sheet, axis, v))
	}
	if header != nil {
		require.NoError(t, f.SetSheetRow(sheet, "A8", &header))
	}
	for i, row := range data {
		axis, err := excelize.CoordinatesToCellName(1, 9+i)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, axis, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func sampleMeta() map[string]any {
	return map[string]any{
		"B3": "Petrolimex",
		"E3": "Trạm 01",
		"B4": "Báo cáo bán hàng theo giờ",
		"B5": "01/09/2025 00:00:00",
		"E5": "01/09/2025 23:59:59",
		"B6": 180000,
		"E6": "18 lít",
	}
}

func rowOf(headers []string, cells ...model.Cell) model.Row {
	r := model.NewRow(len(headers))
	for i, h := range headers {
		var c model.Cell
		if i < len(cells) {
			c = cells[i]
		}
		r.Set(h, c)
	}
	return r
}

func ptr(i int) *int { return &i }
