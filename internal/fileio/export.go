package fileio

import (
	"encoding/csv"
	"io"

	excelize "github.com/xuri/excelize/v2"

	"station-report/internal/report/model"
)

const (
	exportSheet = "Báo cáo"
	totalLabel  = "Tổng cộng"
)

// WriteXLSX выгружает отфильтрованные строки: заголовки, строки, итог в колонке суммы.
func WriteXLSX(w io.Writer, res model.FilteredResult, amountColumn string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return err
	}

	header := make([]any, len(res.Columns))
	for i, c := range res.Columns {
		header[i] = c
	}
	if err := setRow(f, 1, header); err != nil {
		return err
	}

	for i, row := range res.Rows {
		vals := make([]any, len(res.Columns))
		for j, col := range res.Columns {
			c := row.Cell(col)
			switch c.Kind {
			case model.KindNumber:
				vals[j] = c.Num
			case model.KindText:
				vals[j] = c.Text
			default:
				vals[j] = nil
			}
		}
		if err := setRow(f, i+2, vals); err != nil {
			return err
		}
	}

	if len(res.Columns) > 0 {
		totals := make([]any, len(res.Columns))
		totals[0] = totalLabel
		for j, col := range res.Columns {
			if col == amountColumn {
				totals[j] = res.Total.InexactFloat64()
			}
		}
		if err := setRow(f, len(res.Rows)+2, totals); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func setRow(f *excelize.File, n int, vals []any) error {
	axis, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	return f.SetSheetRow(exportSheet, axis, &vals)
}

// WriteCSV — то же в CSV (UTF-8 с BOM, чтобы Excel правильно открыл диакритику).
func WriteCSV(w io.Writer, res model.FilteredResult, amountColumn string) error {
	if _, err := w.Write([]byte("\xEF\xBB\xBF")); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(res.Columns); err != nil {
		return err
	}
	for _, row := range res.Rows {
		rec := make([]string, len(res.Columns))
		for j, col := range res.Columns {
			rec[j] = row.Cell(col).String()
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	if len(res.Columns) > 0 {
		rec := make([]string, len(res.Columns))
		rec[0] = totalLabel
		for j, col := range res.Columns {
			if col == amountColumn {
				rec[j] = res.Total.String()
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
