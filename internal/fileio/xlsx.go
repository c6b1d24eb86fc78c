package fileio

import (
	"bytes"
	"fmt"

	excelize "github.com/xuri/excelize/v2"

	"station-report/internal/report/model"
)

func readXLSX(b []byte) (Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return Sheet{}, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Sheet{}, ErrNoSheets
	}
	name := sheets[0]

	shown, err := f.GetRows(name)
	if err != nil {
		return Sheet{}, err
	}
	raw, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return Sheet{}, err
	}

	grid := make(model.Grid, len(shown))
	for r, row := range shown {
		cells := make([]model.Cell, len(row))
		for c, display := range row {
			rawVal := display
			if r < len(raw) && c < len(raw[r]) {
				rawVal = raw[r][c]
			}
			cell, err := xlsxCell(f, name, r, c, display, rawVal)
			if err != nil {
				return Sheet{}, err
			}
			cells[c] = cell
		}
		grid[r] = cells
	}
	return Sheet{Name: name, Grid: grid}, nil
}

// xlsxCell: число — только если excelize не считает ячейку строкой и сырое значение парсится.
func xlsxCell(f *excelize.File, sheet string, r, c int, display, raw string) (model.Cell, error) {
	if display == "" && raw == "" {
		return model.Empty(), nil
	}
	axis, err := excelize.CoordinatesToCellName(c+1, r+1)
	if err != nil {
		return model.Cell{}, err
	}
	typ, err := f.GetCellType(sheet, axis)
	if err != nil {
		return model.Cell{}, fmt.Errorf("cell %s: %w", axis, err)
	}
	switch typ {
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		if v, ok := finiteFloat(raw); ok {
			return model.NumberText(v, display), nil
		}
	}
	return model.Text(display), nil
}
