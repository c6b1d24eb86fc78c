// Парсер .xls: фиксируем ширину таблицы сами и читаем все ячейки до неё.
package fileio

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	xls "github.com/extrame/xls"

	"station-report/internal/report/model"
)

// вычисляем "реальную" ширину: пробегаем разумное число колонок и ищем непустые
func computeMaxCols(sheet *xls.WorkSheet) int {
	const probeMax = 256
	maxCols := 0
	for i := 0; i <= int(sheet.MaxRow); i++ {
		r := sheetRow(sheet, i)
		if r == nil {
			continue
		}
		for j := maxCols; j < probeMax; j++ {
			if strings.TrimSpace(r.Col(j)) != "" {
				maxCols = j + 1
			}
		}
	}
	return maxCols
}

func readXLS(b []byte) (sh Sheet, err error) {
	// extrame/xls паникует на битых BIFF-записях
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("xls: corrupt workbook: %v", rec)
		}
	}()

	// старые выгрузки бывают в cp1258, новые — в UTF-16/UTF-8
	var wb *xls.WorkBook
	tryCharsets := []string{"utf-8", "windows-1258"}
	var lastErr error
	for _, ch := range tryCharsets {
		wb, err = xls.OpenReader(bytes.NewReader(b), ch)
		if err == nil && wb != nil {
			lastErr = nil
			break
		}
		lastErr = err
	}
	if wb == nil {
		if lastErr == nil {
			lastErr = errors.New("xls: failed to open workbook")
		}
		return Sheet{}, lastErr
	}

	if wb.NumSheets() == 0 {
		return Sheet{}, ErrNoSheets
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return Sheet{}, ErrNoSheets
	}

	maxCols := computeMaxCols(sheet)
	grid := make(model.Grid, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheetRow(sheet, i)
		var cells []model.Cell
		if row != nil {
			cells = make([]model.Cell, maxCols)
			for j := 0; j < maxCols; j++ {
				cells[j] = textCell(row.Col(j))
			}
			cells = trimTrailingEmpty(cells)
		}
		grid = append(grid, cells)
	}
	// как и excelize, не отдаём хвост из пустых строк
	for len(grid) > 0 && len(grid[len(grid)-1]) == 0 {
		grid = grid[:len(grid)-1]
	}
	return Sheet{Name: sheet.Name, Grid: grid}, nil
}

// sheetRow: WorkSheet.Row падает на строке без записей (пустая строка листа), отдаём nil.
func sheetRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

func trimTrailingEmpty(cells []model.Cell) []model.Cell {
	n := len(cells)
	for n > 0 && cells[n-1].Kind == model.KindEmpty {
		n--
	}
	return cells[:n]
}
