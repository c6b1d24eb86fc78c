package service

import (
	"station-report/internal/fileio"
	"station-report/internal/report/model"
)

type Extractor struct {
	layout  model.Layout
	decoder fileio.Decoder
}

func NewExtractor(layout model.Layout, dec fileio.Decoder) *Extractor {
	if dec == nil {
		dec = fileio.Default
	}
	return &Extractor{layout: layout, decoder: dec}
}

// Extract — первый лист книги в шапку отчёта и строки таблицы.
func (e *Extractor) Extract(b []byte) (model.Report, error) {
	sheet, err := e.decoder.Decode(b)
	if err != nil {
		return model.Report{}, &ParseError{Err: err}
	}
	return model.Report{
		Sheet:    sheet.Name,
		Metadata: e.Metadata(sheet.Grid),
		Rows:     e.Rows(sheet.Grid),
	}, nil
}

// Metadata читает поля шапки по таблице координат; пусто или вне листа -> nil.
func (e *Extractor) Metadata(g model.Grid) model.Metadata {
	var m model.Metadata
	for _, fs := range e.layout.Fields {
		c := g.At(fs.Row, fs.Col)
		if c.IsBlank() {
			continue
		}
		v := c.String()
		m.Set(fs.Field, &v)
	}
	return m
}

// Rows — всё, что ниже строки заголовков. Короткая строка добивается пустыми ячейками,
// лишние ячейки без заголовка отбрасываются.
func (e *Extractor) Rows(g model.Grid) []model.Row {
	h := e.layout.HeaderRow
	if h < 0 || h >= len(g) {
		return []model.Row{}
	}
	headers := make([]string, len(g[h]))
	for i, c := range g[h] {
		headers[i] = c.String()
	}

	out := make([]model.Row, 0, len(g)-h-1)
	for r := h + 1; r < len(g); r++ {
		rec := g[r]
		row := model.NewRow(len(headers))
		for i, key := range headers {
			var c model.Cell
			if i < len(rec) {
				c = rec[i]
			}
			row.Set(key, c)
		}
		out = append(out, row)
	}
	return out
}
