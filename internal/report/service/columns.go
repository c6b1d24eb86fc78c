package service

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"station-report/internal/report/model"
)

var reNonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// normHeaderKey: NFC (выгрузки бывают в NFD), нижний регистр, NBSP/знаки -> пробел, схлопнуть пробелы.
func normHeaderKey(s string) string {
	s = norm.NFC.String(s)
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("\u00A0", " ", "\u202F", " ").Replace(s)
	s = reNonWord.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// lookup ищет колонку сначала точно, потом по нормализованному имени.
func lookup(row model.Row, want string) model.Cell {
	if c, ok := row.Get(want); ok {
		return c
	}
	n := normHeaderKey(want)
	if n == "" {
		return model.Empty()
	}
	for _, k := range row.Keys() {
		if normHeaderKey(k) == n {
			return row.Cell(k)
		}
	}
	return model.Empty()
}
