package fileio

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"station-report/internal/report/model"
)

var (
	ErrUnsupported = errors.New("unsupported file format")
	ErrNoSheets    = errors.New("workbook has no sheets")
)

var (
	magicZIP = []byte("PK\x03\x04")
	magicOLE = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// Sheet — первый лист книги.
type Sheet struct {
	Name string
	Grid model.Grid
}

// Decode — выберет парсер по сигнатуре файла (xlsx = zip, xls = OLE2) и вернёт первый лист.
func Decode(b []byte) (Sheet, error) {
	switch {
	case bytes.HasPrefix(b, magicZIP):
		return readXLSX(b)
	case bytes.HasPrefix(b, magicOLE):
		return readXLS(b)
	case len(b) == 0:
		return Sheet{}, fmt.Errorf("%w: empty buffer", ErrUnsupported)
	default:
		return Sheet{}, ErrUnsupported
	}
}

// Decoder — то же, что Decode, в виде интерфейса для внедрения в сервис.
type Decoder interface {
	Decode(b []byte) (Sheet, error)
}

type DecoderFunc func(b []byte) (Sheet, error)

func (f DecoderFunc) Decode(b []byte) (Sheet, error) { return f(b) }

// Default — декодер по сигнатуре.
var Default Decoder = DecoderFunc(Decode)

// textCell — для форматов, где декодер отдаёт только строки: число распознаём по тексту.
func textCell(s string) model.Cell {
	if s == "" {
		return model.Empty()
	}
	if f, ok := finiteFloat(strings.TrimSpace(s)); ok {
		return model.NumberText(f, s)
	}
	return model.Text(s)
}

// finiteFloat: ParseFloat понимает "NaN" и "Inf", такие строки числом не считаем.
func finiteFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
