package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type Kind uint8

const (
	KindEmpty Kind = iota
	KindText
	KindNumber
)

// Cell — значение ячейки как пришло из декодера: пусто, текст или число.
// У числовой ячейки Text хранит отображаемое (отформатированное) значение.
type Cell struct {
	Kind Kind
	Text string
	Num  float64
}

func Empty() Cell { return Cell{} }
func Text(s string) Cell { return Cell{Kind: KindText, Text: s} }
func Number(f float64) Cell { return Cell{Kind: KindNumber, Num: f} }
func NumberText(f float64, display string) Cell {
	return Cell{Kind: KindNumber, Num: f, Text: display}
}

// IsBlank — единственный предикат «значения нет»: пустая ячейка или текст из одних пробелов.
// Число (в том числе 0) пустым не считается.
func (c Cell) IsBlank() bool {
	switch c.Kind {
	case KindNumber:
		return false
	case KindText:
		return strings.TrimSpace(c.Text) == ""
	default:
		return true
	}
}

// String — текст для отображения; для пустой ячейки "".
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		if c.Text != "" {
			return c.Text
		}
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	default:
		return ""
	}
}

func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case KindText:
		return json.Marshal(c.Text)
	case KindNumber:
		if math.IsNaN(c.Num) || math.IsInf(c.Num, 0) {
			return json.Marshal(c.String())
		}
		return json.Marshal(c.Num)
	default:
		return []byte("null"), nil
	}
}

func (c *Cell) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*c = Empty()
	case float64:
		*c = Number(t)
	case string:
		*c = Text(t)
	default:
		*c = Text(string(b))
	}
	return nil
}
