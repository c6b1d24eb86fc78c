package model

import (
	"bytes"
	"encoding/json"
)

// Row — запись таблицы: заголовок -> ячейка. Порядок ключей — порядок первого появления
// заголовка; повторная запись того же ключа перезаписывает значение.
type Row struct {
	keys []string
	vals map[string]Cell
}

func NewRow(capacity int) Row {
	return Row{keys: make([]string, 0, capacity), vals: make(map[string]Cell, capacity)}
}

func (r *Row) Set(key string, c Cell) {
	if r.vals == nil {
		r.vals = make(map[string]Cell)
	}
	if _, ok := r.vals[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.vals[key] = c
}

func (r Row) Get(key string) (Cell, bool) {
	c, ok := r.vals[key]
	return c, ok
}

// Cell — как Get, но отсутствующий ключ даёт пустую ячейку.
func (r Row) Cell(key string) Cell {
	return r.vals[key]
}

func (r Row) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

func (r Row) Len() int { return len(r.keys) }

func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := r.vals[k].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
