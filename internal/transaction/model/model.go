package model

import (
	"bytes"
	"encoding/json"
)

// Value — поле формы: input'ы присылают текст, JSON-клиенты — числа; храним как текст.
// Прочие JSON-значения (true, {...}, [...]) сохраняются сырым токеном, их отвергает валидатор поля.
type Value string

func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*v = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = Value(s)
	default:
		*v = Value(b)
	}
	return nil
}

// Input — поля формы как пришли от клиента.
type Input struct {
	Time     Value `json:"time"`
	Quantity Value `json:"quantity"`
	Station  Value `json:"station"`
	Revenue  Value `json:"revenue"`
	Price    Value `json:"price"`
}

// Transaction — провалидированная запись.
type Transaction struct {
	Time     string   `json:"time" validate:"required,datetime=2006-01-02 15:04:05"`
	Quantity *float64 `json:"quantity" validate:"required,gt=0"`
	Station  string   `json:"station" validate:"required,oneof=1 2 3"`
	Revenue  *float64 `json:"revenue" validate:"required,gte=0"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
}

// FieldErrors — поле -> сообщение; на поле одно сообщение.
type FieldErrors map[string]string

func (e FieldErrors) Error() string { return "transaction is invalid" }
