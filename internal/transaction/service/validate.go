package service

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"station-report/internal/transaction/model"
)

const SuccessMessage = "Cập nhật thành công!"

const tagNumber = "number"

// сообщения по полю и правилу; "number" — значение не число.
var messages = map[string]map[string]string{
	"time": {
		"required": "Vui lòng nhập thời gian",
		"datetime": "Thời gian không hợp lệ",
	},
	"quantity": {
		"required": "Vui lòng nhập số lượng",
		tagNumber:  "Số lượng phải là số",
		"gt":       "Số lượng phải > 0",
	},
	"station": {
		"required": "Vui lòng chọn trụ",
		"oneof":    "Trụ không hợp lệ",
	},
	"revenue": {
		"required": "Vui lòng nhập doanh thu",
		tagNumber:  "Doanh thu phải là số",
		"gte":      "Doanh thu không được âm",
	},
	"price": {
		"required": "Vui lòng nhập đơn giá",
		tagNumber:  "Đơn giá phải là số",
		"gte":      "Đơn giá không được âm",
	},
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

// Validate проверяет все поля сразу (без остановки на первой ошибке).
// Ошибки возвращаются как model.FieldErrors.
func (v *Validator) Validate(in model.Input) (model.Transaction, error) {
	errs := model.FieldErrors{}
	tx := model.Transaction{
		Time:     strings.TrimSpace(string(in.Time)),
		Station:  strings.TrimSpace(string(in.Station)),
		Quantity: parseNumber(errs, "quantity", in.Quantity),
		Revenue:  parseNumber(errs, "revenue", in.Revenue),
		Price:    parseNumber(errs, "price", in.Price),
	}

	if err := v.v.Struct(tx); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return model.Transaction{}, err
		}
		for _, fe := range verrs {
			field := fe.Field()
			if _, seen := errs[field]; seen {
				continue
			}
			errs[field] = message(field, fe.Tag())
		}
	}
	if len(errs) > 0 {
		return model.Transaction{}, errs
	}
	return tx, nil
}

// parseNumber: пусто -> nil (сработает required), не число -> сообщение и nil.
func parseNumber(errs model.FieldErrors, field string, raw model.Value) *float64 {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		errs[field] = message(field, tagNumber)
		return nil
	}
	return &f
}

func message(field, tag string) string {
	if m, ok := messages[field][tag]; ok {
		return m
	}
	return field + " is invalid"
}
