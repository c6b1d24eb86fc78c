package handler

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/go-chi/render"
	"github.com/rs/zerolog"

	"station-report/internal/transaction/model"
	"station-report/internal/transaction/service"
)

// Create — POST /transactions, JSON или обычная форма.
func Create(v *service.Validator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := zerolog.Ctx(r.Context())

		in, err := decodeInput(r)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"error": err.Error()})
			return
		}

		tx, err := v.Validate(in)
		var ferrs model.FieldErrors
		switch {
		case errors.As(err, &ferrs):
			log.Debug().Interface("errors", ferrs).Msg("transaction rejected")
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, map[string]any{"errors": ferrs})
			return
		case err != nil:
			log.Error().Err(err).Msg("validate transaction")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"error": "internal"})
			return
		}

		log.Info().Str("station", tx.Station).Str("time", tx.Time).Msg("transaction accepted")
		render.JSON(w, r, map[string]any{
			"message":     service.SuccessMessage,
			"transaction": tx,
		})
	}
}

func decodeInput(r *http.Request) (model.Input, error) {
	var in model.Input
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		err := json.NewDecoder(r.Body).Decode(&in)
		return in, err
	}
	if err := r.ParseForm(); err != nil {
		return in, err
	}
	in = model.Input{
		Time:     model.Value(r.PostForm.Get("time")),
		Quantity: model.Value(r.PostForm.Get("quantity")),
		Station:  model.Value(r.PostForm.Get("station")),
		Revenue:  model.Value(r.PostForm.Get("revenue")),
		Price:    model.Value(r.PostForm.Get("price")),
	}
	return in, nil
}
