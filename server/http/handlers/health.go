package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/render"
)

func Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
