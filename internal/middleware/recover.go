package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/render"
	"github.com/rs/zerolog"
)

// Recover превращает панику обработчика в 500 с JSON-телом.
// http.ErrAbortHandler пробрасывается дальше: это штатный обрыв ответа.
func Recover(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				logger.Error().
					Str("rid", GetRequestID(r)).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Msg("handler panic")

				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, map[string]string{"error": "internal"})
			}()
			next.ServeHTTP(w, r)
		})
	}
}
