package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/render"

	"station-report/internal/report/service"
)

var errNoFile = errors.New("missing file")

func (h *Handler) readFile(r *http.Request) (string, []byte, error) {
	if err := r.ParseMultipartForm(h.maxMemory); err != nil {
		return "", nil, fmt.Errorf("bad multipart form: %w", err)
	}
	f, hdr, err := r.FormFile("file")
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", errNoFile, err)
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return "", nil, err
	}
	return hdr.Filename, b, nil
}

func (h *Handler) readFiles(r *http.Request) ([]service.Upload, error) {
	if err := r.ParseMultipartForm(h.maxMemory); err != nil {
		return nil, fmt.Errorf("bad multipart form: %w", err)
	}
	hdrs := r.MultipartForm.File["files"]
	if len(hdrs) == 0 {
		return nil, fmt.Errorf("%w: no \"files\" parts", errNoFile)
	}
	out := make([]service.Upload, 0, len(hdrs))
	for _, hdr := range hdrs {
		f, err := hdr.Open()
		if err != nil {
			return nil, err
		}
		b, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		out = append(out, service.Upload{Name: hdr.Filename, Data: b})
	}
	return out, nil
}

func writeUploadError(w http.ResponseWriter, r *http.Request, err error) {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		writeError(w, r, http.StatusRequestEntityTooLarge, err)
		return
	}
	writeError(w, r, http.StatusBadRequest, err)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	w.Header().Set("Cache-Control", "no-store")
	render.Status(r, status)
	render.JSON(w, r, map[string]string{"error": err.Error()})
}
