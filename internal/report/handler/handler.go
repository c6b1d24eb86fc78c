package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"station-report/internal/fileio"
	"station-report/internal/report/model"
	"station-report/internal/report/service"
	"station-report/internal/report/store"
	"station-report/internal/utils"
)

type Handler struct {
	extractor    *service.Extractor
	filter       service.Filter
	store        *store.Store
	batchWorkers int
	maxMemory    int64
	logger       zerolog.Logger
	extracts     *prometheus.CounterVec
}

type Options struct {
	Extractor    *service.Extractor
	Filter       service.Filter
	Store        *store.Store
	BatchWorkers int
	MaxMemory    int64 // сколько multipart держать в памяти, остальное — во временные файлы
	Logger       zerolog.Logger
	Registerer   prometheus.Registerer
}

func New(o Options) *Handler {
	h := &Handler{
		extractor:    o.Extractor,
		filter:       o.Filter,
		store:        o.Store,
		batchWorkers: o.BatchWorkers,
		maxMemory:    o.MaxMemory,
		logger:       o.Logger,
		extracts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "station_report_extract_total",
			Help: "Workbook extractions by result.",
		}, []string{"result"}),
	}
	if h.maxMemory <= 0 {
		h.maxMemory = 32 << 20
	}
	if o.Registerer != nil {
		o.Registerer.MustRegister(h.extracts)
	}
	return h
}

// Routes монтируется под /reports.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Upload)
	r.Post("/batch", h.Batch)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Replace)
		r.Delete("/", h.Delete)
		r.Get("/rows", h.Rows)
		r.Get("/export", h.Export)
	})
	return r
}

type reportResponse struct {
	ID       string         `json:"id"`
	Sheet    string         `json:"sheet"`
	Day      string         `json:"day"`
	Metadata model.Metadata `json:"metadata"`
	RowCount int            `json:"rowCount"`
	Rows     []model.Row    `json:"rows"`
}

func newReportResponse(id string, rep model.Report) reportResponse {
	return reportResponse{
		ID:       id,
		Sheet:    rep.Sheet,
		Day:      rep.Metadata.Day(),
		Metadata: rep.Metadata,
		RowCount: len(rep.Rows),
		Rows:     rep.Rows,
	}
}

type rowsResponse struct {
	ID             string      `json:"id"`
	Count          int         `json:"count"`
	Columns        []string    `json:"columns"`
	Rows           []model.Row `json:"rows"`
	Total          json.Number `json:"total"`
	TotalFormatted string      `json:"totalFormatted"`
}

// Upload — POST /reports, multipart поле "file".
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	log := h.log(r)

	name, data, err := h.readFile(r)
	if err != nil {
		writeUploadError(w, r, err)
		return
	}
	rep, err := h.extract(name, data)
	if err != nil {
		log.Warn().Err(err).Str("file", name).Msg("extract failed")
		writeError(w, r, http.StatusUnprocessableEntity, err)
		return
	}
	id := h.store.Put(rep)

	log.Info().
		Str("id", id).
		Str("file", name).
		Int("rows", len(rep.Rows)).
		Dur("elapsed", time.Since(start)).
		Msg("report loaded")

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, newReportResponse(id, rep))
}

// Replace — PUT /reports/{id}: при ошибке разбора прежний отчёт остаётся.
func (h *Handler) Replace(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	log := h.log(r)

	if _, err := h.store.Get(id); err != nil {
		writeError(w, r, http.StatusNotFound, err)
		return
	}
	name, data, err := h.readFile(r)
	if err != nil {
		writeUploadError(w, r, err)
		return
	}
	rep, err := h.store.Replace(id, func() (model.Report, error) {
		return h.extract(name, data)
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, r, http.StatusNotFound, err)
		return
	case err != nil:
		log.Warn().Err(err).Str("id", id).Str("file", name).Msg("replace failed, previous report kept")
		writeError(w, r, http.StatusUnprocessableEntity, err)
		return
	}
	log.Info().Str("id", id).Str("file", name).Int("rows", len(rep.Rows)).Msg("report replaced")
	render.JSON(w, r, newReportResponse(id, rep))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rep, err := h.store.Get(id)
	if err != nil {
		writeError(w, r, http.StatusNotFound, err)
		return
	}
	render.JSON(w, r, newReportResponse(id, rep))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.store.Delete(chi.URLParam(r, "id")) {
		writeError(w, r, http.StatusNotFound, store.ErrNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Rows — GET /reports/{id}/rows?from=HH:MM&to=HH:MM.
func (h *Handler) Rows(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res, ok := h.filtered(w, r, id)
	if !ok {
		return
	}
	render.JSON(w, r, rowsResponse{
		ID:             id,
		Count:          len(res.Rows),
		Columns:        res.Columns,
		Rows:           res.Rows,
		Total:          json.Number(res.Total.String()),
		TotalFormatted: utils.FormatVND(res.Total),
	})
}

// Export — GET /reports/{id}/export?format=xlsx|csv&from=&to=.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}
	if format != "xlsx" && format != "csv" {
		writeError(w, r, http.StatusBadRequest, errors.New("format must be xlsx or csv"))
		return
	}
	res, ok := h.filtered(w, r, id)
	if !ok {
		return
	}

	var err error
	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="report.csv"`)
		err = fileio.WriteCSV(w, res, h.filter.AmountColumn)
	default:
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="report.xlsx"`)
		err = fileio.WriteXLSX(w, res, h.filter.AmountColumn)
	}
	if err != nil {
		h.log(r).Error().Err(err).Str("id", id).Str("format", format).Msg("export")
	}
}

type batchItem struct {
	Name     string          `json:"name"`
	ID       string          `json:"id,omitempty"`
	RowCount int             `json:"rowCount"`
	Metadata *model.Metadata `json:"metadata,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// Batch — POST /reports/batch, повторяющееся поле "files"; файлы разбираются параллельно.
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	log := h.log(r)
	uploads, err := h.readFiles(r)
	if err != nil {
		writeUploadError(w, r, err)
		return
	}

	outcomes := h.extractor.ExtractAll(r.Context(), uploads, h.batchWorkers)
	items := make([]batchItem, len(outcomes))
	failed := 0
	for i, o := range outcomes {
		items[i].Name = o.Name
		if o.Err != nil {
			h.countExtract(o.Err)
			items[i].Error = o.Err.Error()
			failed++
			continue
		}
		h.countExtract(nil)
		md := o.Report.Metadata
		items[i].ID = h.store.Put(o.Report)
		items[i].RowCount = len(o.Report.Rows)
		items[i].Metadata = &md
	}
	log.Info().Int("files", len(items)).Int("failed", failed).Msg("batch extracted")
	render.JSON(w, r, map[string]any{"items": items})
}

func (h *Handler) extract(name string, data []byte) (model.Report, error) {
	rep, err := h.extractor.Extract(data)
	var pe *service.ParseError
	if errors.As(err, &pe) {
		pe.Name = name
	}
	h.countExtract(err)
	return rep, err
}

// log — логгер запроса из middleware.Logging, без него — логгер сервиса.
func (h *Handler) log(r *http.Request) *zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &h.logger
}

func (h *Handler) countExtract(err error) {
	if err != nil {
		h.extracts.WithLabelValues("parse_error").Inc()
		return
	}
	h.extracts.WithLabelValues("ok").Inc()
}

func (h *Handler) filtered(w http.ResponseWriter, r *http.Request, id string) (model.FilteredResult, bool) {
	tr, err := model.ParseTimeRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return model.FilteredResult{}, false
	}
	rep, err := h.store.Get(id)
	if err != nil {
		writeError(w, r, http.StatusNotFound, err)
		return model.FilteredResult{}, false
	}
	return h.filter.Apply(rep.Rows, tr), true
}
