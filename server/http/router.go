package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"station-report/internal/config"
	"station-report/internal/middleware"
	repHnd "station-report/internal/report/handler"
	repSvc "station-report/internal/report/service"
	"station-report/internal/report/store"
	txHnd "station-report/internal/transaction/handler"
	txSvc "station-report/internal/transaction/service"
	"station-report/server/http/handlers"
)

// NewRouter собирает сервис; reg — свой реестр метрик (тесты создают новый на каждый роутер).
func NewRouter(cfg config.Config, logger zerolog.Logger, st *store.Store, reg *prometheus.Registry) *chi.Mux {
	r := chi.NewRouter()

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewHTTPMetrics(reg)

	// порядок важен: recover -> requestID -> logging -> metrics -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(metrics.Handler)
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", handlers.Health)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	reports := repHnd.New(repHnd.Options{
		Extractor:    repSvc.NewExtractor(cfg.Layout(), nil),
		Filter:       repSvc.NewFilter(cfg.TimeColumn, cfg.AmountColumn),
		Store:        st,
		BatchWorkers: cfg.BatchWorkers,
		MaxMemory:    int64(cfg.MaxUploadMB) * 1024 * 1024,
		Logger:       logger,
		Registerer:   reg,
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateRPS, cfg.RateBurst, logger))
		r.Mount("/reports", reports.Routes())
		r.Post("/transactions", txHnd.Create(txSvc.New()))
	})

	return r
}
