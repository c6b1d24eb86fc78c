package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"station-report/internal/config"
	"station-report/internal/report/store"
	serverhttp "station-report/server/http"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := config.SetupLogger(cfg)

			st := store.New(cfg.CacheSize, cfg.CacheTTL)
			r := serverhttp.NewRouter(cfg, logger, st, prometheus.NewRegistry())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// просроченные отчёты чистим в фоне
			go func() {
				t := time.NewTicker(time.Minute)
				defer t.Stop()
				for {
					select {
					case <-t.C:
						if n := st.CleanExpired(); n > 0 {
							logger.Debug().Int("removed", n).Msg("expired reports")
						}
					case <-ctx.Done():
						return
					}
				}
			}()

			srv := &http.Server{Addr: cfg.Addr(), Handler: r, ReadHeaderTimeout: 10 * time.Second}
			logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

			errCh := make(chan error, 1)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					logger.Error().Err(err).Msg("listen")
					return err
				}
			case <-ctx.Done():
			}

			// graceful shutdown
			logger.Info().Msg("server shutting down")
			shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = srv.Shutdown(shCtx)
			logger.Info().Msg("bye")
			return nil
		},
	}
}
