// AI Solutions Dashboard - Web Access Log Analytics and Sales Insights
// Copyright 2026 THB213
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/THB213/AI-Solutions-Dashboard

// Command server runs the dashboard backend: it accepts access-log
// uploads and serves the analytics endpoints the dashboard frontend
// renders.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/THB213/AI-Solutions-Dashboard/internal/analytics"
	"github.com/THB213/AI-Solutions-Dashboard/internal/api"
	"github.com/THB213/AI-Solutions-Dashboard/internal/catalog"
	"github.com/THB213/AI-Solutions-Dashboard/internal/config"
	"github.com/THB213/AI-Solutions-Dashboard/internal/geo"
	"github.com/THB213/AI-Solutions-Dashboard/internal/ingest"
	"github.com/THB213/AI-Solutions-Dashboard/internal/logging"
	"github.com/THB213/AI-Solutions-Dashboard/internal/logparse"
	"github.com/THB213/AI-Solutions-Dashboard/internal/referrer"
	"github.com/THB213/AI-Solutions-Dashboard/internal/store"
)

// version is set at build time via -ldflags.
var version = "dev"

// shutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Int("port", cfg.Server.Port).
		Msg("Starting AI Solutions Dashboard")

	recordStore := store.New()
	ingestor := ingest.New(logparse.New(), recordStore, cfg.Ingest.MaxLineBytes)
	engine := analytics.New(
		recordStore,
		geo.New(cfg.GeoRules()),
		referrer.New(),
		catalog.NewCatalog(cfg.Products()),
		catalog.NewDirectory(cfg.EmployeeList()),
		cfg.Analytics,
	)

	handler := api.NewHandler(engine, ingestor, recordStore, cfg, version)
	mw := api.NewChiMiddleware(&api.ChiMiddlewareConfig{
		CORSAllowedOrigins: cfg.API.CORSOrigins,
		CORSAllowedMethods: []string{"GET", "POST", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		CORSMaxAge:         86400,
		RateLimitRequests:  cfg.API.RateLimitReqs,
		RateLimitWindow:    cfg.API.RateLimitWindow,
		RateLimitDisabled:  cfg.API.RateLimitDisabled,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      api.NewRouter(handler, mw).Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logging.Info().Str("signal", sig.String()).Msg("Shutting down")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server failed")
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
		os.Exit(1)
	}
	logging.Info().Msg("Shutdown complete")
}
