// Plenum - UN Voting Analytics and Country Alignment Reports
// Copyright 2026 Plenum Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plenumhq/plenum

// Command server runs the Plenum HTTP API. It loads the five
// pre-aggregated CSV tables into an immutable in-memory store at
// startup and serves country reports and yearly rankings until
// SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/plenumhq/plenum/internal/api"
	"github.com/plenumhq/plenum/internal/config"
	"github.com/plenumhq/plenum/internal/dataset"
	"github.com/plenumhq/plenum/internal/engine"
	"github.com/plenumhq/plenum/internal/logging"
	"github.com/plenumhq/plenum/internal/metrics"
	"github.com/plenumhq/plenum/internal/supervisor"
	"github.com/plenumhq/plenum/internal/supervisor/services"
)

var version = "dev" // set via -ldflags at build time

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting plenum server")

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loadStart := time.Now()
	store, err := dataset.Load(ctx, cfg.Dataset)
	if err != nil {
		return err
	}
	counts := store.Counts()
	metrics.SetDatasetStats(map[string]int{
		"scores":     counts.Scores,
		"similarity": counts.Similarity,
		"topics":     counts.Topics,
		"regions":    counts.Regions,
		"flags":      counts.Flags,
	}, time.Since(loadStart))

	eng := engine.New(store, cfg.API.TopK)

	handler := api.NewHandler(eng, store, cfg)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	treeCfg := supervisor.DefaultTreeConfig()
	treeCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree := supervisor.NewTree(logging.NewSlogLogger(), treeCfg)
	tree.Add(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	logging.Info().
		Int("countries", len(store.Countries())).
		Msg("Serving")

	err = tree.Serve(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logging.Info().Msg("Shutdown complete")
	return nil
}
