package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnknownOlympus/rutas/internal/api"
	"github.com/UnknownOlympus/rutas/internal/config"
	"github.com/UnknownOlympus/rutas/internal/logger"
	"github.com/UnknownOlympus/rutas/internal/metrics"
	"github.com/UnknownOlympus/rutas/internal/repository"
	"github.com/UnknownOlympus/rutas/internal/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// main is the entry point of the route API.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	// This allows for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	log := logger.New(cfg.Env, os.Stdout)

	// Create a separate registry for metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	// Initialize the database connection.
	dtb, err := repository.NewDatabase(ctx, cfg.Database)
	if err != nil {
		log.ErrorContext(ctx, "Failed to connect to DB", "error", err)
		os.Exit(1)
	}
	defer dtb.Close()

	repo := repository.NewRepository(dtb, log)
	if err = repo.Migrate(ctx); err != nil {
		log.ErrorContext(ctx, "Failed to prepare DB schema", "error", err)
		os.Exit(1)
	}

	router := api.NewRouter(api.RouterOptions{
		Repo:         repo,
		Log:          log,
		Metrics:      appMetrics,
		Gatherer:     reg,
		DefaultLimit: cfg.DefaultLimit,
		MaxLimit:     cfg.MaxLimit,
	})

	err = server.Run(ctx, log, server.Options{
		Port:            cfg.Port,
		Handler:         router,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, nil)
	if err != nil {
		log.ErrorContext(ctx, "API server stopped with error", "error", err)
		os.Exit(1)
	}

	log.InfoContext(ctx, "Application stopped gracefully.")
}
