package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kibisports/matchdesk/internal/adapters/http/api"
	"github.com/kibisports/matchdesk/internal/adapters/repository"
	app "github.com/kibisports/matchdesk/internal/app"
	"github.com/kibisports/matchdesk/internal/config"
	"github.com/kibisports/matchdesk/internal/domain/relax"
	"github.com/kibisports/matchdesk/internal/domain/scoring"
	"github.com/kibisports/matchdesk/pkg/logger"
	"github.com/kibisports/matchdesk/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout           = 10 * time.Second
	writeTimeout          = 10 * time.Second
	idleTimeout           = 60 * time.Second
	readHeaderTimeout     = 5 * time.Second
	shutdownTimeout       = 30 * time.Second
	systemMetricsInterval = 10 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString("failed to flush logs: " + err.Error() + "\n")
		}
	}()
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	store, err := repository.Open(cfg.DBPath)
	if err != nil {
		log.Error(ctx, "failed to open store", logger.String("db_path", cfg.DBPath), logger.Error(err))
		return
	}
	defer store.Close()

	engine := scoring.New(scoring.WithWeights(scoring.Weights{
		Sport:            cfg.SportWeight,
		Geo:              cfg.GeoWeight,
		Objective:        cfg.ObjectiveWeight,
		Featured:         cfg.FeaturedWeight,
		CityPenalty:      cfg.CityRelaxPenalty,
		StatePenalty:     cfg.StateRelaxPenalty,
		ClusterPenalty:   cfg.SportClusterPenalty,
		ObjectivePenalty: cfg.ObjectiveRelaxPenalty,
	}))
	controller := relax.NewController(relax.WithMinResults(cfg.MinResultsPerCategory))

	svc := app.New(store,
		app.WithEngine(engine),
		app.WithController(controller),
		app.WithTeaserLimits(cfg.TeaserMaxAthletes, cfg.TeaserMaxLeagues, cfg.TeaserMaxVenues),
		app.WithTeaserHardCap(cfg.TeaserHardCap),
		app.WithLogger(log.Named("matchmaker")),
	)

	go startSystemMetricsUpdater(ctx)

	// HTTP mux and routes.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	apiServer := api.NewServer(svc)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

// startSystemMetricsUpdater periodically refreshes process-level gauges.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			metrics.UpdateSystemMemoryUsage(m.HeapInuse)
			metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())
		}
	}
}
