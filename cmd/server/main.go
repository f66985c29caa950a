package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/micro-ha/netis-dashboard/internal/config"
	"github.com/micro-ha/netis-dashboard/internal/events"
	httpapi "github.com/micro-ha/netis-dashboard/internal/http"
	"github.com/micro-ha/netis-dashboard/internal/http/handlers"
	"github.com/micro-ha/netis-dashboard/internal/logging"
	"github.com/micro-ha/netis-dashboard/internal/metrics"
	"github.com/micro-ha/netis-dashboard/internal/oui"
	"github.com/micro-ha/netis-dashboard/internal/poller"
	"github.com/micro-ha/netis-dashboard/internal/probe"
	"github.com/micro-ha/netis-dashboard/internal/routeros"
	"github.com/micro-ha/netis-dashboard/internal/services/assistant"
	"github.com/micro-ha/netis-dashboard/internal/services/router"
	"github.com/micro-ha/netis-dashboard/internal/services/session"
	"github.com/micro-ha/netis-dashboard/internal/storage"
	"github.com/micro-ha/netis-dashboard/internal/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel)
	if cfg.ConfigPath != "" {
		logger.Info("config file applied", "path", cfg.ConfigPath)
	}
	metrics.InitMetrics()

	if err := os.MkdirAll(cfg.DBDir(), 0o755); err != nil {
		logger.Error("failed to create db directory", "err", err)
		os.Exit(1)
	}
	repo, err := storage.New(ctx, cfg.DBPath, logger)
	if err != nil {
		logger.Error("failed to initialize storage", "err", err)
		os.Exit(1)
	}
	defer repo.Close()

	ouiDB, err := oui.LoadEmbedded()
	if err != nil {
		logger.Error("failed to load oui db", "err", err)
		os.Exit(1)
	}

	source, closeSource, err := newTelemetrySource(cfg, ouiDB, logger)
	if err != nil {
		logger.Error("failed to initialize telemetry", "source", cfg.Telemetry.Source, "err", err)
		os.Exit(1)
	}
	defer closeSource()

	store := router.New(probe.NewHTTPProber(), source, repo, logger.With("component", "router"), router.Options{
		DefaultGateway:     cfg.DefaultGatewayIP,
		StatusProbeTimeout: cfg.StatusProbeTimeout,
		LoginProbeTimeout:  cfg.LoginProbeTimeout,
		LogCapacity:        cfg.LogCapacity,
	})
	if err := store.Restore(ctx); err != nil {
		logger.Warn("failed to restore saved gateway", "err", err)
	}

	sessions := session.NewManager(repo, logger.With("component", "session"))
	hub := events.NewHub(store.Snapshot, logger.With("component", "events"))
	defer hub.Close()

	statusPoller := poller.New(store, sessions, hub, cfg.PollInterval, logger.With("component", "poller"))
	go statusPoller.Run(ctx)
	statusPoller.TriggerRefresh()

	if cfg.Gemini.APIKey == "" {
		logger.Warn("GEMINI_API_KEY is empty; assistant will answer with the offline fallback")
	}
	gemini := assistant.NewGeminiClient(cfg.Gemini.BaseURL, cfg.Gemini.Model, cfg.Gemini.APIKey)
	assistantSvc := assistant.NewService(store, gemini, logger.With("component", "assistant"))

	api := handlers.New(store, sessions, assistantSvc, statusPoller, repo, logger, cfg.FrontendDist)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(api, sessions, hub),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("server starting", "gateway", store.Gateway(), "telemetry", cfg.Telemetry.Source)
	if err := httpapi.RunServer(ctx, httpServer, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server terminated with error", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func newTelemetrySource(cfg config.Config, vendors *oui.DB, logger *slog.Logger) (telemetry.Source, func(), error) {
	if cfg.Telemetry.Source != config.TelemetryRouterOS {
		return telemetry.NewSimulated(vendors), func() {}, nil
	}

	ros := cfg.Telemetry.RouterOS
	client, err := routeros.NewClient(routeros.Config{
		Address:  ros.Address,
		Username: ros.Username,
		Password: ros.Password,
		UseTLS:   ros.TLS,
	}, logger.With("component", "routeros"))
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Warn("failed to close routeros client", "err", err)
		}
	}
	return telemetry.NewRouterOS(client, ros.WANInterface, vendors, logger.With("component", "telemetry")), closeFn, nil
}
