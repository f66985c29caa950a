package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

const dashboardDrainTimeout = 15 * time.Second

// RunServer binds the dashboard listener and serves until ctx is cancelled,
// then drains in-flight requests. Websocket clients are hijacked and must be
// closed by the hub.
func RunServer(ctx context.Context, server *http.Server, logger *slog.Logger) error {
	listener, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return fmt.Errorf("dashboard listen on %q: %w", server.Addr, err)
	}
	return serveDashboard(ctx, server, listener, logger)
}

func serveDashboard(ctx context.Context, server *http.Server, listener net.Listener, logger *slog.Logger) error {
	logger.Info("dashboard api listening", "addr", listener.Addr().String())

	served := make(chan error, 1)
	go func() { served <- server.Serve(listener) }()

	select {
	case err := <-served:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Error("dashboard api stopped unexpectedly", "err", err)
		return fmt.Errorf("dashboard serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("dashboard api draining", "timeout", dashboardDrainTimeout.String())
	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), dashboardDrainTimeout)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		logger.Warn("dashboard drain incomplete; closing connections", "err", err)
		_ = server.Close()
		return fmt.Errorf("dashboard shutdown: %w", err)
	}
	<-served
	return nil
}
