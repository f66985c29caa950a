package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	routerdomain "github.com/micro-ha/netis-dashboard/internal/domain/router"
)

// Poller triggers an immediate status refresh.
type Poller interface {
	TriggerRefresh()
}

// Sessions issues and revokes the dashboard session token.
type Sessions interface {
	Begin(ctx context.Context) (string, error)
	Validate(ctx context.Context, token string) error
	End(ctx context.Context) error
}

// Assistant answers troubleshooting questions.
type Assistant interface {
	Ask(ctx context.Context, question string) (string, error)
}

// HealthChecker reports whether persistent storage is usable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// API groups HTTP handlers and dependencies.
type API struct {
	router    routerdomain.Service
	sessions  Sessions
	assistant Assistant
	poller    Poller
	health    HealthChecker
	logger    *slog.Logger
	staticDir string
}

// New creates HTTP handlers with explicit dependencies. poller and health may be nil.
func New(
	router routerdomain.Service,
	sessions Sessions,
	assistant Assistant,
	poller Poller,
	health HealthChecker,
	logger *slog.Logger,
	staticDir string,
) *API {
	if logger == nil {
		logger = slog.Default()
	}
	return &API{
		router:    router,
		sessions:  sessions,
		assistant: assistant,
		poller:    poller,
		health:    health,
		logger:    logger,
		staticDir: staticDir,
	}
}

// Logger returns request logger used by HTTP middleware.
func (a *API) Logger() *slog.Logger {
	return a.logger
}

// Health reports liveness, the active gateway and storage status.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	if a.health != nil {
		if err := a.health.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"status": "degraded", "storage": err.Error()})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "gateway": a.router.Gateway()})
}

// Static serves frontend assets and SPA fallback.
func (a *API) Static(w http.ResponseWriter, r *http.Request) {
	if a.staticDir == "" {
		writeError(w, http.StatusNotFound, "frontend_missing", "Frontend dist not found")
		return
	}
	path := strings.TrimPrefix(r.URL.Path, "/")
	if path == "" {
		path = "index.html"
	}
	cleanPath := strings.TrimPrefix(filepath.Clean("/"+path), "/")
	fullPath := filepath.Join(a.staticDir, cleanPath)
	if info, err := os.Stat(fullPath); err == nil && !info.IsDir() {
		http.ServeFile(w, r, fullPath)
		return
	}
	http.ServeFile(w, r, filepath.Join(a.staticDir, "index.html"))
}

func (a *API) triggerRefresh() {
	if a.poller != nil {
		a.poller.TriggerRefresh()
	}
}

func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	return decoder.Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	})
}
