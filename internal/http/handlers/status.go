package handlers

import (
	"net/http"
	"strconv"
	"strings"
)

const defaultLogLimit = 10

// Status probes the gateway and returns the refreshed router state.
func (a *API) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.router.FetchStatus(r.Context()))
}

// Logs returns the newest log entries first.
func (a *API) Logs(w http.ResponseWriter, r *http.Request) {
	limit := defaultLogLimit
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			writeError(w, http.StatusBadRequest, "invalid_limit", "limit must be a non-negative integer")
			return
		}
		limit = value
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": a.router.Logs(limit)})
}
