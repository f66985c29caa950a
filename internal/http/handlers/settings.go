package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	routerdomain "github.com/micro-ha/netis-dashboard/internal/domain/router"
	"github.com/micro-ha/netis-dashboard/internal/model"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateWifi replaces the primary Wi-Fi configuration.
func (a *API) UpdateWifi(w http.ResponseWriter, r *http.Request) {
	var payload model.WifiConfig
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_payload", "Invalid JSON payload")
		return
	}
	a.router.UpdateWifi(r.Context(), payload)
	writeJSON(w, http.StatusOK, a.router.Snapshot().Wifi)
}

// UpdateGuestWifi replaces the guest Wi-Fi configuration.
func (a *API) UpdateGuestWifi(w http.ResponseWriter, r *http.Request) {
	var payload model.WifiConfig
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_payload", "Invalid JSON payload")
		return
	}
	a.router.UpdateGuestWifi(r.Context(), payload)
	writeJSON(w, http.StatusOK, a.router.Snapshot().GuestWifi)
}

// UpdateAdminCredentials replaces the admin username and password.
func (a *API) UpdateAdminCredentials(w http.ResponseWriter, r *http.Request) {
	var payload credentialsRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_payload", "Invalid JSON payload")
		return
	}
	if strings.TrimSpace(payload.Password) == "" {
		writeError(w, http.StatusBadRequest, "password_required", routerdomain.ErrPasswordRequired.Error())
		return
	}
	if err := a.router.UpdateAdminCredentials(r.Context(), strings.TrimSpace(payload.Username), payload.Password); err != nil {
		writeError(w, http.StatusInternalServerError, "update_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "username": a.router.Snapshot().AdminUser})
}

// Reboot starts the reboot hold in the background; it outlives the request.
func (a *API) Reboot(w http.ResponseWriter, r *http.Request) {
	err := a.router.RebootAsync(context.WithoutCancel(r.Context()), a.triggerRefresh)
	if errors.Is(err, routerdomain.ErrRebootInProgress) {
		writeError(w, http.StatusConflict, "reboot_in_progress", err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "reboot_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]any{"ok": true})
}
