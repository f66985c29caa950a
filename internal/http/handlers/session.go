package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/micro-ha/netis-dashboard/internal/storage"
)

// SessionCookie carries the session token for browser clients.
const SessionCookie = storage.KeySession

type loginRequest struct {
	IP       string `json:"ip"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionToken reads the token from the session cookie, falling back to a
// bearer Authorization header.
func SessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookie); err == nil && strings.TrimSpace(cookie.Value) != "" {
		return strings.TrimSpace(cookie.Value)
	}
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(header) > len("Bearer ") && strings.EqualFold(header[:len("Bearer ")], "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	return ""
}

// Login probes the requested gateway and starts a session when it answers.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_payload", "Invalid JSON payload")
		return
	}
	ip := strings.TrimSpace(payload.IP)
	if ip == "" {
		writeError(w, http.StatusBadRequest, "ip_required", "Gateway IP is required")
		return
	}

	ok, err := a.router.Login(r.Context(), ip, payload.Username, payload.Password)
	if err != nil {
		a.logger.Error("login failed", "gateway", ip, "err", err)
		writeError(w, http.StatusInternalServerError, "login_failed", err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusUnauthorized, "gateway_unreachable",
			fmt.Sprintf("Cannot establish connection to %s. Check your physical connection or try a different IP.", ip))
		return
	}

	token, err := a.sessions.Begin(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session_failed", err.Error())
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	a.triggerRefresh()
	writeJSON(w, http.StatusOK, map[string]any{
		"token":     token,
		"gatewayIp": a.router.Gateway(),
		"username":  a.router.Snapshot().AdminUser,
	})
}

// Logout ends the session and clears the cookie.
func (a *API) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.End(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "logout_failed", err.Error())
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// Session reports whether the caller holds the active session.
func (a *API) Session(w http.ResponseWriter, r *http.Request) {
	authenticated := a.sessions.Validate(r.Context(), SessionToken(r)) == nil
	writeJSON(w, http.StatusOK, map[string]any{
		"authenticated": authenticated,
		"gatewayIp":     a.router.Gateway(),
		"username":      a.router.Snapshot().AdminUser,
	})
}
