package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/micro-ha/netis-dashboard/internal/http/handlers"
)

// NewRouter builds full HTTP routing tree for backend API and static frontend.
// stream serves the websocket feed and may be nil.
func NewRouter(api *handlers.API, sessions TokenValidator, stream http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RecoverJSON)
	r.Use(middleware.Timeout(20 * time.Second))
	r.Use(StripIngressPrefix)
	r.Use(RequestLogger(api))

	r.Get("/healthz", api.Health)
	r.Handle("/metrics", promhttp.Handler())
	r.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Post("/login", api.Login)
		apiRouter.Get("/session", api.Session)

		apiRouter.Group(func(protected chi.Router) {
			protected.Use(RequireSession(sessions))

			protected.Post("/logout", api.Logout)
			protected.Get("/status", api.Status)
			protected.Get("/logs", api.Logs)
			protected.Post("/devices/{id}/block", func(w http.ResponseWriter, r *http.Request) {
				api.ToggleDeviceBlock(w, r, chi.URLParam(r, "id"))
			})
			protected.Put("/wifi", api.UpdateWifi)
			protected.Put("/wifi/guest", api.UpdateGuestWifi)
			protected.Put("/admin/credentials", api.UpdateAdminCredentials)
			protected.Post("/reboot", api.Reboot)
			protected.Post("/assistant", api.Ask)
			if stream != nil {
				protected.Handle("/stream", stream)
			}
		})
	})

	r.Get("/*", api.Static)
	r.Get("/", api.Static)
	return r
}
