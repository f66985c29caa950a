package handlers

import (
	"net/http"

	routerdomain "github.com/micro-ha/netis-dashboard/internal/domain/router"
)

// ToggleDeviceBlock flips the block flag of one device.
func (a *API) ToggleDeviceBlock(w http.ResponseWriter, r *http.Request, id string) {
	device, found := a.router.ToggleDeviceBlock(r.Context(), id)
	if !found {
		writeError(w, http.StatusNotFound, "not_found", routerdomain.ErrDeviceNotFound.Error())
		return
	}
	writeJSON(w, http.StatusOK, device)
}
