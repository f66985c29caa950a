package handlers

import (
	"errors"
	"net/http"

	"github.com/micro-ha/netis-dashboard/internal/services/assistant"
)

type askRequest struct {
	Question string `json:"question"`
}

// Ask forwards a troubleshooting question to the assistant.
func (a *API) Ask(w http.ResponseWriter, r *http.Request) {
	var payload askRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_payload", "Invalid JSON payload")
		return
	}
	answer, err := a.assistant.Ask(r.Context(), payload.Question)
	if errors.Is(err, assistant.ErrEmptyQuestion) {
		writeError(w, http.StatusBadRequest, "question_required", err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "assistant_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"answer": answer})
}
