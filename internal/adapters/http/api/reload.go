package api

import (
	"context"
	"net/http"
	"strconv"
)

// ReloadDependencies defines the interface for triggering a data reload.
type ReloadDependencies interface {
	Reload(ctx context.Context, force bool) (bool, error)
}

// ReloadHandler handles reload requests.
type ReloadHandler struct {
	deps ReloadDependencies
}

// NewReloadHandler creates a new reload handler.
func NewReloadHandler(deps ReloadDependencies) *ReloadHandler {
	return &ReloadHandler{deps: deps}
}

type reloadResponse struct {
	Status   string `json:"status"`
	Reloaded bool   `json:"reloaded"`
}

// HandlePostReload handles POST /reload[?force=true] requests.
func (h *ReloadHandler) HandlePostReload(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_reload"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	force := false
	if raw := r.URL.Query().Get("force"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		force = v
	}
	reloaded, err := h.deps.Reload(r.Context(), force)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "reload_failed", Wrap(op, err))
		return
	}
	status := "unchanged"
	if reloaded {
		status = "reloaded"
	}
	writeJSON(w, http.StatusOK, reloadResponse{Status: status, Reloaded: reloaded})
}
