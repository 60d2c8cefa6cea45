package api

import "net/http"

// SeasonsHandler handles season listing requests.
type SeasonsHandler struct {
	deps SeasonsDependencies
}

// NewSeasonsHandler creates a new seasons handler.
func NewSeasonsHandler(deps SeasonsDependencies) *SeasonsHandler {
	return &SeasonsHandler{deps: deps}
}

// HandleGetSeasons handles GET /seasons requests.
func (h *SeasonsHandler) HandleGetSeasons(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	seasons := h.deps.Seasons(r.Context())
	if seasons == nil {
		seasons = []int{}
	}
	writeJSON(w, http.StatusOK, map[string][]int{"seasons": seasons})
}
