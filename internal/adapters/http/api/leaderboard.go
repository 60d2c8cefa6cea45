package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/population"
)

const defaultLeaderboardLimit = 10

// LeaderboardDependencies defines the interface for leaderboard operations
type LeaderboardDependencies interface {
	SeasonsDependencies
	Leaderboard(ctx context.Context, role model.Role, season int, field string, n int) ([]Entry, error)
}

// LeaderboardHandler handles leaderboard requests
type LeaderboardHandler struct {
	deps     LeaderboardDependencies
	maxLimit int
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(deps LeaderboardDependencies, maxLimit int) *LeaderboardHandler {
	return &LeaderboardHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

type leaderboardResponse struct {
	Role    model.Role `json:"role"`
	Season  int        `json:"season"`
	Field   string     `json:"field"`
	Entries []Entry    `json:"entries"`
}

// HandleGetLeaderboard handles GET /leaderboard?role=&season=&field=&limit= requests
func (h *LeaderboardHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_leaderboard"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	n, err := parseLimit(q, defaultLeaderboardLimit, h.maxLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	sc, err := parseScope(r.Context(), q, h.deps)
	if err != nil {
		writeLookupError(w, op, err)
		return
	}
	field := strings.TrimSpace(q.Get("field"))
	if field == "" {
		field = population.FieldOverall
	}
	entries, err := h.deps.Leaderboard(r.Context(), sc.role, sc.season, field, n)
	if err != nil {
		writeLookupError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, leaderboardResponse{Role: sc.role, Season: sc.season, Field: field, Entries: entries})
}
