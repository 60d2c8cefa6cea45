package api

import (
	"context"
	"net/http"

	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/population"
)

// TeamsDependencies defines the interface for team average lookups.
type TeamsDependencies interface {
	SeasonsDependencies
	TeamAverages(ctx context.Context, role model.Role, season int) (map[string]population.TeamSummary, error)
}

// TeamsHandler handles team comparison requests.
type TeamsHandler struct {
	deps TeamsDependencies
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(deps TeamsDependencies) *TeamsHandler {
	return &TeamsHandler{deps: deps}
}

type teamsResponse struct {
	Role   model.Role                        `json:"role"`
	Season int                               `json:"season"`
	Teams  map[string]population.TeamSummary `json:"teams"`
}

// HandleGetTeams handles GET /teams?role=&season= requests.
func (h *TeamsHandler) HandleGetTeams(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_teams"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	sc, err := parseScope(r.Context(), r.URL.Query(), h.deps)
	if err != nil {
		writeLookupError(w, op, err)
		return
	}
	teams, err := h.deps.TeamAverages(r.Context(), sc.role, sc.season)
	if err != nil {
		writeLookupError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, teamsResponse{Role: sc.role, Season: sc.season, Teams: teams})
}
