// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/okian/scout/internal/adapters/repository"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/population"
	"github.com/okian/scout/internal/domain/types"
)

const defaultMaxLimit = 500

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	SeasonsDependencies
	ProfileDependencies
	LeaderboardDependencies
	TeamsDependencies
	SearchDependencies
	ReloadDependencies
}

// SeasonsDependencies lists the graded seasons.
type SeasonsDependencies interface {
	Seasons(ctx context.Context) []int
}

// Entry mirrors the read shape returned by leaderboard queries.
type Entry = types.Entry

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	seasonsHandler     *SeasonsHandler
	profileHandler     *ProfileHandler
	leaderboardHandler *LeaderboardHandler
	teamsHandler       *TeamsHandler
	searchHandler      *SearchHandler
	reloadHandler      *ReloadHandler
}

// NewServer creates a new API server with all handlers. maxLimit caps the
// limit query parameter; non-positive values use the default.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLimit int) *Server {
	if maxLimit <= 0 {
		maxLimit = defaultMaxLimit
	}
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		seasonsHandler:     NewSeasonsHandler(deps),
		profileHandler:     NewProfileHandler(deps),
		leaderboardHandler: NewLeaderboardHandler(deps, maxLimit),
		teamsHandler:       NewTeamsHandler(deps),
		searchHandler:      NewSearchHandler(deps, maxLimit),
		reloadHandler:      NewReloadHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/seasons", MetricsMiddleware(s.seasonsHandler.HandleGetSeasons, "seasons"))
	mux.HandleFunc("/profiles/", MetricsMiddleware(s.profileHandler.HandleGetProfile, "profiles"))
	mux.HandleFunc("/leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
	mux.HandleFunc("/teams", MetricsMiddleware(s.teamsHandler.HandleGetTeams, "teams"))
	mux.HandleFunc("/search", MetricsMiddleware(s.searchHandler.HandleSearch, "search"))
	mux.HandleFunc("/reload", MetricsMiddleware(s.reloadHandler.HandlePostReload, "reload"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeLookupError maps store errors onto status codes.
func writeLookupError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
	case errors.Is(err, repository.ErrInvalidLimit), errors.Is(err, population.ErrUnknownField),
		errors.Is(err, model.ErrUnknownRole), errors.Is(err, ErrBadRequest):
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}

// scope is the (role, season) pair most read endpoints filter by.
type scope struct {
	role   model.Role
	season int
}

// parseScope reads role (default batter) and season (default latest graded).
func parseScope(ctx context.Context, q url.Values, deps SeasonsDependencies) (scope, error) {
	sc := scope{role: model.RoleBatter}
	if raw := strings.TrimSpace(q.Get("role")); raw != "" {
		role, err := model.ParseRole(raw)
		if err != nil {
			return sc, err
		}
		sc.role = role
	}
	if raw := strings.TrimSpace(q.Get("season")); raw != "" {
		season, err := strconv.Atoi(raw)
		if err != nil {
			return sc, fmt.Errorf("%w: season %q", ErrBadRequest, raw)
		}
		sc.season = season
		return sc, nil
	}
	seasons := deps.Seasons(ctx)
	if len(seasons) == 0 {
		return sc, fmt.Errorf("%w: no graded seasons", repository.ErrNotFound)
	}
	sc.season = seasons[len(seasons)-1]
	return sc, nil
}

// parseLimit reads limit, falling back to def when absent.
func parseLimit(q url.Values, def, maxLimit int) (int, error) {
	raw := strings.TrimSpace(q.Get("limit"))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: limit %q", ErrBadRequest, raw)
	}
	if n > maxLimit {
		return 0, fmt.Errorf("%w: limit %d exceeds %d", ErrBadRequest, n, maxLimit)
	}
	return n, nil
}
