package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/scout/internal/adapters/repository"
	"github.com/okian/scout/internal/domain/model"
)

const defaultSearchLimit = 20

// SearchDependencies defines the interface for player name search.
type SearchDependencies interface {
	SeasonsDependencies
	Search(ctx context.Context, role model.Role, season int, query string, limit int) ([]repository.SearchHit, error)
}

// SearchHandler handles search requests.
type SearchHandler struct {
	deps     SearchDependencies
	maxLimit int
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(deps SearchDependencies, maxLimit int) *SearchHandler {
	return &SearchHandler{deps: deps, maxLimit: maxLimit}
}

// HandleSearch handles GET /search?role=&season=&q=&limit= requests.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	const op = "api.search"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	query := strings.TrimSpace(q.Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errors.New("missing q")))
		return
	}
	limit, err := parseLimit(q, defaultSearchLimit, h.maxLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	sc, err := parseScope(r.Context(), q, h.deps)
	if err != nil {
		writeLookupError(w, op, err)
		return
	}
	hits, err := h.deps.Search(r.Context(), sc.role, sc.season, query, limit)
	if err != nil {
		writeLookupError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, hits)
}
