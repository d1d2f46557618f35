package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	models "classeur/internal/domain/models/catalog"
	"classeur/internal/httputil"
	"classeur/internal/service"
)

// SearchHandler handles search HTTP requests
type SearchHandler struct {
	search *service.SearchService
	logger *slog.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(search *service.SearchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{search: search, logger: logger}
}

// Search runs a ranked query over the document corpus.
// GET /api/search
//
// Query parameters:
//   - q: free-text query, may embed field:value tokens
//   - sort: relevance (default), name, date, size, type, category
//   - order: asc or desc, overrides a non-relevance sort's direction
//   - tie_break: secondary key for relevance-score ties (default: name)
//   - category, type, year, tag: repeatable structured filters
//   - max_size_mb: upper size bound in megabytes
//   - favorite, bookmark: "true" requires the flag to be set
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := models.SearchOptions{
		Query:    q.Get("q"),
		Sort:     models.SortKey(q.Get("sort")),
		Order:    models.SortOrder(q.Get("order")),
		TieBreak: models.SortKey(q.Get("tie_break")),
		Filters: models.FilterSet{
			Categories: q["category"],
			Types:      q["type"],
			Years:      q["year"],
			Tags:       q["tag"],
			Favorite:   q.Get("favorite") == "true",
			Bookmark:   q.Get("bookmark") == "true",
		},
	}

	if raw := q.Get("max_size_mb"); raw != "" {
		size, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "max_size_mb must be a number")
			return
		}
		opts.Filters.MaxSizeMB = size
	}

	results, err := h.search.Search(opts)
	if err != nil {
		handleError(w, err)
		return
	}
	if results.Results == nil {
		results.Results = []models.SearchResult{}
	}

	httputil.RespondJSON(w, http.StatusOK, results)
}
