package service

import (
	"fmt"
	"log/slog"

	"classeur/internal/domain"
	models "classeur/internal/domain/models/catalog"
	"classeur/internal/search"
)

// SearchService runs ranked queries over the catalog's document corpus.
type SearchService struct {
	catalog *CatalogService
	logger  *slog.Logger
}

// NewSearchService creates a new search service.
func NewSearchService(catalog *CatalogService, logger *slog.Logger) *SearchService {
	return &SearchService{catalog: catalog, logger: logger}
}

// Search validates the options, snapshots the corpus and evaluates the
// query. Reads never mutate the catalog, so re-running an identical search
// over an unchanged corpus yields identical output.
func (s *SearchService) Search(opts models.SearchOptions) (*models.SearchResults, error) {
	opts.ApplyDefaults()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	corpus := s.catalog.Documents()
	results := search.Search(opts, corpus)

	s.logger.Debug("search executed",
		"query", opts.Query,
		"sort", opts.Sort,
		"filtered", !opts.Filters.IsZero(),
		"corpus", len(corpus),
		"matches", results.TotalCount,
	)
	return &results, nil
}
