package catalog

import (
	"fmt"
)

// SortKey selects the primary ordering of search results
type SortKey string

const (
	// SortByRelevance orders by descending term-match score (default)
	SortByRelevance SortKey = "relevance"

	// SortByName orders by name, ascending lexicographic
	SortByName SortKey = "name"

	// SortByDate orders by last-modified timestamp, descending
	SortByDate SortKey = "date"

	// SortBySize orders by size in bytes, descending
	SortBySize SortKey = "size"

	// SortByType orders by MIME type, ascending lexicographic
	SortByType SortKey = "type"

	// SortByCategory orders by category, ascending lexicographic
	SortByCategory SortKey = "category"
)

// SortOrder overrides the direction of a non-relevance primary sort
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// FilterSet is one group of structured constraints, either extracted from
// field:value tokens in the query string or supplied directly by the caller.
// Constraints AND across fields; the values within one field OR together.
type FilterSet struct {
	Categories []string `json:"categories,omitempty"`
	Types      []string `json:"types,omitempty"`      // MIME primary tokens, subtypes or kinds (pdf, image, ...)
	Years      []string `json:"years,omitempty"`      // four-digit years of last_modified
	Tags       []string `json:"tags,omitempty"`
	MaxSizeMB  float64  `json:"max_size_mb,omitempty"` // 0 = unconstrained
	Favorite   bool     `json:"favorite,omitempty"`
	Bookmark   bool     `json:"bookmark,omitempty"`
}

// IsZero reports whether the set carries no constraint at all.
func (f *FilterSet) IsZero() bool {
	return len(f.Categories) == 0 && len(f.Types) == 0 && len(f.Years) == 0 &&
		len(f.Tags) == 0 && f.MaxSizeMB == 0 && !f.Favorite && !f.Bookmark
}

// Merge combines another filter set into this one: value sets union by
// field, boolean flags OR, and the size ceiling keeps the larger maximum.
func (f *FilterSet) Merge(other *FilterSet) {
	f.Categories = unionValues(f.Categories, other.Categories)
	f.Types = unionValues(f.Types, other.Types)
	f.Years = unionValues(f.Years, other.Years)
	f.Tags = unionValues(f.Tags, other.Tags)
	if other.MaxSizeMB > f.MaxSizeMB {
		f.MaxSizeMB = other.MaxSizeMB
	}
	f.Favorite = f.Favorite || other.Favorite
	f.Bookmark = f.Bookmark || other.Bookmark
}

// unionValues appends the values of b not already present in a,
// preserving first-seen order.
func unionValues(a, b []string) []string {
	for _, v := range b {
		seen := false
		for _, existing := range a {
			if existing == v {
				seen = true
				break
			}
		}
		if !seen {
			a = append(a, v)
		}
	}
	return a
}

// SearchOptions configures one search pass over the document corpus.
type SearchOptions struct {
	// Query is the raw query string; may embed field:value tokens
	Query string

	// Filters are caller-supplied structured constraints, merged with
	// whatever the query string tokens yield
	Filters FilterSet

	// Sort is the primary sort key (default: relevance)
	Sort SortKey

	// Order overrides the direction of a non-relevance sort;
	// empty means the key's natural direction
	Order SortOrder

	// TieBreak is the secondary key used to break relevance-score ties
	// (default: name). Ignored for non-relevance primary sorts.
	TieBreak SortKey
}

// ApplyDefaults fills in default values for unset fields
func (opts *SearchOptions) ApplyDefaults() {
	if opts.Sort == "" {
		opts.Sort = SortByRelevance
	}
}

// Validate checks that the sort key and order are recognized
func (opts *SearchOptions) Validate() error {
	switch opts.Sort {
	case SortByRelevance, SortByName, SortByDate, SortBySize, SortByType, SortByCategory, "":
	default:
		return fmt.Errorf("unknown sort key: %q", opts.Sort)
	}
	switch opts.Order {
	case SortAsc, SortDesc, "":
	default:
		return fmt.Errorf("unknown sort order: %q", opts.Order)
	}
	switch opts.TieBreak {
	case SortByRelevance, SortByName, SortByDate, SortBySize, SortByType, SortByCategory, "":
	default:
		return fmt.Errorf("unknown tie-break key: %q", opts.TieBreak)
	}
	if opts.Filters.MaxSizeMB < 0 {
		return fmt.Errorf("max size cannot be negative")
	}
	return nil
}

// SearchResult is a single matched document with its relevance score.
// Documents that passed purely on structured filters score 0.
type SearchResult struct {
	Document Document `json:"document"`
	Score    int      `json:"score"`
}

// SearchResults is the full response for one search pass. No result cap is
// imposed here; truncation is a presentation concern.
type SearchResults struct {
	Results    []SearchResult `json:"results"`
	TotalCount int            `json:"total_count"`
	Sort       SortKey        `json:"sort"`
}
