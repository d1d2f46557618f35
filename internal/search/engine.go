package search

import (
	"sort"
	"strconv"
	"strings"

	models "classeur/internal/domain/models/catalog"
)

// Term-match weights per document field. Summed per term, per document.
const (
	scoreName     = 10
	scorePath     = 5
	scoreCategory = 3
	scoreTag      = 2
)

// Search evaluates the query against the corpus and returns the surviving
// documents in ranked order.
//
// The raw query is parsed into filters and free-text terms, the parsed
// filters are merged with the caller-supplied ones (union by field), and
// every document is checked predicate by predicate, short-circuiting on the
// first failure. Predicates AND across fields and OR within one field's
// value set. Running the same search twice over an unchanged corpus yields
// identical ordered output.
func Search(opts models.SearchOptions, corpus []models.Document) models.SearchResults {
	opts.ApplyDefaults()

	filters, terms := ParseQuery(opts.Query)
	filters.Merge(&opts.Filters)

	scored := opts.Sort == models.SortByRelevance

	var results []models.SearchResult
	for _, doc := range corpus {
		if !matches(&doc, &filters, terms) {
			continue
		}
		result := models.SearchResult{Document: doc}
		if scored {
			result.Score = relevance(&doc, terms)
		}
		results = append(results, result)
	}

	sortResults(results, opts)

	return models.SearchResults{
		Results:    results,
		TotalCount: len(results),
		Sort:       opts.Sort,
	}
}

// matches evaluates the filter predicates against one document, cheapest first.
func matches(doc *models.Document, filters *models.FilterSet, terms []string) bool {
	// every free-text term must occur somewhere in the document's
	// searchable fields; no terms passes vacuously
	for _, term := range terms {
		if !termOccurs(doc, strings.ToLower(term)) {
			return false
		}
	}

	if len(filters.Categories) > 0 && !containsFold(filters.Categories, doc.Category) {
		return false
	}

	if len(filters.Types) > 0 {
		// a type value may name the MIME primary ("application"), the
		// subtype ("pdf") or the coarse kind ("document")
		primary, sub, _ := strings.Cut(doc.Type, "/")
		if !containsFold(filters.Types, primary) &&
			!containsFold(filters.Types, sub) &&
			!containsFold(filters.Types, KindOf(doc.Type)) {
			return false
		}
	}

	if len(filters.Years) > 0 {
		year := strconv.Itoa(doc.LastModified.Year())
		if !containsFold(filters.Years, year) {
			return false
		}
	}

	if len(filters.Tags) > 0 && !tagsIntersect(filters.Tags, doc) {
		return false
	}

	if filters.MaxSizeMB > 0 {
		if float64(doc.Size)/(1024*1024) > filters.MaxSizeMB {
			return false
		}
	}

	if filters.Favorite && !doc.Favorite {
		return false
	}
	if filters.Bookmark && !doc.Bookmark {
		return false
	}

	return true
}

// termOccurs reports whether the lowercased term is a substring of any of
// the document's searchable fields.
func termOccurs(doc *models.Document, term string) bool {
	if strings.Contains(strings.ToLower(doc.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(doc.Path), term) {
		return true
	}
	if strings.Contains(strings.ToLower(doc.Category), term) {
		return true
	}
	return strings.Contains(strings.ToLower(strings.Join(doc.Tags, " ")), term)
}

// relevance computes the weighted term-match score for one document.
// Documents that passed purely on structured filters score 0.
func relevance(doc *models.Document, terms []string) int {
	score := 0
	name := strings.ToLower(doc.Name)
	path := strings.ToLower(doc.Path)
	category := strings.ToLower(doc.Category)
	tags := strings.ToLower(strings.Join(doc.Tags, " "))

	for _, raw := range terms {
		term := strings.ToLower(raw)
		if strings.Contains(name, term) {
			score += scoreName
		}
		if strings.Contains(path, term) {
			score += scorePath
		}
		if strings.Contains(category, term) {
			score += scoreCategory
		}
		if strings.Contains(tags, term) {
			score += scoreTag
		}
	}
	return score
}

// sortResults orders the result set. Relevance sorts by descending score
// with the caller's tie-break key; any other primary key orders the whole
// set by that key alone, honoring an explicit direction override.
func sortResults(results []models.SearchResult, opts models.SearchOptions) {
	if opts.Sort == models.SortByRelevance {
		tieBreak := opts.TieBreak
		if tieBreak == "" || tieBreak == models.SortByRelevance {
			tieBreak = models.SortByName
		}
		sort.SliceStable(results, func(i, j int) bool {
			if results[i].Score != results[j].Score {
				return results[i].Score > results[j].Score
			}
			return keyLess(&results[i].Document, &results[j].Document, tieBreak)
		})
		return
	}

	descending := false
	switch opts.Order {
	case models.SortDesc:
		descending = true
	case models.SortAsc:
		descending = false
	default:
		// natural direction of the key: date and size newest/largest first
		descending = opts.Sort == models.SortByDate || opts.Sort == models.SortBySize
	}

	sort.SliceStable(results, func(i, j int) bool {
		if descending {
			i, j = j, i
		}
		return keyAscLess(&results[i].Document, &results[j].Document, opts.Sort)
	})
}

// keyLess compares two documents by the key's natural direction.
func keyLess(a, b *models.Document, key models.SortKey) bool {
	switch key {
	case models.SortByDate, models.SortBySize:
		return keyAscLess(b, a, key)
	default:
		return keyAscLess(a, b, key)
	}
}

// keyAscLess compares two documents by the key, always ascending.
func keyAscLess(a, b *models.Document, key models.SortKey) bool {
	switch key {
	case models.SortByDate:
		return a.LastModified.Before(b.LastModified)
	case models.SortBySize:
		return a.Size < b.Size
	case models.SortByType:
		return a.Type < b.Type
	case models.SortByCategory:
		return a.Category < b.Category
	default:
		return a.Name < b.Name
	}
}

// containsFold reports case-insensitive membership of v in set.
func containsFold(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

// tagsIntersect reports whether any wanted tag appears in the document's
// tag set.
func tagsIntersect(wanted []string, doc *models.Document) bool {
	for _, w := range wanted {
		if doc.HasTag(w) {
			return true
		}
	}
	return false
}
