package search

import (
	"strconv"
	"strings"

	models "classeur/internal/domain/models/catalog"
)

// fieldTable maps each recognized field keyword to the function that folds
// its value into a filter set. One fixed table instead of repeated regex
// passes: every token is inspected exactly once, so overlapping fields in
// the same query cannot interfere with each other.
//
// Keyword matching is case-sensitive. The applier reports whether the value
// was accepted; a rejected value leaves the whole token in the residual
// terms (robustness over strictness).
var fieldTable = map[string]func(f *models.FilterSet, value string) bool{
	"type": func(f *models.FilterSet, v string) bool {
		f.Types = append(f.Types, v)
		return true
	},
	"date": func(f *models.FilterSet, v string) bool {
		f.Years = append(f.Years, v)
		return true
	},
	"catégorie": func(f *models.FilterSet, v string) bool {
		f.Categories = append(f.Categories, v)
		return true
	},
	"tag": func(f *models.FilterSet, v string) bool {
		f.Tags = append(f.Tags, v)
		return true
	},
	"taille": func(f *models.FilterSet, v string) bool {
		size, err := strconv.ParseFloat(v, 64)
		if err != nil || size < 0 {
			return false
		}
		// several taille tokens keep the largest ceiling
		if size > f.MaxSizeMB {
			f.MaxSizeMB = size
		}
		return true
	},
	"favori": func(f *models.FilterSet, v string) bool {
		// only "true" constrains; a false flag means no constraint
		f.Favorite = f.Favorite || v == "true"
		return true
	},
	"bookmark": func(f *models.FilterSet, v string) bool {
		f.Bookmark = f.Bookmark || v == "true"
		return true
	},
}

// ParseQuery tokenizes a raw query string into structured field filters and
// a residual list of plain search terms.
//
// Structured tokens have the form field:value for the fields in fieldTable.
// Repeated occurrences of one field accumulate into its value set. Tokens
// shaped like field:value for an unrecognized field stay in the residual
// terms as plain text. Extracted values pass through unmodified; case
// handling belongs to the engine.
func ParseQuery(raw string) (models.FilterSet, []string) {
	var filters models.FilterSet
	var terms []string

	for _, token := range strings.Fields(raw) {
		field, value, ok := strings.Cut(token, ":")
		if ok && value != "" {
			if apply, known := fieldTable[field]; known && apply(&filters, value) {
				continue
			}
		}
		terms = append(terms, token)
	}
	return filters, terms
}
