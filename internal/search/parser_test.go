package search

import (
	"reflect"
	"testing"

	models "classeur/internal/domain/models/catalog"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantFilters models.FilterSet
		wantTerms   []string
	}{
		{
			name:      "plain terms only",
			query:     "rapport final",
			wantTerms: []string{"rapport", "final"},
		},
		{
			name:        "single type token",
			query:       "type:pdf rapport",
			wantFilters: models.FilterSet{Types: []string{"pdf"}},
			wantTerms:   []string{"rapport"},
		},
		{
			name:        "same field accumulates",
			query:       "type:pdf type:image",
			wantFilters: models.FilterSet{Types: []string{"pdf", "image"}},
		},
		{
			name:  "all fields at once",
			query: "type:pdf date:2024 catégorie:scolaire tag:cours taille:5 favori:true bookmark:true stats",
			wantFilters: models.FilterSet{
				Types:      []string{"pdf"},
				Years:      []string{"2024"},
				Categories: []string{"scolaire"},
				Tags:       []string{"cours"},
				MaxSizeMB:  5,
				Favorite:   true,
				Bookmark:   true,
			},
			wantTerms: []string{"stats"},
		},
		{
			name:      "unrecognized field stays in terms",
			query:     "auteur:dupont rapport",
			wantTerms: []string{"auteur:dupont", "rapport"},
		},
		{
			name:      "field keyword is case-sensitive",
			query:     "Type:pdf",
			wantTerms: []string{"Type:pdf"},
		},
		{
			name:      "field without value stays in terms",
			query:     "type: rapport",
			wantTerms: []string{"type:", "rapport"},
		},
		{
			name:      "unparseable taille stays in terms",
			query:     "taille:grande",
			wantTerms: []string{"taille:grande"},
		},
		{
			name:        "several taille tokens keep the largest",
			query:       "taille:2 taille:10",
			wantFilters: models.FilterSet{MaxSizeMB: 10},
		},
		{
			name:        "favori false does not constrain",
			query:       "favori:false",
			wantFilters: models.FilterSet{},
		},
		{
			name:        "value case passes through unmodified",
			query:       "catégorie:Scolaire",
			wantFilters: models.FilterSet{Categories: []string{"Scolaire"}},
		},
		{
			name:  "empty query",
			query: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters, terms := ParseQuery(tt.query)

			if !reflect.DeepEqual(filters, tt.wantFilters) {
				t.Errorf("filters = %+v, want %+v", filters, tt.wantFilters)
			}
			if !reflect.DeepEqual(terms, tt.wantTerms) {
				t.Errorf("terms = %v, want %v", terms, tt.wantTerms)
			}
		})
	}
}
