package catalog

import "testing"

func TestFilterSetIsZero(t *testing.T) {
	tests := []struct {
		name    string
		filters FilterSet
		want    bool
	}{
		{"empty", FilterSet{}, true},
		{"category", FilterSet{Categories: []string{"scolaire"}}, false},
		{"type", FilterSet{Types: []string{"pdf"}}, false},
		{"year", FilterSet{Years: []string{"2024"}}, false},
		{"tag", FilterSet{Tags: []string{"cours"}}, false},
		{"size ceiling", FilterSet{MaxSizeMB: 1.5}, false},
		{"favorite", FilterSet{Favorite: true}, false},
		{"bookmark", FilterSet{Bookmark: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filters.IsZero(); got != tt.want {
				t.Errorf("IsZero() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterSetMergeClearsZero(t *testing.T) {
	var base FilterSet
	base.Merge(&FilterSet{Favorite: true})

	if base.IsZero() {
		t.Error("IsZero() = true after merging a constrained set")
	}
}
