package catalog

import "testing"

func TestDocumentHasTag(t *testing.T) {
	doc := Document{Tags: []string{"cours", "Brouillon"}}

	tests := []struct {
		tag  string
		want bool
	}{
		{"cours", true},
		{"COURS", true},
		{"brouillon", true},
		{"examen", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := doc.HasTag(tt.tag); got != tt.want {
			t.Errorf("HasTag(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}
