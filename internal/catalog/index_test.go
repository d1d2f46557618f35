package catalog

import (
	"errors"
	"testing"
	"time"

	"classeur/internal/domain"
	models "classeur/internal/domain/models/catalog"
)

func seedIndex(paths map[string]int) *Index {
	ix := NewIndex()
	for path, count := range paths {
		files := make([]models.FileMeta, count)
		for i := range files {
			files[i] = models.FileMeta{
				Name:         "doc.pdf",
				Type:         "application/pdf",
				Size:         1024,
				LastModified: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			}
		}
		ix.Add(path, files)
	}
	return ix
}

func TestIndex_Add_AssignsUniqueIDs(t *testing.T) {
	ix := NewIndex()
	docs := ix.Add("ESIEA", []models.FileMeta{
		{Name: "a.pdf", Type: "application/pdf"},
		{Name: "b.pdf", Type: "application/pdf"},
	})

	if len(docs) != 2 {
		t.Fatalf("Add() returned %d documents, want 2", len(docs))
	}
	if docs[0].ID == "" || docs[1].ID == "" {
		t.Errorf("documents missing ids: %q, %q", docs[0].ID, docs[1].ID)
	}
	if docs[0].ID == docs[1].ID {
		t.Errorf("duplicate id %q", docs[0].ID)
	}
	if docs[0].Path != "ESIEA" {
		t.Errorf("Path = %q, want %q", docs[0].Path, "ESIEA")
	}

	// ids survive removal without reuse
	ix.Remove(docs[0].ID)
	fresh := ix.Add("ESIEA", []models.FileMeta{{Name: "c.pdf"}})
	if fresh[0].ID == docs[0].ID {
		t.Errorf("id %q was reused after deletion", docs[0].ID)
	}
}

func TestIndex_Remove_UnknownIDIsNoop(t *testing.T) {
	ix := seedIndex(map[string]int{"ESIEA": 2})

	if removed := ix.Remove("no-such-id"); removed {
		t.Errorf("Remove(unknown) = true, want false")
	}
	if ix.Count() != 2 {
		t.Errorf("Count() = %d, want 2", ix.Count())
	}
}

func TestIndex_RemoveByPathPrefix(t *testing.T) {
	tests := []struct {
		name        string
		prefix      string
		wantRemoved int
		wantKept    int
	}{
		{
			name:        "exact path and descendants",
			prefix:      "ESIEA",
			wantRemoved: 3,
			wantKept:    2,
		},
		{
			name:        "descendant only",
			prefix:      "ESIEA > Data Science",
			wantRemoved: 2,
			wantKept:    3,
		},
		{
			name:        "string prefix without separator boundary",
			prefix:      "Data",
			wantRemoved: 0,
			wantKept:    5,
		},
		{
			name:        "no match",
			prefix:      "Inconnu",
			wantRemoved: 0,
			wantKept:    5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := seedIndex(map[string]int{
				"ESIEA":                1,
				"ESIEA > Data Science": 2,
				"Database":             1,
				"Data Exports":         1,
			})

			removed := ix.RemoveByPathPrefix(tt.prefix)
			if removed != tt.wantRemoved {
				t.Errorf("RemoveByPathPrefix(%q) = %d, want %d", tt.prefix, removed, tt.wantRemoved)
			}
			if ix.Count() != tt.wantKept {
				t.Errorf("Count() = %d, want %d", ix.Count(), tt.wantKept)
			}
		})
	}
}

func TestIndex_RewritePathPrefix(t *testing.T) {
	ix := seedIndex(map[string]int{
		"ESIEA":                        1,
		"ESIEA > Data Science":         1,
		"ESIEA > Data Science > Stats": 1,
		"Database":                     1,
	})

	updated := ix.RewritePathPrefix("ESIEA > Data Science", "ESIEA > DS")
	if updated != 2 {
		t.Fatalf("RewritePathPrefix() = %d, want 2", updated)
	}

	wantByPath := map[string]int{
		"ESIEA":              1,
		"ESIEA > DS":         1,
		"ESIEA > DS > Stats": 1,
		"Database":           1,
	}
	for path, want := range wantByPath {
		if got := len(ix.FindByExactPath(path)); got != want {
			t.Errorf("FindByExactPath(%q) = %d documents, want %d", path, got, want)
		}
	}
}

func TestIndex_FindByExactPath_ExcludesDescendants(t *testing.T) {
	ix := seedIndex(map[string]int{
		"ESIEA":                2,
		"ESIEA > Data Science": 3,
	})

	if got := len(ix.FindByExactPath("ESIEA")); got != 2 {
		t.Errorf("FindByExactPath(%q) = %d documents, want 2", "ESIEA", got)
	}
}

func TestIndex_Classify(t *testing.T) {
	ix := NewIndex()
	docs := ix.Add("ESIEA", []models.FileMeta{{Name: "stats.pdf", Type: "application/pdf"}})
	id := docs[0].ID

	category := "scolaire"
	favorite := true
	doc, err := ix.Classify(id, models.Classification{
		Category: &category,
		Tags:     []string{"cours", "maths"},
		Favorite: &favorite,
	})
	if err != nil {
		t.Fatalf("Classify(): %v", err)
	}
	if doc.Category != "scolaire" {
		t.Errorf("Category = %q, want %q", doc.Category, "scolaire")
	}
	if len(doc.Tags) != 2 {
		t.Errorf("Tags = %v, want 2 entries", doc.Tags)
	}
	if !doc.Favorite || doc.Bookmark {
		t.Errorf("flags = favorite:%v bookmark:%v, want favorite only", doc.Favorite, doc.Bookmark)
	}

	// nil fields leave previous values untouched
	bookmark := true
	doc, err = ix.Classify(id, models.Classification{Bookmark: &bookmark})
	if err != nil {
		t.Fatalf("Classify(): %v", err)
	}
	if doc.Category != "scolaire" || !doc.Favorite || !doc.Bookmark {
		t.Errorf("partial patch clobbered fields: %+v", doc)
	}

	if _, err := ix.Classify("no-such-id", models.Classification{}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Classify(unknown) error = %v, want %v", err, domain.ErrNotFound)
	}
}
