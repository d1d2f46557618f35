package catalog

import (
	"errors"
	"testing"

	"classeur/internal/domain"
)

func buildNamespace(t *testing.T, paths [][2]string) *Namespace {
	t.Helper()
	ns := NewNamespace()
	for _, p := range paths {
		if _, err := ns.AddFolder(p[0], p[1]); err != nil {
			t.Fatalf("AddFolder(%q, %q): %v", p[0], p[1], err)
		}
	}
	return ns
}

func TestNamespace_AddFolder_Validation(t *testing.T) {
	tests := []struct {
		name       string
		parentPath string
		folderName string
		wantErr    error
	}{
		{
			name:       "empty name",
			folderName: "",
			wantErr:    domain.ErrValidation,
		},
		{
			name:       "single character name",
			folderName: "A",
			wantErr:    domain.ErrValidation,
		},
		{
			name:       "name containing separator",
			folderName: "A > B",
			wantErr:    domain.ErrValidation,
		},
		{
			name:       "duplicate sibling",
			folderName: "ESIEA",
			wantErr:    domain.ErrConflict,
		},
		{
			name:       "unresolvable parent",
			parentPath: "Nowhere",
			folderName: "Cours",
			wantErr:    domain.ErrNotFound,
		},
		{
			name:       "valid sibling",
			folderName: "Perso",
		},
		{
			name:       "valid nested",
			parentPath: "ESIEA",
			folderName: "Data Science",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns := buildNamespace(t, [][2]string{{"", "ESIEA"}})

			_, err := ns.AddFolder(tt.parentPath, tt.folderName)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("AddFolder() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddFolder() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNamespace_DepthCeiling(t *testing.T) {
	ns := buildNamespace(t, [][2]string{
		{"", "ESIEA"},
		{"ESIEA", "Data Science"},
		{"ESIEA > Data Science", "Statistiques"},
	})

	// a fourth level is not representable
	_, err := ns.AddFolder("ESIEA > Data Science > Statistiques", "Examens")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("AddFolder() at depth 3: error = %v, want %v", err, domain.ErrValidation)
	}
}

func TestNamespace_PathConsistency(t *testing.T) {
	ns := buildNamespace(t, [][2]string{
		{"", "ESIEA"},
		{"ESIEA", "Data Science"},
		{"ESIEA > Data Science", "Statistiques"},
		{"", "Perso"},
	})

	// every enumerated path resolves to a folder carrying that exact path
	for _, path := range ns.ListOptions() {
		folder := ns.Resolve(path)
		if folder == nil {
			t.Fatalf("Resolve(%q) = nil", path)
		}
		if folder.Path != path {
			t.Errorf("Resolve(%q).Path = %q", path, folder.Path)
		}
	}

	if f := ns.Resolve("ESIEA > Missing"); f != nil {
		t.Errorf("Resolve of missing path = %+v, want nil", f)
	}
	if f := ns.Resolve(""); f != nil {
		t.Errorf("Resolve of empty path = %+v, want nil", f)
	}
}

func TestNamespace_ListOptions_InsertionOrder(t *testing.T) {
	ns := buildNamespace(t, [][2]string{
		{"", "Zèbre"},
		{"", "Avion"},
		{"Zèbre", "Sous-dossier"},
	})

	want := []string{"Zèbre", "Zèbre > Sous-dossier", "Avion"}
	got := ns.ListOptions()
	if len(got) != len(want) {
		t.Fatalf("ListOptions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ListOptions()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNamespace_RenameFolder(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		newName string
		wantErr error
		want    string // resulting path
	}{
		{
			name:    "rename nested folder",
			path:    "ESIEA > Data Science",
			newName: "DS",
			want:    "ESIEA > DS",
		},
		{
			name:    "rename root folder",
			path:    "ESIEA",
			newName: "École",
			want:    "École",
		},
		{
			name:    "missing folder",
			path:    "Nowhere",
			newName: "DS",
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "duplicate sibling name",
			path:    "ESIEA > Data Science",
			newName: "Réseaux",
			wantErr: domain.ErrConflict,
		},
		{
			name:    "too short name",
			path:    "ESIEA",
			newName: "E",
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns := buildNamespace(t, [][2]string{
				{"", "ESIEA"},
				{"ESIEA", "Data Science"},
				{"ESIEA", "Réseaux"},
				{"ESIEA > Data Science", "Statistiques"},
			})

			folder, err := ns.RenameFolder(tt.path, tt.newName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("RenameFolder() error = %v, want %v", err, tt.wantErr)
				}
				// all-or-nothing: the original path must still resolve
				if ns.Resolve(tt.path) == nil && tt.path != "Nowhere" {
					t.Errorf("failed rename mutated the tree")
				}
				return
			}
			if err != nil {
				t.Fatalf("RenameFolder() error = %v", err)
			}
			if folder.Path != tt.want {
				t.Errorf("renamed path = %q, want %q", folder.Path, tt.want)
			}
			if ns.Resolve(tt.path) != nil {
				t.Errorf("old path %q still resolves", tt.path)
			}
		})
	}
}

func TestNamespace_RenameFolder_DescendantPathsFollow(t *testing.T) {
	ns := buildNamespace(t, [][2]string{
		{"", "ESIEA"},
		{"ESIEA", "Data Science"},
		{"ESIEA > Data Science", "Statistiques"},
	})

	if _, err := ns.RenameFolder("ESIEA > Data Science", "DS"); err != nil {
		t.Fatalf("RenameFolder(): %v", err)
	}

	if ns.Resolve("ESIEA > DS > Statistiques") == nil {
		t.Errorf("descendant path did not follow the rename")
	}
	if ns.Resolve("ESIEA > Data Science > Statistiques") != nil {
		t.Errorf("old descendant path still resolves")
	}
}

func TestNamespace_DeleteFolder(t *testing.T) {
	ns := buildNamespace(t, [][2]string{
		{"", "ESIEA"},
		{"ESIEA", "Data Science"},
		{"", "Perso"},
	})

	if err := ns.DeleteFolder("ESIEA"); err != nil {
		t.Fatalf("DeleteFolder(): %v", err)
	}
	if ns.Resolve("ESIEA") != nil {
		t.Errorf("deleted folder still resolves")
	}
	if ns.Resolve("ESIEA > Data Science") != nil {
		t.Errorf("deleted subtree still resolves")
	}
	if ns.Resolve("Perso") == nil {
		t.Errorf("sibling was detached by delete")
	}

	if err := ns.DeleteFolder("ESIEA"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("deleting missing folder: error = %v, want %v", err, domain.ErrNotFound)
	}
}

func TestNamespace_ExportRestore(t *testing.T) {
	ns := buildNamespace(t, [][2]string{
		{"", "ESIEA"},
		{"ESIEA", "Data Science"},
		{"ESIEA > Data Science", "Statistiques"},
		{"", "Perso"},
	})

	restored := NewNamespace()
	restored.Restore(ns.Export())

	for _, path := range ns.ListOptions() {
		if restored.Resolve(path) == nil {
			t.Errorf("restored namespace misses %q", path)
		}
	}
	if got, want := len(restored.ListOptions()), len(ns.ListOptions()); got != want {
		t.Errorf("restored folder count = %d, want %d", got, want)
	}
}
