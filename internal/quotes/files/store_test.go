package files

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	pkgerrors "github.com/ifeomasylviadike/quotevault/pkg/errors"
	"github.com/ifeomasylviadike/quotevault/pkg/quotes"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.yaml"))
	if err := store.Load(); err != nil {
		t.Fatalf("Load of missing file should succeed, got %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Expected empty collection, got %d records", store.Len())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "quotes.yaml")
	store := NewStore(path)

	when := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	recs := []quotes.Record{
		{ID: "R1", Text: "first", Category: "zen", UpdatedAt: when, Origin: quotes.OriginRemote},
		{ID: "local-1", Text: "second", Category: "advice", UpdatedAt: when, Origin: quotes.OriginLocal},
	}
	if err := store.ReplaceAll(recs); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Fresh store instance reads the same collection back.
	reloaded := NewStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got := reloaded.List()
	if len(got) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(got))
	}
	for i, want := range recs {
		if got[i].ID != want.ID {
			t.Errorf("Position %d: expected id %s, got %s", i, want.ID, got[i].ID)
		}
		if got[i].Text != want.Text || got[i].Category != want.Category {
			t.Errorf("Record %s content changed across round trip", want.ID)
		}
		if got[i].Origin != want.Origin {
			t.Errorf("Record %s: expected origin %s, got %s", want.ID, want.Origin, got[i].Origin)
		}
		if !got[i].UpdatedAt.Equal(want.UpdatedAt) {
			t.Errorf("Record %s: expected updated_at %v, got %v", want.ID, want.UpdatedAt, got[i].UpdatedAt)
		}
	}
}

func TestSaveReplacesWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.yaml")
	store := NewStore(path)

	_ = store.ReplaceAll([]quotes.Record{{ID: "A", Text: "old", Category: "x"}})
	if err := store.Save(); err != nil {
		t.Fatal(err)
	}
	_ = store.ReplaceAll([]quotes.Record{{ID: "B", Text: "new", Category: "y"}})
	if err := store.Save(); err != nil {
		t.Fatal(err)
	}

	reloaded := NewStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatal(err)
	}
	if reloaded.Len() != 1 {
		t.Fatalf("Expected 1 record after overwrite, got %d", reloaded.Len())
	}
	if _, err := reloaded.Get("A"); err == nil {
		t.Error("Expected previous contents replaced, but A survived")
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "quotes.yaml"))
	_ = store.ReplaceAll([]quotes.Record{{ID: "A", Text: "t", Category: "x"}})
	if err := store.Save(); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "quotes.yaml" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("Expected only quotes.yaml, got %v", names)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.yaml")
	if err := os.WriteFile(path, []byte("records: [not: valid: yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(path)
	err := store.Load()
	if err == nil {
		t.Fatal("Expected parse error for malformed file")
	}
	var perr *pkgerrors.ParseError
	if !errors.As(err, &perr) {
		t.Errorf("Expected ParseError, got %T: %v", err, err)
	}
}
