package memory

import (
	"errors"
	"sync"
	"testing"

	pkgerrors "github.com/ifeomasylviadike/quotevault/pkg/errors"
	"github.com/ifeomasylviadike/quotevault/pkg/quotes"
)

func rec(id, text, category string) quotes.Record {
	return quotes.Record{ID: id, Text: text, Category: category, Origin: quotes.OriginLocal}
}

func TestStoreSetGetDelete(t *testing.T) {
	store := NewStore()

	if err := store.Set(rec("A", "one", "x")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := store.Get("A")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Text != "one" {
		t.Errorf("Expected text one, got %q", got.Text)
	}

	// Upsert overwrites in place.
	if err := store.Set(rec("A", "updated", "x")); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	got, _ = store.Get("A")
	if got.Text != "updated" {
		t.Errorf("Expected upsert to overwrite, got %q", got.Text)
	}
	if store.Len() != 1 {
		t.Errorf("Expected 1 record after upsert, got %d", store.Len())
	}

	if err := store.Delete("A"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get("A"); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
	if err := store.Delete("A"); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for double delete, got %v", err)
	}
}

func TestStoreSetEmptyID(t *testing.T) {
	store := NewStore()
	if err := store.Set(rec("", "text", "x")); !pkgerrors.IsValidationError(err) {
		t.Errorf("Expected validation error for empty id, got %v", err)
	}
}

func TestStoreOrderPreserved(t *testing.T) {
	store := NewStore()
	for _, id := range []string{"C", "A", "B"} {
		if err := store.Set(rec(id, "t", "x")); err != nil {
			t.Fatal(err)
		}
	}

	got := store.List()
	want := []string{"C", "A", "B"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("Position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestStoreReplaceRewritesIDInPlace(t *testing.T) {
	store := NewStoreWithRecords([]quotes.Record{
		rec("A", "1", "x"),
		rec("local-123", "2", "x"),
		rec("C", "3", "x"),
	})

	confirmed := quotes.Record{ID: "R9", Text: "2", Category: "x", Origin: quotes.OriginRemote}
	if err := store.Replace("local-123", confirmed); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	if _, err := store.Get("local-123"); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Error("Expected old id gone after replace")
	}
	got, err := store.Get("R9")
	if err != nil {
		t.Fatalf("Expected new id present: %v", err)
	}
	if got.Origin != quotes.OriginRemote {
		t.Errorf("Expected remote origin, got %s", got.Origin)
	}

	// Position preserved.
	if list := store.List(); list[1].ID != "R9" {
		t.Errorf("Expected R9 in position 1, got %s", list[1].ID)
	}
}

func TestStoreReplaceCollapsesExistingID(t *testing.T) {
	// The remote may hand out an id the collection already holds, for
	// example when it assigns the same id to every submitted record.
	store := NewStoreWithRecords([]quotes.Record{
		rec("R9", "already here", "x"),
		rec("local-1", "outbound", "x"),
		rec("C", "tail", "x"),
	})

	confirmed := quotes.Record{ID: "R9", Text: "outbound", Category: "x", Origin: quotes.OriginRemote}
	if err := store.Replace("local-1", confirmed); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	if store.Len() != 2 {
		t.Fatalf("Expected 2 records after collapse, got %d", store.Len())
	}
	seen := make(map[string]int)
	for _, r := range store.List() {
		seen[r.ID]++
	}
	if seen["R9"] != 1 {
		t.Errorf("Expected id R9 exactly once, got %d", seen["R9"])
	}
	if _, err := store.Get("local-1"); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Error("Expected old id gone after replace")
	}

	// Last write wins on content for the surviving slot.
	got, err := store.Get("R9")
	if err != nil {
		t.Fatal(err)
	}
	if got.Text != "outbound" {
		t.Errorf("Expected replacement content, got %q", got.Text)
	}
}

func TestStoreReplaceMissingOldIDAppends(t *testing.T) {
	store := NewStore()
	confirmed := quotes.Record{ID: "R1", Text: "t", Category: "x", Origin: quotes.OriginRemote}
	if err := store.Replace("gone", confirmed); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if _, err := store.Get("R1"); err != nil {
		t.Errorf("Expected replacement appended, got %v", err)
	}
}

func TestStoreReplaceAll(t *testing.T) {
	store := NewStoreWithRecords([]quotes.Record{rec("A", "old", "x")})

	err := store.ReplaceAll([]quotes.Record{
		rec("B", "new", "y"),
		rec("C", "newer", "z"),
	})
	if err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	if store.Len() != 2 {
		t.Errorf("Expected 2 records, got %d", store.Len())
	}
	if _, err := store.Get("A"); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Error("Expected old contents gone")
	}
}

func TestStoreCategories(t *testing.T) {
	store := NewStoreWithRecords([]quotes.Record{
		rec("1", "a", "zen"),
		rec("2", "b", "advice"),
		rec("3", "c", "zen"),
		rec("4", "d", "Humor"),
	})

	cats := store.Categories()
	if len(cats) != 3 {
		t.Fatalf("Expected 3 distinct categories, got %v", cats)
	}
	if cats[0] != "advice" || cats[1] != "Humor" || cats[2] != "zen" {
		t.Errorf("Expected collated order [advice Humor zen], got %v", cats)
	}

	byCat := store.ListByCategory("zen")
	if len(byCat) != 2 {
		t.Errorf("Expected 2 zen records, got %d", len(byCat))
	}
}

func TestStoreConcurrentReadsDuringWrites(t *testing.T) {
	store := NewStoreWithRecords([]quotes.Record{rec("A", "start", "x")})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				// Readers must always observe a coherent collection.
				for _, r := range store.List() {
					if r.ID == "" {
						t.Error("Observed torn record")
						return
					}
				}
				_ = store.Categories()
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 100; j++ {
			_ = store.Set(rec("A", "mutated", "x"))
			_ = store.Set(rec("B", "second", "y"))
			_ = store.Delete("B")
		}
	}()
	wg.Wait()
}

func TestMemoryLoadSaveNoOps(t *testing.T) {
	store := NewStore()
	if err := store.Load(); err != nil {
		t.Errorf("Load should be a no-op, got %v", err)
	}
	if err := store.Save(); err != nil {
		t.Errorf("Save should be a no-op, got %v", err)
	}
}
