package quotevault

import (
	"fmt"

	"github.com/ifeomasylviadike/quotevault/internal/quotes/files"
	"github.com/ifeomasylviadike/quotevault/internal/quotes/memory"
	"github.com/ifeomasylviadike/quotevault/pkg/quotes"
)

// NewMemoryStore creates an in-memory record store.
func NewMemoryStore() quotes.Store {
	return memory.NewStore()
}

// NewMemoryStoreWithRecords creates an in-memory record store preloaded
// with the given records.
func NewMemoryStoreWithRecords(recs []quotes.Record) quotes.Store {
	return memory.NewStoreWithRecords(recs)
}

// NewFilesStore creates a file-backed record store at the given path
// and loads it. A missing file starts as an empty collection.
func NewFilesStore(path string) (quotes.Store, error) {
	if path == "" {
		return nil, fmt.Errorf("path is required for files store")
	}

	store := files.NewStore(path)
	if err := store.Load(); err != nil {
		return nil, fmt.Errorf("loading quotes from %s: %w", path, err)
	}
	return store, nil
}
