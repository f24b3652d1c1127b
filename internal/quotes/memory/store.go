// Package memory provides an in-memory record store for testing and
// temporary collections.
package memory

import (
	"github.com/ifeomasylviadike/quotevault/internal/quotes/base"
	"github.com/ifeomasylviadike/quotevault/pkg/quotes"
)

// store is an in-memory record store. Load and Save are no-ops.
type store struct {
	base.Collection
}

// NewStore creates a new in-memory record store.
func NewStore() quotes.Store {
	return &store{
		Collection: base.NewCollection(),
	}
}

// NewStoreWithRecords creates an in-memory store preloaded with records.
func NewStoreWithRecords(recs []quotes.Record) quotes.Store {
	s := &store{
		Collection: base.NewCollection(),
	}
	_ = s.ReplaceAll(recs)
	return s
}

// Load is a no-op for memory stores (they start empty or preloaded).
func (s *store) Load() error {
	return nil
}

// Save is a no-op for memory stores (nothing to persist).
func (s *store) Save() error {
	return nil
}
