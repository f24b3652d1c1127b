// Package base provides the common record collection functionality
// embedded by the concrete store implementations (memory, files).
package base

import (
	"sync"

	"github.com/ifeomasylviadike/quotevault/pkg/errors"
	"github.com/ifeomasylviadike/quotevault/pkg/quotes"
)

// Collection is an ordered, id-indexed record collection safe for
// concurrent reads interleaved with mutations. Readers always observe
// either the pre- or post-mutation state, never a torn one.
type Collection struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]quotes.Record
}

// NewCollection creates an empty collection.
func NewCollection() Collection {
	return Collection{
		byID: make(map[string]quotes.Record),
	}
}

// List returns a copy of all records in collection order.
func (c *Collection) List() []quotes.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]quotes.Record, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Get returns the record with the given id.
func (c *Collection) Get(id string) (quotes.Record, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.byID[id]
	if !ok {
		return quotes.Record{}, errors.NewNotFoundError("quote", id)
	}
	return rec, nil
}

// Len returns the number of records.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// Categories returns the distinct category labels, collated.
func (c *Collection) Categories() []string {
	c.mu.RLock()
	seen := make(map[string]struct{})
	var cats []string
	for _, id := range c.order {
		cat := c.byID[id].Category
		if _, ok := seen[cat]; !ok {
			seen[cat] = struct{}{}
			cats = append(cats, cat)
		}
	}
	c.mu.RUnlock()

	quotes.SortCategories(cats)
	return cats
}

// ListByCategory returns records carrying the given category label.
func (c *Collection) ListByCategory(category string) []quotes.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []quotes.Record
	for _, id := range c.order {
		if rec := c.byID[id]; rec.Category == category {
			out = append(out, rec)
		}
	}
	return out
}

// Set upserts a record by id. New ids append in collection order.
func (c *Collection) Set(rec quotes.Record) error {
	if rec.ID == "" {
		return errors.NewValidationError("id", rec.ID, "cannot be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[rec.ID]; !ok {
		c.order = append(c.order, rec.ID)
	}
	c.byID[rec.ID] = rec
	return nil
}

// Delete removes the record with the given id.
func (c *Collection) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[id]; !ok {
		return errors.NewNotFoundError("quote", id)
	}
	delete(c.byID, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// Replace atomically removes oldID and inserts rec in its position.
// If oldID is absent the record is appended instead, so a replication
// result is never lost to an intervening delete. If rec.ID already
// exists elsewhere in the collection the two entries collapse into the
// existing slot, keeping ids unique.
func (c *Collection) Replace(oldID string, rec quotes.Record) error {
	if rec.ID == "" {
		return errors.NewValidationError("id", rec.ID, "cannot be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[oldID]; !ok {
		if _, exists := c.byID[rec.ID]; !exists {
			c.order = append(c.order, rec.ID)
		}
		c.byID[rec.ID] = rec
		return nil
	}

	delete(c.byID, oldID)
	if _, exists := c.byID[rec.ID]; exists {
		// rec.ID already holds a slot; drop oldID's slot entirely so
		// the id never appears twice in order.
		for i, existing := range c.order {
			if existing == oldID {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
	} else {
		for i, existing := range c.order {
			if existing == oldID {
				c.order[i] = rec.ID
				break
			}
		}
	}
	c.byID[rec.ID] = rec
	return nil
}

// ReplaceAll swaps the whole collection for the given records.
// Duplicate ids within the input resolve last-write-wins.
func (c *Collection) ReplaceAll(recs []quotes.Record) error {
	order := make([]string, 0, len(recs))
	byID := make(map[string]quotes.Record, len(recs))
	for _, rec := range recs {
		if rec.ID == "" {
			return errors.NewValidationError("id", rec.ID, "cannot be empty")
		}
		if _, ok := byID[rec.ID]; !ok {
			order = append(order, rec.ID)
		}
		byID[rec.ID] = rec
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.order = order
	c.byID = byID
	return nil
}
