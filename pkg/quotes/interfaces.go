package quotes

// Reader provides read-only access to the record collection.
type Reader interface {
	// List returns all records in collection order.
	List() []Record

	// Get returns the record with the given id.
	Get(id string) (Record, error)

	// Len returns the number of records.
	Len() int

	// Categories returns the distinct category labels, collated.
	Categories() []string

	// ListByCategory returns records carrying the given category label.
	ListByCategory(category string) []Record
}

// Writer provides mutation operations on the record collection.
type Writer interface {
	// Set upserts a record by id. New ids append in collection order.
	Set(rec Record) error

	// Delete removes the record with the given id.
	Delete(id string) error

	// Replace atomically removes the record with oldID and inserts rec
	// in its position. This is the id-identity change point used when a
	// replicated record acquires its remote-assigned id.
	Replace(oldID string, rec Record) error

	// ReplaceAll swaps the whole collection for the given records.
	ReplaceAll(recs []Record) error
}

// Persister handles loading and saving the collection. Persistence is
// whole-collection replace-on-save; there is no incremental contract.
type Persister interface {
	Load() error
	Save() error
}

// Store is the complete record store combining read, write, and
// persistence capabilities.
type Store interface {
	Reader
	Writer
	Persister
}
