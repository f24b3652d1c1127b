// Package quotes defines the quote record data model and the store
// interfaces the reconciliation engine operates against.
package quotes

import "time"

// Origin marks the provenance of a record: created locally and not yet
// confirmed by the remote source, or assigned/confirmed by the remote.
type Origin string

const (
	// OriginLocal marks a record created locally, not yet replicated.
	OriginLocal Origin = "local"

	// OriginRemote marks a record confirmed by the remote source of record.
	OriginRemote Origin = "remote"
)

// String returns the string representation of an origin.
func (o Origin) String() string {
	return string(o)
}

// Record is a single quote with its content, category label, and
// provenance. IDs live in two namespaces: locally generated ids
// (opaque, time+random, never reused) and remote-assigned ids
// (stable across fetches).
type Record struct {
	ID        string    `json:"id" yaml:"id" validate:"required"`
	Text      string    `json:"text" yaml:"text" validate:"required"`
	Category  string    `json:"category" yaml:"category" validate:"required"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
	Origin    Origin    `json:"origin" yaml:"origin"`
}

// IsLocal reports whether the record was created locally and has not
// yet been confirmed by the remote source.
func (r Record) IsLocal() bool {
	return r.Origin == OriginLocal
}

// ContentEquals reports whether two records carry the same user-visible
// content. UpdatedAt and Origin are bookkeeping and do not participate.
func (r Record) ContentEquals(other Record) bool {
	return r.Text == other.Text && r.Category == other.Category
}

// New creates a validated local-origin record with a fresh local id.
func New(text, category string) (Record, error) {
	rec := Record{
		ID:        NewLocalID(),
		Text:      text,
		Category:  category,
		UpdatedAt: time.Now(),
		Origin:    OriginLocal,
	}
	if err := Validate(rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}
