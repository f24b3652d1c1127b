// Package conflicts holds pending local/remote divergences and the
// per-entry manual resolution protocol.
package conflicts

import (
	"time"

	"github.com/ifeomasylviadike/quotevault/pkg/quotes"
)

// Entry is a detected divergence between the local and remote versions
// of the same id, pending manual resolution. Both versions are value
// snapshots taken at detection time, so resolving later is unaffected
// by unrelated store mutations in between.
type Entry struct {
	ID         string        `json:"id" yaml:"id"`
	Local      quotes.Record `json:"local" yaml:"local"`
	Remote     quotes.Record `json:"remote" yaml:"remote"`
	DetectedAt time.Time     `json:"detected_at" yaml:"detected_at"`
}

// Choice selects which version a resolution keeps.
type Choice string

const (
	// KeepLocal restores the snapshotted local version into the store.
	KeepLocal Choice = "keep-local"

	// KeepRemote accepts the remote version the merge pass already applied.
	KeepRemote Choice = "keep-remote"
)

// String returns the string representation of a choice.
func (c Choice) String() string {
	return string(c)
}

// Valid reports whether the choice is one of the known resolutions.
func (c Choice) Valid() bool {
	return c == KeepLocal || c == KeepRemote
}
