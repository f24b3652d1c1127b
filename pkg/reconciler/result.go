package reconciler

import (
	"fmt"

	"github.com/ifeomasylviadike/quotevault/pkg/conflicts"
	"github.com/ifeomasylviadike/quotevault/pkg/quotes"
)

// Result holds the outcome of one merge pass.
type Result struct {
	// Records is the merged collection: remote-replaced entries and
	// local-only survivors in local order, then remote-new appends.
	Records []quotes.Record

	// Conflicts are the advisory entries detected during the pass,
	// snapshots of both versions at detection time.
	Conflicts []conflicts.Entry

	// Stats summarizes what the pass did.
	Stats Stats
}

// Stats summarizes the classification counts of a merge pass.
type Stats struct {
	// Added counts remote records with no local counterpart.
	Added int

	// Replaced counts local records overwritten by the remote version
	// (identical or conflicting).
	Replaced int

	// Identical counts replaced records whose content matched.
	Identical int

	// RetainedLocal counts local-only records that survived unchanged.
	RetainedLocal int
}

// NewResult creates an empty result.
func NewResult() *Result {
	return &Result{}
}

// HasConflicts reports whether the pass detected any conflicts.
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// Summary returns a one-line human-readable summary of the pass.
func (r *Result) Summary() string {
	return fmt.Sprintf("%d added, %d replaced (%d identical), %d local retained, %d conflicts",
		r.Stats.Added, r.Stats.Replaced, r.Stats.Identical, r.Stats.RetainedLocal, len(r.Conflicts))
}
