// Package reconciler merges a freshly fetched remote snapshot with the
// current local collection. It classifies every remote record as new,
// identical, or conflicting, applies unconditional remote precedence,
// and emits advisory conflict entries for later manual override.
package reconciler

import (
	"time"

	"github.com/ifeomasylviadike/quotevault/pkg/conflicts"
	"github.com/ifeomasylviadike/quotevault/pkg/quotes"
)

// Reconciler merges remote snapshots against local collections.
type Reconciler interface {
	// Merge combines a remote snapshot with the local collection and
	// returns the merged collection plus any detected conflicts.
	// Merge is deterministic, idempotent, and does not mutate its inputs.
	Merge(remote, local []quotes.Record) *Result
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	now func() time.Time
}

// New creates a new Reconciler with options.
func New(opts ...Option) Reconciler {
	options := newOptions(opts...)
	return &reconciler{
		now: options.now,
	}
}

// Merge implements the index-by-id, classify, union algorithm.
//
// Remote precedence is unconditional: a remote record always replaces
// the same-id local record in the output, whether or not a conflict
// entry is recorded. Conflict entries are advisory bookkeeping for the
// manual resolution protocol, not a blocking gate.
func (r *reconciler) Merge(remote, local []quotes.Record) *Result {
	result := NewResult()

	// Index both inputs by id. Duplicate ids within one input are a
	// data-quality defect, not a conflict: last write wins.
	remoteByID := indexByID(remote)
	localByID := indexByID(local)

	detectedAt := r.now()

	// Walk the local collection in order. Records the remote also has
	// are replaced by the remote version; local-only records survive
	// unchanged, keeping their relative order.
	seenLocal := make(map[string]struct{}, len(local))
	for _, rec := range local {
		if _, ok := seenLocal[rec.ID]; ok {
			continue
		}
		seenLocal[rec.ID] = struct{}{}

		localRec := localByID[rec.ID]
		remoteRec, shared := remoteByID[rec.ID]
		if !shared {
			result.Records = append(result.Records, localRec)
			result.Stats.RetainedLocal++
			continue
		}

		if !remoteRec.ContentEquals(localRec) {
			result.Conflicts = append(result.Conflicts, conflicts.Entry{
				ID:         localRec.ID,
				Local:      localRec,
				Remote:     withRemoteOrigin(remoteRec),
				DetectedAt: detectedAt,
			})
		} else {
			result.Stats.Identical++
		}

		result.Records = append(result.Records, withRemoteOrigin(remoteRec))
		result.Stats.Replaced++
	}

	// Remote records with no local counterpart append as new entries,
	// in snapshot order.
	seenRemote := make(map[string]struct{}, len(remote))
	for _, rec := range remote {
		if _, ok := seenRemote[rec.ID]; ok {
			continue
		}
		seenRemote[rec.ID] = struct{}{}

		if _, shared := localByID[rec.ID]; shared {
			continue
		}
		result.Records = append(result.Records, withRemoteOrigin(remoteByID[rec.ID]))
		result.Stats.Added++
	}

	return result
}

// indexByID builds an id index over a record sequence, last write wins.
func indexByID(recs []quotes.Record) map[string]quotes.Record {
	byID := make(map[string]quotes.Record, len(recs))
	for _, rec := range recs {
		byID[rec.ID] = rec
	}
	return byID
}

// withRemoteOrigin returns a copy of the record marked remote-origin.
func withRemoteOrigin(rec quotes.Record) quotes.Record {
	rec.Origin = quotes.OriginRemote
	return rec
}
