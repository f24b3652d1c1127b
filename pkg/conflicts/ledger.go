package conflicts

import (
	"sync"
	"time"

	"github.com/ifeomasylviadike/quotevault/pkg/errors"
	"github.com/ifeomasylviadike/quotevault/pkg/logging"
	"github.com/ifeomasylviadike/quotevault/pkg/quotes"
)

// Ledger is an ordered, append-only sequence of pending conflict
// entries. Entries leave the ledger only through explicit resolution;
// they never expire on their own. A ledger created with NewFileLedger
// persists every mutation, so pending conflicts survive the process.
//
// The ledger deliberately does not deduplicate by id: repeated merge
// passes may append further entries for an unresolved id, and each
// detected conflict is a discrete event requiring its own resolution.
type Ledger struct {
	mu      sync.RWMutex
	entries []Entry
	path    string
	now     func() time.Time
}

// NewLedger creates an empty in-memory conflict ledger.
func NewLedger() *Ledger {
	return &Ledger{
		now: time.Now,
	}
}

// Record appends detected conflicts to the ledger and persists it when
// file-backed. The entries stay pending in memory even when the
// persist fails.
func (l *Ledger) Record(entries ...Entry) error {
	if len(entries) == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entries...)
	return l.persistLocked()
}

// Pending returns a copy of the pending entries in detection order.
func (l *Ledger) Pending() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of pending entries.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Resolve applies a manual resolution to the pending entry at index,
// removes it from the ledger, and returns the resolved entry.
//
// KeepRemote removes the entry only: the merge pass already applied the
// remote version to the store. KeepLocal writes the snapshotted local
// version back (origin reset to local, UpdatedAt refreshed); if the id
// vanished from the store in the meantime the local version is
// re-inserted. Either way the store is persisted.
//
// A stale index fails with ErrIndexOutOfRange. That is a programming
// contract error: callers must not present indices for entries already
// resolved.
func (l *Ledger) Resolve(index int, choice Choice, store quotes.Store) (Entry, error) {
	if !choice.Valid() {
		return Entry{}, errors.NewValidationError("choice", choice.String(), "must be keep-local or keep-remote")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.entries) {
		return Entry{}, errors.NewIndexError(index, len(l.entries))
	}
	entry := l.entries[index]

	if choice == KeepLocal {
		restored := entry.Local
		restored.Origin = quotes.OriginLocal
		restored.UpdatedAt = l.now()

		// Set has upsert semantics, covering both the overwrite case
		// and the re-insert case when the id was removed in between.
		if err := store.Set(restored); err != nil {
			return Entry{}, err
		}
		if err := store.Save(); err != nil {
			return Entry{}, err
		}
		logging.Debug().
			Str("id", entry.ID).
			Msg("Restored local version for conflict")
	} else {
		// Remote version already lives in the store; persist so the
		// resolution outlives the process like every other resolution.
		if err := store.Save(); err != nil {
			return Entry{}, err
		}
	}

	l.entries = append(l.entries[:index], l.entries[index+1:]...)
	if err := l.persistLocked(); err != nil {
		return Entry{}, err
	}
	return entry, nil
}
