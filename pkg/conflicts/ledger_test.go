package conflicts_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifeomasylviadike/quotevault"
	"github.com/ifeomasylviadike/quotevault/pkg/conflicts"
	pkgerrors "github.com/ifeomasylviadike/quotevault/pkg/errors"
	"github.com/ifeomasylviadike/quotevault/pkg/quotes"
)

func entry(id, localText, remoteText, category string) conflicts.Entry {
	return conflicts.Entry{
		ID: id,
		Local: quotes.Record{
			ID: id, Text: localText, Category: category,
			UpdatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			Origin:    quotes.OriginLocal,
		},
		Remote: quotes.Record{
			ID: id, Text: remoteText, Category: category,
			Origin: quotes.OriginRemote,
		},
		DetectedAt: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestLedgerRecordAndPending(t *testing.T) {
	ledger := conflicts.NewLedger()
	assert.Equal(t, 0, ledger.Len())

	ledger.Record(entry("A", "l", "r", "x"))
	ledger.Record(entry("B", "l", "r", "x"))
	assert.Equal(t, 2, ledger.Len())

	pending := ledger.Pending()
	require.Len(t, pending, 2)
	assert.Equal(t, "A", pending[0].ID)
	assert.Equal(t, "B", pending[1].ID)

	// Pending returns a copy; mutating it must not touch the ledger.
	pending[0].ID = "mutated"
	assert.Equal(t, "A", ledger.Pending()[0].ID)
}

func TestLedgerNoDeduplication(t *testing.T) {
	// Repeated merge passes may append further entries for an
	// unresolved id; each is a discrete event.
	ledger := conflicts.NewLedger()
	ledger.Record(entry("A", "l1", "r1", "x"))
	ledger.Record(entry("A", "l2", "r2", "x"))
	assert.Equal(t, 2, ledger.Len())
}

func TestResolveKeepRemote(t *testing.T) {
	store := quotevault.NewMemoryStore()
	remote := quotes.Record{ID: "A", Text: "r", Category: "x", Origin: quotes.OriginRemote}
	require.NoError(t, store.Set(remote))

	ledger := conflicts.NewLedger()
	require.NoError(t, ledger.Record(entry("A", "l", "r", "x")))

	resolved, err := ledger.Resolve(0, conflicts.KeepRemote, store)
	require.NoError(t, err)
	assert.Equal(t, "A", resolved.ID, "Resolve returns the removed entry")

	// Entry removed, store untouched: the merge pass already applied
	// the remote version.
	assert.Equal(t, 0, ledger.Len())
	got, err := store.Get("A")
	require.NoError(t, err)
	assert.Equal(t, "r", got.Text)
	assert.Equal(t, quotes.OriginRemote, got.Origin)
}

func TestResolveKeepLocal(t *testing.T) {
	store := quotevault.NewMemoryStore()
	remote := quotes.Record{ID: "A", Text: "r", Category: "x", Origin: quotes.OriginRemote}
	require.NoError(t, store.Set(remote))

	ledger := conflicts.NewLedger()
	require.NoError(t, ledger.Record(entry("A", "l", "r", "x")))

	before := time.Now()
	_, err := ledger.Resolve(0, conflicts.KeepLocal, store)
	require.NoError(t, err)

	assert.Equal(t, 0, ledger.Len())
	got, err := store.Get("A")
	require.NoError(t, err)
	assert.Equal(t, "l", got.Text, "stored local version restored")
	assert.Equal(t, quotes.OriginLocal, got.Origin, "origin reset to local")
	assert.False(t, got.UpdatedAt.Before(before), "UpdatedAt refreshed to now")
}

func TestResolveKeepLocalReinsertsVanishedID(t *testing.T) {
	store := quotevault.NewMemoryStore()
	// The record was removed by an intervening operation.

	ledger := conflicts.NewLedger()
	require.NoError(t, ledger.Record(entry("A", "l", "r", "x")))

	_, err := ledger.Resolve(0, conflicts.KeepLocal, store)
	require.NoError(t, err)

	got, err := store.Get("A")
	require.NoError(t, err)
	assert.Equal(t, "l", got.Text, "local version re-inserted")
}

func TestResolveStaleIndex(t *testing.T) {
	store := quotevault.NewMemoryStore()
	ledger := conflicts.NewLedger()
	ledger.Record(entry("A", "l", "r", "x"))

	tests := []struct {
		name  string
		index int
	}{
		{"negative", -1},
		{"past end", 1},
		{"far past end", 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ledger.Resolve(tt.index, conflicts.KeepRemote, store)
			assert.True(t, errors.Is(err, pkgerrors.ErrIndexOutOfRange))
		})
	}

	// The pending entry is still there.
	assert.Equal(t, 1, ledger.Len())
}

func TestResolveInvalidChoice(t *testing.T) {
	store := quotevault.NewMemoryStore()
	ledger := conflicts.NewLedger()
	ledger.Record(entry("A", "l", "r", "x"))

	_, err := ledger.Resolve(0, conflicts.Choice("merge"), store)
	assert.True(t, pkgerrors.IsValidationError(err))
	assert.Equal(t, 1, ledger.Len())
}

func TestResolveSnapshotsUnaffectedByStoreMutations(t *testing.T) {
	store := quotevault.NewMemoryStore()
	require.NoError(t, store.Set(quotes.Record{ID: "A", Text: "r", Category: "x", Origin: quotes.OriginRemote}))

	ledger := conflicts.NewLedger()
	require.NoError(t, ledger.Record(entry("A", "original local", "r", "x")))

	// Unrelated mutation after detection, before resolution.
	require.NoError(t, store.Set(quotes.Record{ID: "A", Text: "mutated again", Category: "y", Origin: quotes.OriginRemote}))

	_, err := ledger.Resolve(0, conflicts.KeepLocal, store)
	require.NoError(t, err)

	got, err := store.Get("A")
	require.NoError(t, err)
	assert.Equal(t, "original local", got.Text, "resolution uses the snapshot, not live state")
}

func TestChoiceValid(t *testing.T) {
	assert.True(t, conflicts.KeepLocal.Valid())
	assert.True(t, conflicts.KeepRemote.Valid())
	assert.False(t, conflicts.Choice("").Valid())
	assert.False(t, conflicts.Choice("both").Valid())
}
