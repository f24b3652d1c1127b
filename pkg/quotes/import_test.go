package quotes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifeomasylviadike/quotevault"
	"github.com/ifeomasylviadike/quotevault/pkg/quotes"
)

func TestImportAcceptsValidRecords(t *testing.T) {
	store := quotevault.NewMemoryStore()

	accepted, err := quotes.Import(store, []quotes.Record{
		{Text: "one", Category: "a"},
		{Text: "two", Category: "b"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, accepted)
	assert.Equal(t, 2, store.Len())

	// Imported records without ids get fresh local identities.
	for _, rec := range store.List() {
		assert.True(t, quotes.IsLocalID(rec.ID))
		assert.Equal(t, quotes.OriginLocal, rec.Origin)
		assert.False(t, rec.UpdatedAt.IsZero())
	}
}

func TestImportSkipsInvalidRecords(t *testing.T) {
	store := quotevault.NewMemoryStore()

	accepted, err := quotes.Import(store, []quotes.Record{
		{Text: "valid", Category: "a"},
		{Text: "", Category: "a"},
		{Text: "no category", Category: ""},
		{Text: "   ", Category: "a"},
		{Text: "also valid", Category: "b"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, accepted, "invalid items skipped silently")
	assert.Equal(t, 2, store.Len())
}

func TestImportPreservesExistingIDs(t *testing.T) {
	store := quotevault.NewMemoryStore()

	accepted, err := quotes.Import(store, []quotes.Record{
		{ID: "R7", Text: "remote export", Category: "a", Origin: quotes.OriginRemote},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, accepted)

	got, err := store.Get("R7")
	require.NoError(t, err)
	assert.Equal(t, quotes.OriginRemote, got.Origin)
}

func TestImportEmpty(t *testing.T) {
	store := quotevault.NewMemoryStore()
	accepted, err := quotes.Import(store, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, accepted)
}
