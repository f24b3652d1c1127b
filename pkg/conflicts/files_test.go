package conflicts_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifeomasylviadike/quotevault"
	"github.com/ifeomasylviadike/quotevault/pkg/conflicts"
)

func TestFileLedgerMissingFileStartsEmpty(t *testing.T) {
	ledger, err := conflicts.NewFileLedger(filepath.Join(t.TempDir(), "conflicts.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 0, ledger.Len())
}

func TestFileLedgerPendingSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conflicts.yaml")

	ledger, err := conflicts.NewFileLedger(path)
	require.NoError(t, err)
	require.NoError(t, ledger.Record(entry("A", "l1", "r1", "x")))
	require.NoError(t, ledger.Record(entry("B", "l2", "r2", "y")))

	// A fresh ledger on the same path sees the pending entries.
	reopened, err := conflicts.NewFileLedger(path)
	require.NoError(t, err)
	pending := reopened.Pending()
	require.Len(t, pending, 2)
	assert.Equal(t, "A", pending[0].ID)
	assert.Equal(t, "B", pending[1].ID)
	assert.Equal(t, "l1", pending[0].Local.Text, "snapshots survive the round trip")
	assert.True(t, pending[0].DetectedAt.Equal(entry("A", "l1", "r1", "x").DetectedAt))
}

func TestFileLedgerResolutionSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conflicts.yaml")
	store := quotevault.NewMemoryStore()

	ledger, err := conflicts.NewFileLedger(path)
	require.NoError(t, err)
	require.NoError(t, ledger.Record(entry("A", "l1", "r1", "x")))
	require.NoError(t, ledger.Record(entry("B", "l2", "r2", "y")))

	resolved, err := ledger.Resolve(0, conflicts.KeepRemote, store)
	require.NoError(t, err)
	assert.Equal(t, "A", resolved.ID)

	reopened, err := conflicts.NewFileLedger(path)
	require.NoError(t, err)
	pending := reopened.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, "B", pending[0].ID)
}
