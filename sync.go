package quotevault

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/ifeomasylviadike/quotevault/pkg/errors"
	"github.com/ifeomasylviadike/quotevault/pkg/logging"
)

// Cycle states. A cycle is entered from Idle only; a trigger while any
// other state is active is dropped, so two cycles never interleave and
// a double merge cannot race.
const (
	stateIdle int32 = iota
	stateFetching
	stateMerging
	stateReplicating
)

// cycleState is the orchestrator's state machine flag.
type cycleState struct {
	v atomic.Int32
}

func (s *cycleState) enter() bool {
	return s.v.CompareAndSwap(stateIdle, stateFetching)
}

func (s *cycleState) set(state int32) {
	s.v.Store(state)
}

// Sync implements Client. One cycle runs fetch, merge, and replicate in
// order; manual and timer triggers both land here and are
// indistinguishable to the orchestrator.
func (c *client) Sync(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if c.gateway == nil {
		return errors.NewValidationError("gateway", nil, "no remote configured")
	}

	// Drop semantics: a trigger during an in-flight cycle is a no-op.
	if !c.state.enter() {
		return errors.ErrSyncInProgress
	}
	defer c.state.set(stateIdle)

	ctx = logging.WithCycleID(ctx, uuid.NewString()[:8])
	logger := logging.FromContext(ctx)

	// Fetching. A failed fetch aborts the cycle before any mutation:
	// local state is never partially overwritten.
	snapshot, err := c.gateway.Fetch(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Fetch failed, cycle aborted")
		c.hooks.notify(Notification{
			Kind:    NotificationSyncError,
			Message: "sync failed: " + err.Error(),
		})
		return errors.WrapSync("fetch", err)
	}

	// Merging.
	c.state.set(stateMerging)
	result := c.rec.Merge(snapshot, c.store.List())

	if err := c.store.ReplaceAll(result.Records); err != nil {
		c.hooks.notify(Notification{
			Kind:    NotificationSyncError,
			Message: "sync failed: " + err.Error(),
		})
		return errors.WrapSync("merge", err)
	}
	if err := c.store.Save(); err != nil {
		c.hooks.notify(Notification{
			Kind:    NotificationSyncError,
			Message: "sync failed: " + err.Error(),
		})
		return errors.WrapSync("merge", err)
	}

	logger.Info().
		Int("added", result.Stats.Added).
		Int("replaced", result.Stats.Replaced).
		Int("retained_local", result.Stats.RetainedLocal).
		Int("conflicts", len(result.Conflicts)).
		Msg("Merge pass applied")

	if result.HasConflicts() {
		if err := c.ledger.Record(result.Conflicts...); err != nil {
			// Entries stay pending in memory; only the persist failed.
			logger.Warn().Err(err).Msg("Failed to persist conflict ledger")
		}
		c.hooks.notify(Notification{
			Kind:    NotificationConflictsDetected,
			Message: fmt.Sprintf("%d conflicts detected", len(result.Conflicts)),
			Count:   len(result.Conflicts),
		})
	} else {
		c.hooks.notify(Notification{
			Kind:    NotificationSyncComplete,
			Message: result.Summary(),
		})
	}

	// Replicating. Best effort, sequential, per-record isolation: a
	// failed submit leaves the record local-origin for the next cycle
	// and never aborts the cycle.
	c.state.set(stateReplicating)
	c.replicate(ctx)

	return nil
}

// replicate submits every local-origin record to the remote. On success
// the record is rewritten in place under its remote-assigned id — the
// single point where a record's id changes identity.
func (c *client) replicate(ctx context.Context) {
	logger := logging.FromContext(ctx)

	for _, rec := range c.store.List() {
		if !rec.IsLocal() {
			continue
		}

		confirmed, err := c.gateway.Submit(ctx, rec)
		if err != nil {
			// Silent to the user: the condition self-heals next cycle.
			logger.Warn().
				Err(err).
				Str("id", rec.ID).
				Msg("Replication failed, will retry next cycle")
			continue
		}

		if err := c.store.Replace(rec.ID, confirmed); err != nil {
			logger.Error().
				Err(err).
				Str("id", rec.ID).
				Msg("Failed to rewrite replicated record")
			continue
		}
		if err := c.store.Save(); err != nil {
			logger.Error().
				Err(err).
				Str("id", confirmed.ID).
				Msg("Failed to persist replicated record")
		}

		logger.Info().
			Str("local_id", rec.ID).
			Str("remote_id", confirmed.ID).
			Msg("Record replicated")
	}
}
