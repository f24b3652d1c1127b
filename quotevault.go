// Package quotevault keeps a local quote collection consistent with an
// unreliable remote source of record. The client owns the record store
// and the conflict ledger, drives reconciliation cycles on demand or on
// a fixed interval, and notifies subscribers of sync outcomes.
package quotevault

import (
	"context"
	"sync"
	"time"

	"github.com/ifeomasylviadike/quotevault/internal/gateway"
	"github.com/ifeomasylviadike/quotevault/pkg/conflicts"
	"github.com/ifeomasylviadike/quotevault/pkg/quotes"
	"github.com/ifeomasylviadike/quotevault/pkg/reconciler"
)

// Client manages a quote collection with remote reconciliation,
// automatic sync, and event notifications.
type Client interface {
	// Store returns the record store the client owns.
	Store() quotes.Store

	// Ledger returns the conflict ledger the client owns.
	Ledger() *conflicts.Ledger

	// Sync runs one reconciliation cycle: fetch, merge, replicate.
	// A cycle already in flight makes Sync a no-op returning
	// ErrSyncInProgress.
	Sync(ctx context.Context) error

	// ResolveConflict applies a manual resolution to the pending
	// conflict at index.
	ResolveConflict(index int, choice conflicts.Choice) error

	// AutoSyncOn begins interval-driven sync cycles.
	AutoSyncOn() error

	// AutoSyncOff stops interval-driven sync cycles.
	AutoSyncOff() error

	// OnNotification registers a callback for sync notifications.
	OnNotification(NotificationHook)
}

// client is the internal implementation of the Client interface.
type client struct {
	store   quotes.Store
	ledger  *conflicts.Ledger
	gateway gateway.Gateway
	rec     reconciler.Reconciler
	options *options
	hooks   *hooks

	// state is the sync cycle state machine; see sync.go.
	state cycleState

	mu         sync.Mutex // guards the ticker fields below
	syncTicker *time.Ticker
	syncCancel context.CancelFunc
	stopCh     chan struct{}
}

// New creates a new Client with the given options.
func New(opts ...Option) (Client, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	ledger := conflicts.NewLedger()
	if options.ledgerPath != "" {
		ledger, err = conflicts.NewFileLedger(options.ledgerPath)
		if err != nil {
			return nil, err
		}
	}

	c := &client{
		store:   options.store,
		ledger:  ledger,
		gateway: options.gateway,
		rec:     reconciler.New(),
		options: options,
		hooks:   newHooks(),
		stopCh:  make(chan struct{}),
	}
	return c, nil
}

// Store implements Client.
func (c *client) Store() quotes.Store {
	return c.store
}

// Ledger implements Client.
func (c *client) Ledger() *conflicts.Ledger {
	return c.ledger
}

// ResolveConflict implements Client. Every resolution persists the
// store and emits a conflict-resolved notification for the
// presentation layer to refresh on. The notification is built from the
// entry Resolve actually removed, so it always names the right record.
func (c *client) ResolveConflict(index int, choice conflicts.Choice) error {
	entry, err := c.ledger.Resolve(index, choice, c.store)
	if err != nil {
		return err
	}

	c.hooks.notify(Notification{
		Kind:    NotificationConflictResolved,
		Message: "conflict for " + entry.ID + " resolved (" + choice.String() + ")",
	})
	return nil
}

// OnNotification implements Client.
func (c *client) OnNotification(fn NotificationHook) {
	c.hooks.OnNotification(fn)
}
