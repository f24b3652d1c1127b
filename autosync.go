package quotevault

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/ifeomasylviadike/quotevault/pkg/errors"
	"github.com/ifeomasylviadike/quotevault/pkg/logging"
)

// AutoSyncOn implements Client. It begins interval-driven sync cycles
// on the configured period. The timer trigger and the manual trigger
// invoke the same cycle function; a tick landing while a cycle is in
// flight is dropped.
func (c *client) AutoSyncOn() error {
	if c.options.syncInterval <= 0 {
		return &errors.ValidationError{
			Field:   "syncInterval",
			Value:   c.options.syncInterval,
			Message: "sync interval must be positive",
		}
	}

	// Stop any existing auto sync to prevent resource leaks
	if err := c.AutoSyncOff(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Recreate stopCh since it was closed in AutoSyncOff
	c.stopCh = make(chan struct{})
	c.syncTicker = time.NewTicker(c.options.syncInterval)

	// Create a cancellable context for the sync goroutine
	ctx, cancel := context.WithCancel(context.Background())
	c.syncCancel = cancel

	ticker := c.syncTicker
	stopCh := c.stopCh

	go func(parentCtx context.Context) {
		for {
			select {
			case <-ticker.C:
				err := c.Sync(parentCtx)
				if err != nil {
					if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
						return
					}
					if stderrors.Is(err, errors.ErrSyncInProgress) {
						// Previous cycle still running; drop this tick.
						continue
					}
					// Log other errors but continue
					logging.Error().Err(err).Msg("Auto sync failed")
				}
			case <-parentCtx.Done():
				return
			case <-stopCh:
				return
			}
		}
	}(ctx)

	return nil
}

// AutoSyncOff implements Client. It stops interval-driven sync cycles.
func (c *client) AutoSyncOff() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.syncTicker != nil {
		c.syncTicker.Stop()
		c.syncTicker = nil
	}
	if c.syncCancel != nil {
		c.syncCancel()
		c.syncCancel = nil
	}
	if c.stopCh != nil {
		select {
		case <-c.stopCh:
			// Already closed
		default:
			close(c.stopCh)
		}
	}
	return nil
}
