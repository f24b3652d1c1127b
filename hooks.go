package quotevault

import "sync"

// NotificationKind classifies a sync notification.
type NotificationKind string

const (
	// NotificationSyncComplete signals a cycle that merged cleanly.
	NotificationSyncComplete NotificationKind = "sync-complete"

	// NotificationSyncError signals an aborted cycle.
	NotificationSyncError NotificationKind = "sync-error"

	// NotificationConflictsDetected signals a cycle that produced
	// conflicts; Count carries how many.
	NotificationConflictsDetected NotificationKind = "conflicts-detected"

	// NotificationConflictResolved signals a manual resolution.
	NotificationConflictResolved NotificationKind = "conflict-resolved"
)

// Notification is a non-blocking message for the presentation layer.
type Notification struct {
	Kind    NotificationKind
	Message string
	Count   int
}

// NotificationHook is called for every emitted notification.
type NotificationHook func(Notification)

// hooks manages notification callbacks.
type hooks struct {
	mu             sync.RWMutex
	onNotification []NotificationHook
}

// newHooks creates a new hooks instance.
func newHooks() *hooks {
	return &hooks{}
}

// OnNotification registers a callback for notifications.
func (h *hooks) OnNotification(fn NotificationHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onNotification = append(h.onNotification, fn)
}

// notify fans a notification out to all registered callbacks.
func (h *hooks) notify(n Notification) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onNotification {
		fn(n)
	}
}
