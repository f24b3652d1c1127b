package quotevault

import (
	"time"

	"github.com/ifeomasylviadike/quotevault/internal/gateway"
	"github.com/ifeomasylviadike/quotevault/internal/quotes/memory"
	"github.com/ifeomasylviadike/quotevault/pkg/errors"
	"github.com/ifeomasylviadike/quotevault/pkg/quotes"
)

// DefaultSyncInterval is the period between automatic sync cycles.
const DefaultSyncInterval = 30 * time.Second

// Option configures a Client.
type Option func(*options) error

// options holds client configuration.
type options struct {
	store        quotes.Store
	gateway      gateway.Gateway
	ledgerPath   string
	syncInterval time.Duration
}

// newOptions applies options over defaults.
func newOptions(opts ...Option) (*options, error) {
	o := &options{
		syncInterval: DefaultSyncInterval,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	if o.store == nil {
		o.store = memory.NewStore()
	}
	return o, nil
}

// WithStore sets the record store the client owns. Defaults to an
// in-memory store.
func WithStore(store quotes.Store) Option {
	return func(o *options) error {
		if store == nil {
			return errors.NewValidationError("store", nil, "cannot be nil")
		}
		o.store = store
		return nil
	}
}

// WithGateway sets the remote gateway used for fetch and submit.
func WithGateway(gw gateway.Gateway) Option {
	return func(o *options) error {
		if gw == nil {
			return errors.NewValidationError("gateway", nil, "cannot be nil")
		}
		o.gateway = gw
		return nil
	}
}

// WithRemote configures an HTTP gateway against the given base URL.
// An empty apiKey sends unauthenticated requests.
func WithRemote(baseURL, apiKey string) Option {
	return func(o *options) error {
		if baseURL == "" {
			return errors.NewValidationError("baseURL", baseURL, "cannot be empty")
		}
		o.gateway = gateway.New(baseURL, apiKey)
		return nil
	}
}

// WithLedgerPath backs the conflict ledger with a YAML file at the
// given path, so pending conflicts survive across processes. Defaults
// to an in-memory ledger.
func WithLedgerPath(path string) Option {
	return func(o *options) error {
		if path == "" {
			return errors.NewValidationError("ledgerPath", path, "cannot be empty")
		}
		o.ledgerPath = path
		return nil
	}
}

// WithSyncInterval sets the period between automatic sync cycles.
func WithSyncInterval(interval time.Duration) Option {
	return func(o *options) error {
		if interval <= 0 {
			return errors.NewValidationError("syncInterval", interval, "must be positive")
		}
		o.syncInterval = interval
		return nil
	}
}
