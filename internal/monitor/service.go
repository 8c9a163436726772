// Package monitor owns the per-wallet polling schedule. It keeps exactly one
// recurring job per watched address, detects transaction-count changes against
// a stored baseline, and dispatches a notification to every recipient of the
// wallet when new activity is observed.
package monitor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/kaswatch/internal/ledger"
	"github.com/gabapcia/kaswatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/kaswatch/internal/txrender"
)

// ErrServiceClosed is returned by Watch after Close has been called.
var ErrServiceClosed = errors.New("monitor service closed")

const (
	// defaultPollInterval is the tick interval applied to every wallet job
	// unless overridden with WithPollInterval.
	defaultPollInterval = 60 * time.Second

	// recentTransactionLimit bounds both the baseline transaction list kept
	// per wallet and the fetch size on a detected change.
	recentTransactionLimit = 10
)

// Service manages the lifecycle of wallet polling jobs.
type Service interface {
	// Watch subscribes a recipient to activity notifications for the given
	// wallet address. The first recipient of an address starts its polling
	// job; subsequent recipients share the existing job, never spawning a
	// second timer. Watch also seeds the wallet's observation baseline when
	// none exists yet (best effort; a transiently unavailable ledger defers
	// seeding to the first successful tick).
	Watch(ctx context.Context, address string, recipient Recipient) error

	// Unwatch removes a recipient from the wallet's job. Removing the last
	// recipient cancels the job's timer and deletes the wallet's observation
	// state. Unwatch on an unknown address or recipient is a no-op.
	Unwatch(ctx context.Context, address string, recipient Recipient) error

	// Close cancels every polling job. The service cannot be reused after.
	Close()
}

type service struct {
	mu     sync.Mutex // protects jobs and closed
	jobs   map[string]*job
	closed bool

	ledger       ledger.Client
	notifier     Notifier
	renderer     *txrender.Renderer
	observations ObservationStorage

	retry             retry.Retry
	pollInterval      time.Duration
	onDispatchFailure dispatchFailureHandler
}

// Compile-time check that *service implements the Service interface.
var _ Service = (*service)(nil)

// Close stops all polling jobs and rejects further Watch calls.
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		j.cancel()
	}

	s.jobs = make(map[string]*job)
	s.closed = true
}

// config holds the optional settings applied by New.
type config struct {
	observations      ObservationStorage
	retry             retry.Retry
	pollInterval      time.Duration
	onDispatchFailure dispatchFailureHandler
}

// Option customizes the monitor service created by New.
type Option func(*config)

// WithPollInterval overrides the tick interval used for every wallet job.
// Default: 60 seconds.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithObservationStorage replaces the default in-process observation state
// store with a custom implementation (e.g. Redis-backed, so baselines survive
// restarts).
func WithObservationStorage(os ObservationStorage) Option {
	return func(c *config) {
		c.observations = os
	}
}

// WithRetry replaces the retry policy applied to notification deliveries.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithDispatchFailureHandler replaces the handler invoked when a notification
// could not be delivered after all retry attempts. The default handler logs
// the failure.
func WithDispatchFailureHandler(f dispatchFailureHandler) Option {
	return func(c *config) {
		c.onDispatchFailure = f
	}
}

// New creates a monitor service that polls wallets through the given ledger
// client, renders detected activity with the renderer, and pushes the result
// through the notifier.
func New(lc ledger.Client, n Notifier, r *txrender.Renderer, opts ...Option) *service {
	cfg := config{
		observations:      NewMemoryObservationStorage(),
		retry:             retry.New(),
		pollInterval:      defaultPollInterval,
		onDispatchFailure: defaultOnDispatchFailure,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		jobs:              make(map[string]*job),
		ledger:            lc,
		notifier:          n,
		renderer:          r,
		observations:      cfg.observations,
		retry:             cfg.retry,
		pollInterval:      cfg.pollInterval,
		onDispatchFailure: cfg.onDispatchFailure,
	}
}
