package monitor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gabapcia/kaswatch/internal/ledger"
	"github.com/gabapcia/kaswatch/internal/pkg/logger"
	"github.com/gabapcia/kaswatch/internal/pkg/types"
	"github.com/gabapcia/kaswatch/internal/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// job is the polling unit for a single wallet address. There is at most one
// job per address, regardless of how many recipients subscribed to it.
type job struct {
	address string
	cancel  context.CancelFunc

	// inFlight guards against overlapping ticks for the same wallet: a tick
	// that is still waiting on the ledger causes subsequent ticks to be
	// skipped instead of mutating the observation state concurrently.
	inFlight atomic.Bool

	mu         sync.Mutex // protects recipients
	recipients types.Set[Recipient]
}

// addRecipient registers a recipient on the job. Adding an already registered
// recipient is a no-op.
func (j *job) addRecipient(r Recipient) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.recipients.Add(r)
}

// removeRecipient drops a recipient and reports how many remain.
func (j *job) removeRecipient(r Recipient) int {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.recipients.Delete(r)
	return len(j.recipients)
}

// snapshotRecipients copies the current recipient set so dispatch can iterate
// without holding the lock across network calls.
func (j *job) snapshotRecipients() []Recipient {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.recipients.ToSlice()
}

// Watch subscribes a recipient to the wallet's activity. See Service.Watch.
func (s *service) Watch(ctx context.Context, address string, recipient Recipient) error {
	if err := validator.Validate(recipient); err != nil {
		return err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrServiceClosed
	}

	if existing, ok := s.jobs[address]; ok {
		// Address already monitored: grow the recipient set, never spawn a
		// second timer for the same wallet.
		existing.addRecipient(recipient)
		s.mu.Unlock()
		return nil
	}

	jobCtx, cancel := context.WithCancel(context.Background())
	j := &job{
		address:    address,
		cancel:     cancel,
		recipients: types.NewSet(recipient),
	}
	s.jobs[address] = j
	s.mu.Unlock()

	s.seedObservation(ctx, address)

	go s.runJob(jobCtx, j)

	logger.Info(ctx, "wallet polling job started",
		"wallet.address", address,
		"poll.interval", s.pollInterval.String(),
	)
	return nil
}

// Unwatch drops a recipient from the wallet's job. See Service.Unwatch.
func (s *service) Unwatch(ctx context.Context, address string, recipient Recipient) error {
	s.mu.Lock()
	j, ok := s.jobs[address]
	if !ok {
		s.mu.Unlock()
		return nil
	}

	remaining := j.removeRecipient(recipient)
	if remaining > 0 {
		s.mu.Unlock()
		return nil
	}

	// Last recipient gone: stop the timer and drop the wallet's baseline so
	// a later re-registration starts from a fresh snapshot.
	delete(s.jobs, address)
	s.mu.Unlock()

	j.cancel()

	if err := s.observations.DeleteObservation(ctx, address); err != nil {
		logger.Error(ctx, "failed to delete wallet observation state",
			"wallet.address", address,
			"error", err,
		)
	}

	logger.Info(ctx, "wallet polling job stopped", "wallet.address", address)
	return nil
}

// seedObservation records the wallet's initial baseline if none exists yet.
//
// Seeding is best effort: if the ledger is unavailable the baseline stays
// absent and the first successful tick creates it instead (and reports no
// change for that tick).
func (s *service) seedObservation(ctx context.Context, address string) {
	if _, err := s.observations.LoadObservation(ctx, address); err == nil {
		return // baseline already present (e.g. resumed after restart)
	} else if !errors.Is(err, ErrNoObservation) {
		logger.Error(ctx, "failed to load wallet observation state",
			"wallet.address", address,
			"error", err,
		)
		return
	}

	count, err := s.ledger.FetchTransactionCount(ctx, address)
	if err != nil {
		logger.Warn(ctx, "baseline seeding deferred to first tick",
			"wallet.address", address,
			"error", err,
		)
		return
	}

	txs, err := s.ledger.FetchRecentTransactions(ctx, address, recentTransactionLimit)
	if err != nil {
		logger.Warn(ctx, "baseline seeded without transaction list",
			"wallet.address", address,
			"error", err,
		)
		txs = nil
	}

	state := ObservationState{TransactionCount: count, Transactions: txs}
	if err := s.saveObservation(ctx, address, state); err == nil {
		logger.Info(ctx, "wallet baseline seeded",
			"wallet.address", address,
			"transaction.count", count,
		)
	}
}

// runJob drives the wallet's recurring timer until its context is canceled.
// Each wallet runs its own independent timer; ticks across wallets are not
// synchronized.
func (s *service) runJob(ctx context.Context, j *job) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !j.inFlight.CompareAndSwap(false, true) {
				logger.Warn(ctx, "previous tick still running, skipping",
					"wallet.address", j.address,
				)
				continue
			}

			go s.tick(ctx, j)
		}
	}
}

// tick performs one poll cycle for the wallet: fetch the transaction count,
// detect a change against the baseline, and on change notify every recipient
// with the newest transaction before persisting the new baseline.
//
// Any ledger failure is logged and ends the tick; the schedule itself is
// never interrupted and other wallets are unaffected.
func (s *service) tick(ctx context.Context, j *job) {
	defer j.inFlight.Store(false)

	count, err := s.ledger.FetchTransactionCount(ctx, j.address)
	if err != nil {
		logger.Warn(ctx, "transaction count fetch failed, retrying next tick",
			"wallet.address", j.address,
			"error", err,
		)
		return
	}

	result, err := s.detectChange(ctx, j.address, count)
	if err != nil {
		logger.Error(ctx, "failed to load wallet observation state",
			"wallet.address", j.address,
			"error", err,
		)
		return
	}

	if result.seeded {
		// First poll for this wallet: record the baseline, report nothing.
		txs, err := s.ledger.FetchRecentTransactions(ctx, j.address, recentTransactionLimit)
		if err != nil {
			logger.Warn(ctx, "baseline seeded without transaction list",
				"wallet.address", j.address,
				"error", err,
			)
			txs = nil
		}

		_ = s.saveObservation(ctx, j.address, ObservationState{TransactionCount: count, Transactions: txs})
		return
	}

	if !result.changed {
		// Refresh the stored count even when unchanged to keep the baseline
		// current under read skew. The transaction list is carried over.
		_ = s.saveObservation(ctx, j.address, ObservationState{
			TransactionCount: count,
			Transactions:     result.previousTxs,
		})
		return
	}

	logger.Info(ctx, "wallet transaction count changed",
		"wallet.address", j.address,
		"transaction.count.previous", result.previousCount,
		"transaction.count.current", result.currentCount,
	)

	txs, err := s.ledger.FetchRecentTransactions(ctx, j.address, recentTransactionLimit)
	if err != nil {
		// Baseline is intentionally not advanced here so the next tick
		// re-detects the change and retries the notification.
		logger.Warn(ctx, "transaction fetch failed after detected change",
			"wallet.address", j.address,
			"error", err,
		)
		return
	}

	if len(txs) > 0 {
		s.notifyRecipients(ctx, j, txs[:1])
	}

	_ = s.saveObservation(ctx, j.address, ObservationState{TransactionCount: count, Transactions: txs})
}

// notifyRecipients renders the newly detected transactions once and
// dispatches the resulting text to every current recipient of the wallet.
func (s *service) notifyRecipients(ctx context.Context, j *job, txs []ledger.Transaction) {
	price, err := s.ledger.FetchPrice(ctx)
	if err != nil {
		// A missing price degrades the USD estimate to zero instead of
		// suppressing the notification.
		logger.Warn(ctx, "price fetch failed, rendering zero USD estimates",
			"wallet.address", j.address,
			"error", err,
		)
		price = decimal.Zero
	}

	text := "New transaction detected:\n" + s.renderer.Transactions(txs, price)

	for _, recipient := range j.snapshotRecipients() {
		notification := Notification{
			ID:          uuid.Must(uuid.NewV7()).String(),
			Address:     j.address,
			Destination: recipient.Destination,
			Text:        text,
		}

		go s.dispatch(ctx, notification)
	}
}

// dispatch delivers one notification with the configured retry policy. A
// terminal failure is handed to the dispatch failure handler; it never
// propagates back into the polling schedule.
func (s *service) dispatch(ctx context.Context, n Notification) {
	var attemptErrs []error

	err := s.retry.Execute(ctx, func() error {
		err := s.notifier.Deliver(ctx, n)
		if err != nil {
			attemptErrs = append(attemptErrs, err)
		}
		return err
	})
	if err == nil {
		return
	}

	s.onDispatchFailure(ctx, NotificationDispatchFailure{
		Notification: n,
		Errors:       attemptErrs,
	})
}

// saveObservation persists the baseline, keeping the transaction list within
// its bound, and logs (but does not propagate) storage failures.
func (s *service) saveObservation(ctx context.Context, address string, state ObservationState) error {
	// A canceled context means the job was torn down while this cycle was
	// still in flight. Writing now would resurrect the baseline that
	// Unwatch already deleted.
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(state.Transactions) > recentTransactionLimit {
		state.Transactions = state.Transactions[:recentTransactionLimit]
	}

	err := s.observations.SaveObservation(ctx, address, state)
	if err != nil {
		logger.Error(ctx, "failed to save wallet observation state",
			"wallet.address", address,
			"error", err,
		)
	}

	return err
}
