package monitor

import (
	"context"
	"errors"

	"github.com/gabapcia/kaswatch/internal/ledger"
)

// changeResult is the outcome of comparing a freshly fetched transaction
// count against the wallet's stored baseline.
type changeResult struct {
	// seeded is true when no baseline existed yet. The caller records the
	// current count as the initial baseline and reports no change.
	seeded bool

	// changed is true when the fetched count differs from the baseline in
	// either direction. A decrease (e.g. after a ledger reorg) is
	// deliberately treated the same as an increase: it triggers a re-fetch
	// and a notification for whatever the ledger now reports as the most
	// recent transaction. This mirrors the upstream behavior and is a known
	// ambiguity, kept rather than silently fixed.
	changed bool

	previousCount int64
	currentCount  int64

	// previousTxs is the baseline transaction list, carried along so an
	// unchanged tick can refresh the stored count without discarding it.
	previousTxs []ledger.Transaction
}

// detectChange loads the wallet's baseline and compares it against the
// current transaction count. It does not write anything; persisting the new
// baseline is the caller's responsibility.
func (s *service) detectChange(ctx context.Context, address string, currentCount int64) (changeResult, error) {
	state, err := s.observations.LoadObservation(ctx, address)
	if err != nil {
		if errors.Is(err, ErrNoObservation) {
			return changeResult{seeded: true, currentCount: currentCount}, nil
		}

		return changeResult{}, err
	}

	return changeResult{
		changed:       state.TransactionCount != currentCount,
		previousCount: state.TransactionCount,
		currentCount:  currentCount,
		previousTxs:   state.Transactions,
	}, nil
}
