package monitor

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/gabapcia/kaswatch/internal/ledger"
)

// ErrNoObservation is returned by LoadObservation when no baseline has been
// recorded yet for the requested wallet address.
var ErrNoObservation = errors.New("no observation recorded for wallet")

// ObservationState is the per-wallet baseline used for change detection. It
// is keyed by wallet address, not by user: a single state serves every
// subscriber of the same wallet.
type ObservationState struct {
	// TransactionCount is the last transaction count observed for the
	// wallet. It is the comparison point for the next poll and is not
	// assumed to be monotonic.
	TransactionCount int64

	// Transactions holds the most recently observed transactions,
	// most-recent-first, bounded to recentTransactionLimit entries.
	Transactions []ledger.Transaction
}

// ObservationStorage persists and retrieves per-wallet observation baselines.
//
// Implementations must serialize concurrent access per wallet address. The
// scheduler guarantees at most one in-flight tick per address, so cross-call
// ordering per address is already single-writer; storage only needs to keep
// individual operations atomic.
type ObservationStorage interface {
	// LoadObservation returns the baseline for the address, or
	// ErrNoObservation if none has been recorded.
	LoadObservation(ctx context.Context, address string) (ObservationState, error)

	// SaveObservation records the baseline for the address, replacing any
	// previous value.
	SaveObservation(ctx context.Context, address string, state ObservationState) error

	// DeleteObservation removes the baseline for the address. Deleting a
	// missing baseline is not an error.
	DeleteObservation(ctx context.Context, address string) error
}

// memoryObservationStorage is the default ObservationStorage: plain process
// memory behind a mutex. Baselines kept here do not survive restarts.
type memoryObservationStorage struct {
	mu     sync.RWMutex
	states map[string]ObservationState
}

// Compile-time check that the memory store satisfies ObservationStorage.
var _ ObservationStorage = (*memoryObservationStorage)(nil)

// NewMemoryObservationStorage creates an empty in-process observation store.
func NewMemoryObservationStorage() *memoryObservationStorage {
	return &memoryObservationStorage{
		states: make(map[string]ObservationState),
	}
}

func (m *memoryObservationStorage) LoadObservation(_ context.Context, address string) (ObservationState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.states[address]
	if !ok {
		return ObservationState{}, ErrNoObservation
	}

	state.Transactions = slices.Clone(state.Transactions)
	return state, nil
}

func (m *memoryObservationStorage) SaveObservation(_ context.Context, address string, state ObservationState) error {
	state.Transactions = slices.Clone(state.Transactions)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.states[address] = state
	return nil
}

func (m *memoryObservationStorage) DeleteObservation(_ context.Context, address string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.states, address)
	return nil
}
