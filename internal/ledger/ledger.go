// Package ledger defines the capability contract the rest of the system uses
// to read wallet data from the remote Kaspa ledger service. Implementations
// live under internal/infra and wrap the actual transport; consumers only
// depend on this interface and its error taxonomy.
package ledger

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrUnavailable indicates a transient failure while talking to the ledger
// service: a non-2xx response, a transport error, or an undecodable payload.
//
// Callers must treat this error as recoverable. The polling scheduler logs it
// and waits for the next tick; command-driven operations surface it to the
// caller unchanged.
var ErrUnavailable = errors.New("ledger service unavailable")

// Transaction is a single ledger transaction associated with a wallet
// address. Values are immutable once fetched.
type Transaction struct {
	ID          string // unique transaction identifier
	TotalOutput int64  // sum of all output amounts, in sompi (smallest unit)
	BlockTime   int64  // block timestamp in epoch milliseconds (UTC)
}

// Client exposes the read capabilities the monitoring core requires from the
// remote ledger API, independent of transport.
//
// Every method may fail with ErrUnavailable (possibly wrapped with detail).
// No other error classification is defined by this contract.
type Client interface {
	// FetchBalance returns the current balance of the address in sompi
	// (1 KAS = 10^8 sompi).
	FetchBalance(ctx context.Context, address string) (int64, error)

	// FetchTransactionCount returns the cumulative number of transactions
	// ever associated with the address. It is used as a cheap change signal;
	// the value is not assumed to be monotonic.
	FetchTransactionCount(ctx context.Context, address string) (int64, error)

	// FetchRecentTransactions returns up to limit transactions for the
	// address, ordered most-recent-first.
	FetchRecentTransactions(ctx context.Context, address string, limit int) ([]Transaction, error)

	// FetchPrice returns the current USD price of one KAS.
	FetchPrice(ctx context.Context) (decimal.Decimal, error)
}
