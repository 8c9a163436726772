// Package tracker is the boundary the command front end talks to. It
// composes the subscription registry, the polling monitor, and the ledger
// client into the user-facing operations: register, unregister, edit, list,
// history, and resume-after-restart.
package tracker

import (
	"context"

	"github.com/gabapcia/kaswatch/internal/ledger"
	"github.com/gabapcia/kaswatch/internal/monitor"
	"github.com/gabapcia/kaswatch/internal/subscription"
	"github.com/gabapcia/kaswatch/internal/txrender"
)

// RegistrationSummary is the snapshot returned by a successful registration:
// the wallet's balance at registration time plus its most recent activity,
// ready for display.
//
// The snapshot is best effort. If the ledger was unavailable while it was
// being assembled, Partial is true and the display fields are empty; the
// registration itself still succeeded.
type RegistrationSummary struct {
	Address        string
	Balance        string // balance in KAS display units
	BalanceUSD     string // USD estimate of the balance, two decimals
	RecentActivity string // rendered list of the most recent transactions
	Partial        bool   // true if ledger data could not be fetched
}

// WalletOverview is one entry of a user's wallet listing.
type WalletOverview struct {
	Address    string
	Balance    string // balance in KAS display units
	BalanceUSD string // USD estimate of the balance, two decimals
}

// Service exposes the tracked-wallet operations consumed by the front end.
type Service interface {
	// Register stores the (user, address) subscription, starts (or joins)
	// the wallet's polling job, and returns a balance/activity snapshot.
	// Returns subscription.ErrAlreadyTracked if the pair already exists.
	Register(ctx context.Context, userID, destination, address string) (RegistrationSummary, error)

	// Unregister removes the subscription and drops the user from the
	// wallet's polling job. Returns subscription.ErrNotTracked if the pair
	// does not exist.
	Unregister(ctx context.Context, userID, destination, address string) error

	// Edit atomically replaces a tracked address and moves the polling
	// recipient from the old wallet to the new one. Returns
	// subscription.ErrNotTracked or subscription.ErrAddressConflict.
	Edit(ctx context.Context, userID, destination, oldAddress, newAddress string) error

	// Overview lists the user's wallets with balances and USD estimates, in
	// registration order.
	Overview(ctx context.Context, userID string) ([]WalletOverview, error)

	// History renders the wallet's ten most recent transactions. An address
	// with no transactions yields an empty string.
	History(ctx context.Context, address string) (string, error)

	// Resume re-creates polling jobs for every stored subscription. It is
	// called once at startup so monitoring survives process restarts.
	Resume(ctx context.Context) error
}

// service is the concrete implementation of the Service interface.
type service struct {
	subscriptions subscription.Service
	watcher       monitor.Service
	ledger        ledger.Client
	renderer      *txrender.Renderer
}

// Compile-time check that *service implements the Service interface.
var _ Service = (*service)(nil)

// New wires the tracker service from its collaborators.
func New(subs subscription.Service, watcher monitor.Service, lc ledger.Client, r *txrender.Renderer) *service {
	return &service{
		subscriptions: subs,
		watcher:       watcher,
		ledger:        lc,
		renderer:      r,
	}
}
