package tracker

import (
	"context"

	"github.com/gabapcia/kaswatch/internal/monitor"
	"github.com/gabapcia/kaswatch/internal/pkg/logger"
	"github.com/gabapcia/kaswatch/internal/pkg/validator"
	"github.com/gabapcia/kaswatch/internal/txrender"

	"github.com/shopspring/decimal"
)

// historyLimit is the number of transactions returned by History and
// included in a registration snapshot.
const historyLimit = 10

// buildRecipient constructs and validates the polling recipient for a user.
func buildRecipient(userID, destination string) (monitor.Recipient, error) {
	r := monitor.Recipient{
		UserID:      userID,
		Destination: destination,
	}

	return r, validator.Validate(r)
}

// Register stores the subscription, joins the wallet's polling job, and
// assembles the registration snapshot. See Service.Register.
func (s *service) Register(ctx context.Context, userID, destination, address string) (RegistrationSummary, error) {
	recipient, err := buildRecipient(userID, destination)
	if err != nil {
		return RegistrationSummary{}, err
	}

	if err := s.subscriptions.Track(ctx, userID, address); err != nil {
		return RegistrationSummary{}, err
	}

	if err := s.watcher.Watch(ctx, address, recipient); err != nil {
		return RegistrationSummary{}, err
	}

	return s.registrationSnapshot(ctx, address), nil
}

// registrationSnapshot fetches balance, price, and recent activity for a
// freshly registered wallet. Ledger failures degrade the snapshot instead of
// undoing the registration.
func (s *service) registrationSnapshot(ctx context.Context, address string) RegistrationSummary {
	summary := RegistrationSummary{Address: address}

	balance, err := s.ledger.FetchBalance(ctx, address)
	if err != nil {
		logger.Warn(ctx, "registration snapshot unavailable",
			"wallet.address", address,
			"error", err,
		)
		summary.Partial = true
		return summary
	}

	price, err := s.ledger.FetchPrice(ctx)
	if err != nil {
		logger.Warn(ctx, "price fetch failed, rendering zero USD estimates",
			"wallet.address", address,
			"error", err,
		)
		price = decimal.Zero
	}

	summary.Balance = txrender.Amount(balance)
	summary.BalanceUSD = txrender.USDEstimate(balance, price)

	txs, err := s.ledger.FetchRecentTransactions(ctx, address, historyLimit)
	if err != nil {
		logger.Warn(ctx, "recent transactions unavailable for snapshot",
			"wallet.address", address,
			"error", err,
		)
		summary.Partial = true
		return summary
	}

	summary.RecentActivity = s.renderer.Transactions(txs, price)
	return summary
}

// Unregister removes the subscription and the polling recipient. See
// Service.Unregister.
func (s *service) Unregister(ctx context.Context, userID, destination, address string) error {
	recipient, err := buildRecipient(userID, destination)
	if err != nil {
		return err
	}

	if err := s.subscriptions.Untrack(ctx, userID, address); err != nil {
		return err
	}

	return s.watcher.Unwatch(ctx, address, recipient)
}

// Edit replaces a tracked address and moves the polling recipient. See
// Service.Edit.
func (s *service) Edit(ctx context.Context, userID, destination, oldAddress, newAddress string) error {
	recipient, err := buildRecipient(userID, destination)
	if err != nil {
		return err
	}

	if err := s.subscriptions.ChangeAddress(ctx, userID, oldAddress, newAddress); err != nil {
		return err
	}

	if err := s.watcher.Unwatch(ctx, oldAddress, recipient); err != nil {
		logger.Error(ctx, "failed to stop watching replaced wallet",
			"wallet.address", oldAddress,
			"error", err,
		)
	}

	return s.watcher.Watch(ctx, newAddress, recipient)
}

// Overview lists the user's wallets with balance data. See Service.Overview.
func (s *service) Overview(ctx context.Context, userID string) ([]WalletOverview, error) {
	subs, err := s.subscriptions.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(subs) == 0 {
		return nil, nil
	}

	price, err := s.ledger.FetchPrice(ctx)
	if err != nil {
		return nil, err
	}

	overviews := make([]WalletOverview, 0, len(subs))
	for _, sub := range subs {
		balance, err := s.ledger.FetchBalance(ctx, sub.Address)
		if err != nil {
			return nil, err
		}

		overviews = append(overviews, WalletOverview{
			Address:    sub.Address,
			Balance:    txrender.Amount(balance),
			BalanceUSD: txrender.USDEstimate(balance, price),
		})
	}

	return overviews, nil
}

// History renders the wallet's most recent transactions. See
// Service.History.
func (s *service) History(ctx context.Context, address string) (string, error) {
	txs, err := s.ledger.FetchRecentTransactions(ctx, address, historyLimit)
	if err != nil {
		return "", err
	}

	if len(txs) == 0 {
		return "", nil
	}

	price, err := s.ledger.FetchPrice(ctx)
	if err != nil {
		logger.Warn(ctx, "price fetch failed, rendering zero USD estimates",
			"wallet.address", address,
			"error", err,
		)
		price = decimal.Zero
	}

	return s.renderer.Transactions(txs, price), nil
}

// Resume re-creates polling jobs for every stored subscription after a
// restart. The delivery destination defaults to the user ID, which matches
// direct-chat delivery semantics. Individual failures are logged and skipped
// so one bad registration cannot block the rest.
func (s *service) Resume(ctx context.Context) error {
	subs, err := s.subscriptions.ListAll(ctx)
	if err != nil {
		return err
	}

	for _, sub := range subs {
		recipient := monitor.Recipient{
			UserID:      sub.UserID,
			Destination: sub.UserID,
		}

		if err := s.watcher.Watch(ctx, sub.Address, recipient); err != nil {
			logger.Error(ctx, "failed to resume wallet watch",
				"wallet.address", sub.Address,
				"user.id", sub.UserID,
				"error", err,
			)
		}
	}

	logger.Info(ctx, "wallet watches resumed", "subscription.count", len(subs))
	return nil
}
