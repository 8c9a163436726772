package tracker

import (
	"errors"
	"testing"

	"github.com/gabapcia/kaswatch/internal/ledger"
	"github.com/gabapcia/kaswatch/internal/monitor"
	"github.com/gabapcia/kaswatch/internal/pkg/logger"
	"github.com/gabapcia/kaswatch/internal/pkg/validator"
	"github.com/gabapcia/kaswatch/internal/subscription"
	"github.com/gabapcia/kaswatch/internal/txrender"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	// Initialize logger for tests to prevent nil pointer dereference
	_ = logger.Init("error")
}

// fixture bundles the tracker service with its mocked collaborators.
type fixture struct {
	subscriptions *subscription.ServiceMock
	watcher       *monitor.ServiceMock
	ledger        *ledger.ClientMock
	renderer      *txrender.Renderer
	service       *service
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	renderer, err := txrender.New("UTC")
	require.NoError(t, err)

	f := fixture{
		subscriptions: subscription.NewServiceMock(t),
		watcher:       monitor.NewServiceMock(t),
		ledger:        ledger.NewClientMock(t),
		renderer:      renderer,
	}
	f.service = New(f.subscriptions, f.watcher, f.ledger, renderer)
	return f
}

func TestService_Register(t *testing.T) {
	recipient := monitor.Recipient{UserID: "12345", Destination: "12345"}

	t.Run("should register a wallet and return its snapshot", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture(t)

		txs := []ledger.Transaction{{ID: "tx-1", TotalOutput: 150_000_000, BlockTime: 1700000000000}}
		price := decimal.NewFromInt(2)

		f.subscriptions.EXPECT().Track(ctx, "12345", "kaspa:qq0d").Return(nil).Once()
		f.watcher.EXPECT().Watch(ctx, "kaspa:qq0d", recipient).Return(nil).Once()
		f.ledger.EXPECT().FetchBalance(ctx, "kaspa:qq0d").Return(250_000_000, nil).Once()
		f.ledger.EXPECT().FetchPrice(ctx).Return(price, nil).Once()
		f.ledger.EXPECT().FetchRecentTransactions(ctx, "kaspa:qq0d", 10).Return(txs, nil).Once()

		summary, err := f.service.Register(ctx, "12345", "12345", "kaspa:qq0d")
		require.NoError(t, err)
		assert.Equal(t, "kaspa:qq0d", summary.Address)
		assert.Equal(t, "2.500000", summary.Balance)
		assert.Equal(t, "5.00", summary.BalanceUSD)
		assert.Equal(t, f.renderer.Transactions(txs, price), summary.RecentActivity)
		assert.False(t, summary.Partial)
	})

	t.Run("should return a partial snapshot when the ledger is unavailable", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture(t)

		f.subscriptions.EXPECT().Track(ctx, "12345", "kaspa:qq0d").Return(nil).Once()
		f.watcher.EXPECT().Watch(ctx, "kaspa:qq0d", recipient).Return(nil).Once()
		f.ledger.EXPECT().FetchBalance(ctx, "kaspa:qq0d").Return(0, ledger.ErrUnavailable).Once()

		summary, err := f.service.Register(ctx, "12345", "12345", "kaspa:qq0d")
		require.NoError(t, err)
		assert.Equal(t, "kaspa:qq0d", summary.Address)
		assert.True(t, summary.Partial)
		assert.Empty(t, summary.Balance)
	})

	t.Run("should degrade the USD estimate when the price fetch fails", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture(t)

		f.subscriptions.EXPECT().Track(ctx, "12345", "kaspa:qq0d").Return(nil).Once()
		f.watcher.EXPECT().Watch(ctx, "kaspa:qq0d", recipient).Return(nil).Once()
		f.ledger.EXPECT().FetchBalance(ctx, "kaspa:qq0d").Return(250_000_000, nil).Once()
		f.ledger.EXPECT().FetchPrice(ctx).Return(decimal.Zero, ledger.ErrUnavailable).Once()
		f.ledger.EXPECT().FetchRecentTransactions(ctx, "kaspa:qq0d", 10).Return(nil, nil).Once()

		summary, err := f.service.Register(ctx, "12345", "12345", "kaspa:qq0d")
		require.NoError(t, err)
		assert.Equal(t, "2.500000", summary.Balance)
		assert.Equal(t, "0.00", summary.BalanceUSD)
		assert.False(t, summary.Partial)
	})

	t.Run("should return a validation error for a missing destination", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Register(t.Context(), "12345", "", "kaspa:qq0d")
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("should pass through ErrAlreadyTracked without starting a watch", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture(t)

		f.subscriptions.EXPECT().Track(ctx, "12345", "kaspa:qq0d").Return(subscription.ErrAlreadyTracked).Once()

		_, err := f.service.Register(ctx, "12345", "12345", "kaspa:qq0d")
		require.Error(t, err)
		assert.ErrorIs(t, err, subscription.ErrAlreadyTracked)
	})

	t.Run("should return an error if the watch cannot be started", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture(t)

		expectedErr := errors.New("watch error")
		f.subscriptions.EXPECT().Track(ctx, "12345", "kaspa:qq0d").Return(nil).Once()
		f.watcher.EXPECT().Watch(ctx, "kaspa:qq0d", recipient).Return(expectedErr).Once()

		_, err := f.service.Register(ctx, "12345", "12345", "kaspa:qq0d")
		require.Error(t, err)
		assert.Equal(t, expectedErr, err)
	})
}

func TestService_Unregister(t *testing.T) {
	recipient := monitor.Recipient{UserID: "12345", Destination: "12345"}

	t.Run("should remove the subscription and the watch", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture(t)

		f.subscriptions.EXPECT().Untrack(ctx, "12345", "kaspa:qq0d").Return(nil).Once()
		f.watcher.EXPECT().Unwatch(ctx, "kaspa:qq0d", recipient).Return(nil).Once()

		err := f.service.Unregister(ctx, "12345", "12345", "kaspa:qq0d")
		require.NoError(t, err)
	})

	t.Run("should pass through ErrNotTracked without touching the watch", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture(t)

		f.subscriptions.EXPECT().Untrack(ctx, "12345", "kaspa:qq0d").Return(subscription.ErrNotTracked).Once()

		err := f.service.Unregister(ctx, "12345", "12345", "kaspa:qq0d")
		require.Error(t, err)
		assert.ErrorIs(t, err, subscription.ErrNotTracked)
	})
}

func TestService_Edit(t *testing.T) {
	recipient := monitor.Recipient{UserID: "12345", Destination: "12345"}

	t.Run("should move the watch to the new address", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture(t)

		f.subscriptions.EXPECT().ChangeAddress(ctx, "12345", "kaspa:qq0d", "kaspa:qrx9").Return(nil).Once()
		f.watcher.EXPECT().Unwatch(ctx, "kaspa:qq0d", recipient).Return(nil).Once()
		f.watcher.EXPECT().Watch(ctx, "kaspa:qrx9", recipient).Return(nil).Once()

		err := f.service.Edit(ctx, "12345", "12345", "kaspa:qq0d", "kaspa:qrx9")
		require.NoError(t, err)
	})

	t.Run("should pass through ErrAddressConflict without touching the watch", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture(t)

		f.subscriptions.EXPECT().ChangeAddress(ctx, "12345", "kaspa:qq0d", "kaspa:qrx9").Return(subscription.ErrAddressConflict).Once()

		err := f.service.Edit(ctx, "12345", "12345", "kaspa:qq0d", "kaspa:qrx9")
		require.Error(t, err)
		assert.ErrorIs(t, err, subscription.ErrAddressConflict)
	})

	t.Run("should still start the new watch when stopping the old one fails", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture(t)

		f.subscriptions.EXPECT().ChangeAddress(ctx, "12345", "kaspa:qq0d", "kaspa:qrx9").Return(nil).Once()
		f.watcher.EXPECT().Unwatch(ctx, "kaspa:qq0d", recipient).Return(errors.New("unwatch error")).Once()
		f.watcher.EXPECT().Watch(ctx, "kaspa:qrx9", recipient).Return(nil).Once()

		err := f.service.Edit(ctx, "12345", "12345", "kaspa:qq0d", "kaspa:qrx9")
		require.NoError(t, err)
	})
}

func TestService_Overview(t *testing.T) {
	t.Run("should list wallets with balances in registration order", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture(t)

		subs := []subscription.Subscription{
			{UserID: "12345", Address: "kaspa:qq0d"},
			{UserID: "12345", Address: "kaspa:qrx9"},
		}
		f.subscriptions.EXPECT().List(ctx, "12345").Return(subs, nil).Once()
		f.ledger.EXPECT().FetchPrice(ctx).Return(decimal.NewFromInt(2), nil).Once()
		f.ledger.EXPECT().FetchBalance(ctx, "kaspa:qq0d").Return(250_000_000, nil).Once()
		f.ledger.EXPECT().FetchBalance(ctx, "kaspa:qrx9").Return(100_000_000, nil).Once()

		overviews, err := f.service.Overview(ctx, "12345")
		require.NoError(t, err)
		require.Len(t, overviews, 2)
		assert.Equal(t, WalletOverview{Address: "kaspa:qq0d", Balance: "2.500000", BalanceUSD: "5.00"}, overviews[0])
		assert.Equal(t, WalletOverview{Address: "kaspa:qrx9", Balance: "1.000000", BalanceUSD: "2.00"}, overviews[1])
	})

	t.Run("should return nothing for a user without wallets", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture(t)

		f.subscriptions.EXPECT().List(ctx, "12345").Return(nil, nil).Once()

		overviews, err := f.service.Overview(ctx, "12345")
		require.NoError(t, err)
		assert.Empty(t, overviews)
	})

	t.Run("should return an error if the price fetch fails", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture(t)

		subs := []subscription.Subscription{{UserID: "12345", Address: "kaspa:qq0d"}}
		f.subscriptions.EXPECT().List(ctx, "12345").Return(subs, nil).Once()
		f.ledger.EXPECT().FetchPrice(ctx).Return(decimal.Zero, ledger.ErrUnavailable).Once()

		_, err := f.service.Overview(ctx, "12345")
		require.Error(t, err)
		assert.ErrorIs(t, err, ledger.ErrUnavailable)
	})

	t.Run("should return an error if a balance fetch fails", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture(t)

		subs := []subscription.Subscription{{UserID: "12345", Address: "kaspa:qq0d"}}
		f.subscriptions.EXPECT().List(ctx, "12345").Return(subs, nil).Once()
		f.ledger.EXPECT().FetchPrice(ctx).Return(decimal.NewFromInt(2), nil).Once()
		f.ledger.EXPECT().FetchBalance(ctx, "kaspa:qq0d").Return(0, ledger.ErrUnavailable).Once()

		_, err := f.service.Overview(ctx, "12345")
		require.Error(t, err)
		assert.ErrorIs(t, err, ledger.ErrUnavailable)
	})
}

func TestService_History(t *testing.T) {
	t.Run("should render the wallet's recent transactions", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture(t)

		txs := []ledger.Transaction{{ID: "tx-1", TotalOutput: 150_000_000, BlockTime: 1700000000000}}
		price := decimal.NewFromInt(2)

		f.ledger.EXPECT().FetchRecentTransactions(ctx, "kaspa:qq0d", 10).Return(txs, nil).Once()
		f.ledger.EXPECT().FetchPrice(ctx).Return(price, nil).Once()

		history, err := f.service.History(ctx, "kaspa:qq0d")
		require.NoError(t, err)
		assert.Equal(t, f.renderer.Transactions(txs, price), history)
	})

	t.Run("should return an empty history for a wallet without transactions", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture(t)

		f.ledger.EXPECT().FetchRecentTransactions(ctx, "kaspa:qq0d", 10).Return(nil, nil).Once()

		history, err := f.service.History(ctx, "kaspa:qq0d")
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("should degrade the USD estimate when the price fetch fails", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture(t)

		txs := []ledger.Transaction{{ID: "tx-1", TotalOutput: 150_000_000, BlockTime: 1700000000000}}

		f.ledger.EXPECT().FetchRecentTransactions(ctx, "kaspa:qq0d", 10).Return(txs, nil).Once()
		f.ledger.EXPECT().FetchPrice(ctx).Return(decimal.Zero, ledger.ErrUnavailable).Once()

		history, err := f.service.History(ctx, "kaspa:qq0d")
		require.NoError(t, err)
		assert.Equal(t, f.renderer.Transactions(txs, decimal.Zero), history)
	})

	t.Run("should return an error if the transaction fetch fails", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture(t)

		f.ledger.EXPECT().FetchRecentTransactions(ctx, "kaspa:qq0d", 10).Return(nil, ledger.ErrUnavailable).Once()

		_, err := f.service.History(ctx, "kaspa:qq0d")
		require.Error(t, err)
		assert.ErrorIs(t, err, ledger.ErrUnavailable)
	})
}

func TestService_Resume(t *testing.T) {
	t.Run("should re-create a watch for every stored subscription", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture(t)

		subs := []subscription.Subscription{
			{UserID: "12345", Address: "kaspa:qq0d"},
			{UserID: "67890", Address: "kaspa:qrx9"},
		}
		f.subscriptions.EXPECT().ListAll(ctx).Return(subs, nil).Once()
		f.watcher.EXPECT().Watch(ctx, "kaspa:qq0d", monitor.Recipient{UserID: "12345", Destination: "12345"}).Return(nil).Once()
		f.watcher.EXPECT().Watch(ctx, "kaspa:qrx9", monitor.Recipient{UserID: "67890", Destination: "67890"}).Return(nil).Once()

		err := f.service.Resume(ctx)
		require.NoError(t, err)
	})

	t.Run("should skip watches that fail to start", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture(t)

		subs := []subscription.Subscription{
			{UserID: "12345", Address: "kaspa:qq0d"},
			{UserID: "67890", Address: "kaspa:qrx9"},
		}
		f.subscriptions.EXPECT().ListAll(ctx).Return(subs, nil).Once()
		f.watcher.EXPECT().Watch(ctx, "kaspa:qq0d", mock.Anything).Return(errors.New("watch error")).Once()
		f.watcher.EXPECT().Watch(ctx, "kaspa:qrx9", mock.Anything).Return(nil).Once()

		err := f.service.Resume(ctx)
		require.NoError(t, err)
	})

	t.Run("should return an error if listing subscriptions fails", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture(t)

		expectedErr := errors.New("storage error")
		f.subscriptions.EXPECT().ListAll(ctx).Return(nil, expectedErr).Once()

		err := f.service.Resume(ctx)
		require.Error(t, err)
		assert.Equal(t, expectedErr, err)
	})
}
