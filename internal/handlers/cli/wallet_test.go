package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gabapcia/kaswatch/internal/subscription"
	"github.com/gabapcia/kaswatch/internal/tracker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/urfave/cli/v3"
)

// runCommand executes a single command under a root with a captured output
// buffer, the way Run wires it.
func runCommand(t *testing.T, cmd *cli.Command, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := &cli.Command{
		Writer:   &buf,
		Commands: []*cli.Command{cmd},
	}

	err := app.Run(t.Context(), append([]string{"test"}, args...))
	return buf.String(), err
}

func TestRegisterWalletCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		// Arrange
		mockService := tracker.NewServiceMock(t)

		// Act
		cmd := registerWalletCommand(mockService)

		// Assert
		assert.Equal(t, "register", cmd.Name)
		assert.Len(t, cmd.Flags, 2)
		assert.NotNil(t, cmd.Action)

		userFlag := cmd.Flags[0].(*cli.StringFlag)
		assert.Equal(t, "user", userFlag.Name)
		assert.True(t, userFlag.Required)

		addressFlag := cmd.Flags[1].(*cli.StringFlag)
		assert.Equal(t, "address", addressFlag.Name)
		assert.True(t, addressFlag.Required)
	})

	t.Run("should register a wallet and print its snapshot", func(t *testing.T) {
		// Arrange
		mockService := tracker.NewServiceMock(t)

		summary := tracker.RegistrationSummary{
			Address:        "kaspa:qq0d",
			Balance:        "2.500000",
			BalanceUSD:     "5.00",
			RecentActivity: "1. Transaction ID: tx-1",
		}
		mockService.EXPECT().Register(mock.Anything, "12345", "12345", "kaspa:qq0d").Return(summary, nil).Once()

		// Act
		out, err := runCommand(t, registerWalletCommand(mockService),
			"register", "--user", "12345", "--address", "kaspa:qq0d")

		// Assert
		assert.NoError(t, err)
		assert.Contains(t, out, "Now monitoring kaspa:qq0d")
		assert.Contains(t, out, "Balance: 2.500000 KAS (~$5.00)")
		assert.Contains(t, out, "1. Transaction ID: tx-1")
	})

	t.Run("should address notifications to the registering user", func(t *testing.T) {
		// Arrange
		mockService := tracker.NewServiceMock(t)
		mockService.EXPECT().Register(mock.Anything, "12345", "12345", "kaspa:qq0d").Return(tracker.RegistrationSummary{Address: "kaspa:qq0d"}, nil).Once()

		// Act
		_, err := runCommand(t, registerWalletCommand(mockService),
			"register", "--user", "12345", "--address", "kaspa:qq0d")

		// Assert
		assert.NoError(t, err)
	})

	t.Run("should note when the snapshot is partial", func(t *testing.T) {
		// Arrange
		mockService := tracker.NewServiceMock(t)

		summary := tracker.RegistrationSummary{Address: "kaspa:qq0d", Partial: true}
		mockService.EXPECT().Register(mock.Anything, "12345", "12345", "kaspa:qq0d").Return(summary, nil).Once()

		// Act
		out, err := runCommand(t, registerWalletCommand(mockService),
			"register", "--user", "12345", "--address", "kaspa:qq0d")

		// Assert
		assert.NoError(t, err)
		assert.Contains(t, out, "temporarily unavailable")
		assert.NotContains(t, out, "Balance:")
	})

	t.Run("should return an error when the wallet is already registered", func(t *testing.T) {
		// Arrange
		mockService := tracker.NewServiceMock(t)
		mockService.EXPECT().Register(mock.Anything, "12345", "12345", "kaspa:qq0d").Return(tracker.RegistrationSummary{}, subscription.ErrAlreadyTracked).Once()

		// Act
		_, err := runCommand(t, registerWalletCommand(mockService),
			"register", "--user", "12345", "--address", "kaspa:qq0d")

		// Assert
		assert.ErrorIs(t, err, subscription.ErrAlreadyTracked)
	})

	t.Run("should fail when required flags are missing", func(t *testing.T) {
		// Arrange
		mockService := tracker.NewServiceMock(t)

		// Act
		_, err := runCommand(t, registerWalletCommand(mockService), "register", "--user", "12345")

		// Assert
		assert.Error(t, err)
	})
}

func TestUnregisterWalletCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		// Arrange
		mockService := tracker.NewServiceMock(t)

		// Act
		cmd := unregisterWalletCommand(mockService)

		// Assert
		assert.Equal(t, "unregister", cmd.Name)
		assert.Len(t, cmd.Flags, 2)
		assert.NotNil(t, cmd.Action)
	})

	t.Run("should unregister a wallet", func(t *testing.T) {
		// Arrange
		mockService := tracker.NewServiceMock(t)
		mockService.EXPECT().Unregister(mock.Anything, "12345", "12345", "kaspa:qq0d").Return(nil).Once()

		// Act
		out, err := runCommand(t, unregisterWalletCommand(mockService),
			"unregister", "--user", "12345", "--address", "kaspa:qq0d")

		// Assert
		assert.NoError(t, err)
		assert.Contains(t, out, "Stopped monitoring kaspa:qq0d")
	})

	t.Run("should return an error when the wallet is not registered", func(t *testing.T) {
		// Arrange
		mockService := tracker.NewServiceMock(t)
		mockService.EXPECT().Unregister(mock.Anything, "12345", "12345", "kaspa:qq0d").Return(subscription.ErrNotTracked).Once()

		// Act
		_, err := runCommand(t, unregisterWalletCommand(mockService),
			"unregister", "--user", "12345", "--address", "kaspa:qq0d")

		// Assert
		assert.ErrorIs(t, err, subscription.ErrNotTracked)
	})
}

func TestEditWalletCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		// Arrange
		mockService := tracker.NewServiceMock(t)

		// Act
		cmd := editWalletCommand(mockService)

		// Assert
		assert.Equal(t, "edit", cmd.Name)
		assert.Len(t, cmd.Flags, 3)
		assert.NotNil(t, cmd.Action)
	})

	t.Run("should replace a wallet address", func(t *testing.T) {
		// Arrange
		mockService := tracker.NewServiceMock(t)
		mockService.EXPECT().Edit(mock.Anything, "12345", "12345", "kaspa:qq0d", "kaspa:qrx9").Return(nil).Once()

		// Act
		out, err := runCommand(t, editWalletCommand(mockService),
			"edit", "--user", "12345", "--old-address", "kaspa:qq0d", "--new-address", "kaspa:qrx9")

		// Assert
		assert.NoError(t, err)
		assert.Contains(t, out, "Now monitoring kaspa:qrx9 instead of kaspa:qq0d")
	})

	t.Run("should return an error when the new address is already registered", func(t *testing.T) {
		// Arrange
		mockService := tracker.NewServiceMock(t)
		mockService.EXPECT().Edit(mock.Anything, "12345", "12345", "kaspa:qq0d", "kaspa:qrx9").Return(subscription.ErrAddressConflict).Once()

		// Act
		_, err := runCommand(t, editWalletCommand(mockService),
			"edit", "--user", "12345", "--old-address", "kaspa:qq0d", "--new-address", "kaspa:qrx9")

		// Assert
		assert.ErrorIs(t, err, subscription.ErrAddressConflict)
	})
}

func TestListWalletsCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		// Arrange
		mockService := tracker.NewServiceMock(t)

		// Act
		cmd := listWalletsCommand(mockService)

		// Assert
		assert.Equal(t, "list", cmd.Name)
		assert.Len(t, cmd.Flags, 1)
		assert.NotNil(t, cmd.Action)
	})

	t.Run("should list wallets with balances", func(t *testing.T) {
		// Arrange
		mockService := tracker.NewServiceMock(t)

		wallets := []tracker.WalletOverview{
			{Address: "kaspa:qq0d", Balance: "2.500000", BalanceUSD: "5.00"},
			{Address: "kaspa:qrx9", Balance: "1.000000", BalanceUSD: "2.00"},
		}
		mockService.EXPECT().Overview(mock.Anything, "12345").Return(wallets, nil).Once()

		// Act
		out, err := runCommand(t, listWalletsCommand(mockService), "list", "--user", "12345")

		// Assert
		assert.NoError(t, err)
		assert.Contains(t, out, "1. kaspa:qq0d")
		assert.Contains(t, out, "Balance: 2.500000 KAS (~$5.00)")
		assert.Contains(t, out, "2. kaspa:qrx9")
		assert.Contains(t, out, "Balance: 1.000000 KAS (~$2.00)")
	})

	t.Run("should report when no wallets are registered", func(t *testing.T) {
		// Arrange
		mockService := tracker.NewServiceMock(t)
		mockService.EXPECT().Overview(mock.Anything, "12345").Return(nil, nil).Once()

		// Act
		out, err := runCommand(t, listWalletsCommand(mockService), "list", "--user", "12345")

		// Assert
		assert.NoError(t, err)
		assert.Contains(t, out, "No wallets registered.")
	})

	t.Run("should return an error when the overview fails", func(t *testing.T) {
		// Arrange
		mockService := tracker.NewServiceMock(t)
		expectedErr := errors.New("overview error")
		mockService.EXPECT().Overview(mock.Anything, "12345").Return(nil, expectedErr).Once()

		// Act
		_, err := runCommand(t, listWalletsCommand(mockService), "list", "--user", "12345")

		// Assert
		assert.ErrorIs(t, err, expectedErr)
	})
}

func TestWalletHistoryCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		// Arrange
		mockService := tracker.NewServiceMock(t)

		// Act
		cmd := walletHistoryCommand(mockService)

		// Assert
		assert.Equal(t, "history", cmd.Name)
		assert.Len(t, cmd.Flags, 1)
		assert.NotNil(t, cmd.Action)
	})

	t.Run("should print the wallet history", func(t *testing.T) {
		// Arrange
		mockService := tracker.NewServiceMock(t)
		mockService.EXPECT().History(mock.Anything, "kaspa:qq0d").Return("1. Transaction ID: tx-1", nil).Once()

		// Act
		out, err := runCommand(t, walletHistoryCommand(mockService), "history", "--address", "kaspa:qq0d")

		// Assert
		assert.NoError(t, err)
		assert.Contains(t, out, "1. Transaction ID: tx-1")
	})

	t.Run("should report when the wallet has no transactions", func(t *testing.T) {
		// Arrange
		mockService := tracker.NewServiceMock(t)
		mockService.EXPECT().History(mock.Anything, "kaspa:qq0d").Return("", nil).Once()

		// Act
		out, err := runCommand(t, walletHistoryCommand(mockService), "history", "--address", "kaspa:qq0d")

		// Assert
		assert.NoError(t, err)
		assert.Contains(t, out, "No transactions found.")
	})

	t.Run("should return an error when the history fetch fails", func(t *testing.T) {
		// Arrange
		mockService := tracker.NewServiceMock(t)
		expectedErr := errors.New("history error")
		mockService.EXPECT().History(mock.Anything, "kaspa:qq0d").Return("", expectedErr).Once()

		// Act
		_, err := runCommand(t, walletHistoryCommand(mockService), "history", "--address", "kaspa:qq0d")

		// Assert
		assert.ErrorIs(t, err, expectedErr)
	})
}
