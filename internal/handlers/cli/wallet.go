package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gabapcia/kaswatch/internal/tracker"

	"github.com/urfave/cli/v3"
)

// output resolves the writer CLI commands print to, falling back to stdout
// when the root command has none configured.
func output(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// registerWalletCommand returns a CLI command that registers a wallet address
// for monitoring on behalf of a user and prints its balance snapshot.
//
// Usage example:
//
//	kaswatch register --user 12345 --address kaspa:qq0d6h0prjm5mpdld5pncst3adu0yam6xch4tr69k2...
func registerWalletCommand(ts tracker.Service) *cli.Command {
	return &cli.Command{
		Name:        "register",
		Description: "Register a wallet to be monitored for transaction activity.",
		Usage:       "Registers a wallet address for a user. Must provide both user and address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "user",
				Usage:    "Identifier of the user registering the wallet",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to start monitoring",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				userID  = c.String("user")
				address = c.String("address")
			)

			// Notifications are addressed to the user's own chat, so the
			// user identifier doubles as the delivery destination.
			summary, err := ts.Register(ctx, userID, userID, address)
			if err != nil {
				return err
			}

			w := output(c)
			fmt.Fprintf(w, "Now monitoring %s\n", summary.Address)
			if summary.Partial {
				fmt.Fprintln(w, "Balance and recent activity are temporarily unavailable.")
				return nil
			}

			fmt.Fprintf(w, "Balance: %s KAS (~$%s)\n", summary.Balance, summary.BalanceUSD)
			if summary.RecentActivity != "" {
				fmt.Fprintf(w, "Recent transactions:\n%s\n", summary.RecentActivity)
			}
			return nil
		},
	}
}

// unregisterWalletCommand returns a CLI command that removes a user's wallet
// registration and stops its notifications.
//
// Usage example:
//
//	kaswatch unregister --user 12345 --address kaspa:qq0d6h0prjm5mpdld5pncst3adu0yam6xch4tr69k2...
func unregisterWalletCommand(ts tracker.Service) *cli.Command {
	return &cli.Command{
		Name:        "unregister",
		Description: "Stop monitoring a wallet for a user.",
		Usage:       "Removes a wallet registration. Must provide both user and address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "user",
				Usage:    "Identifier of the user that registered the wallet",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to stop monitoring",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				userID  = c.String("user")
				address = c.String("address")
			)

			if err := ts.Unregister(ctx, userID, userID, address); err != nil {
				return err
			}

			fmt.Fprintf(output(c), "Stopped monitoring %s\n", address)
			return nil
		},
	}
}

// editWalletCommand returns a CLI command that replaces a registered wallet
// address with a new one, moving the monitoring over atomically.
//
// Usage example:
//
//	kaswatch edit --user 12345 --old-address kaspa:qq0d... --new-address kaspa:qrx9...
func editWalletCommand(ts tracker.Service) *cli.Command {
	return &cli.Command{
		Name:        "edit",
		Description: "Replace a registered wallet address with a new one.",
		Usage:       "Moves the registration and its monitoring to the new address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "user",
				Usage:    "Identifier of the user that registered the wallet",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "old-address",
				Usage:    "Currently registered wallet address",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "new-address",
				Usage:    "Wallet address replacing the old one",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				userID     = c.String("user")
				oldAddress = c.String("old-address")
				newAddress = c.String("new-address")
			)

			if err := ts.Edit(ctx, userID, userID, oldAddress, newAddress); err != nil {
				return err
			}

			fmt.Fprintf(output(c), "Now monitoring %s instead of %s\n", newAddress, oldAddress)
			return nil
		},
	}
}

// listWalletsCommand returns a CLI command that lists a user's registered
// wallets with their balances and USD estimates.
//
// Usage example:
//
//	kaswatch list --user 12345
func listWalletsCommand(ts tracker.Service) *cli.Command {
	return &cli.Command{
		Name:        "list",
		Description: "List a user's registered wallets with balances.",
		Usage:       "Shows every wallet registered by the user, in registration order.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "user",
				Usage:    "Identifier of the user whose wallets to list",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			wallets, err := ts.Overview(ctx, c.String("user"))
			if err != nil {
				return err
			}

			w := output(c)
			if len(wallets) == 0 {
				fmt.Fprintln(w, "No wallets registered.")
				return nil
			}

			for i, wallet := range wallets {
				fmt.Fprintf(w, "%d. %s\n   Balance: %s KAS (~$%s)\n",
					i+1, wallet.Address, wallet.Balance, wallet.BalanceUSD)
			}
			return nil
		},
	}
}

// walletHistoryCommand returns a CLI command that prints a wallet's most
// recent transactions.
//
// Usage example:
//
//	kaswatch history --address kaspa:qq0d6h0prjm5mpdld5pncst3adu0yam6xch4tr69k2...
func walletHistoryCommand(ts tracker.Service) *cli.Command {
	return &cli.Command{
		Name:        "history",
		Description: "Show a wallet's most recent transactions.",
		Usage:       "Prints the latest transactions of the given wallet address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to inspect",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			history, err := ts.History(ctx, c.String("address"))
			if err != nil {
				return err
			}

			w := output(c)
			if history == "" {
				fmt.Fprintln(w, "No transactions found.")
				return nil
			}

			fmt.Fprintln(w, history)
			return nil
		},
	}
}
