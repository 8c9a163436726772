package cli

import (
	"context"
	"os"

	"github.com/gabapcia/kaswatch/internal/monitor"
	"github.com/gabapcia/kaswatch/internal/tracker"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the kaswatch CLI application.
//
// It registers all available commands, including:
//
//   - `serve`: Starts the wallet monitoring service.
//   - `register`: Registers a wallet for a user.
//   - `unregister`: Removes a wallet registration.
//   - `edit`: Replaces a registered wallet address.
//   - `list`: Lists a user's registered wallets with balances.
//   - `history`: Shows a wallet's recent transactions.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - ts: The tracker service implementation used by wallet commands.
//   - ws: The monitor service, closed when the serve command shuts down.
//
// This function sets up shell completion and invokes the CLI framework to parse and run commands.
func Run(ctx context.Context, ts tracker.Service, ws monitor.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "kaswatch",
		Description:           "Command-line interface for managing and running the kaswatch wallet monitor.",
		Usage:                 "kaswatch [command] [flags]",
		Commands: []*cli.Command{
			serveCommand(ts, ws),
			registerWalletCommand(ts),
			unregisterWalletCommand(ts),
			editWalletCommand(ts),
			listWalletsCommand(ts),
			walletHistoryCommand(ts),
		},
	}

	return app.Run(ctx, os.Args)
}
