package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/kaswatch/internal/monitor"
	"github.com/gabapcia/kaswatch/internal/tracker"

	"github.com/urfave/cli/v3"
)

// serveCommand returns a CLI command that starts the wallet monitoring
// service. Every stored subscription is resumed, so monitoring picks up
// where it left off after a restart.
//
// Usage example:
//
//	kaswatch serve
//
// The process runs indefinitely until it receives an interrupt (SIGINT or SIGTERM).
func serveCommand(ts tracker.Service, ws monitor.Service) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Starts the wallet monitoring service, resuming every stored subscription.",
		Usage:       "Initializes and runs the monitor. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			defer close(quit)

			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			if err := ts.Resume(ctx); err != nil {
				return err
			}
			defer ws.Close()

			<-quit
			return nil
		},
	}
}
