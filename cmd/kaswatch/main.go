package main

import (
	"context"
	"log"

	"github.com/gabapcia/kaswatch/internal/config"
	"github.com/gabapcia/kaswatch/internal/handlers/cli"
	"github.com/gabapcia/kaswatch/internal/infra/ledger/kaspa"
	"github.com/gabapcia/kaswatch/internal/infra/notify/telegram"
	"github.com/gabapcia/kaswatch/internal/infra/storage/redis"
	"github.com/gabapcia/kaswatch/internal/monitor"
	"github.com/gabapcia/kaswatch/internal/pkg/logger"
	"github.com/gabapcia/kaswatch/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/kaswatch/internal/pkg/transport/http"
	"github.com/gabapcia/kaswatch/internal/subscription"
	"github.com/gabapcia/kaswatch/internal/tracker"
	"github.com/gabapcia/kaswatch/internal/txrender"
)

const serviceName = "kaswatch"

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading configuration: %v", err)
	}

	if cfg.OtelExporterEndpoint != "" {
		shutdown, err := telemetry.Init(ctx, serviceName)
		if err != nil {
			log.Fatalf("initializing telemetry: %v", err)
		}
		defer shutdown(ctx)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	storage, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Fatal(ctx, "failed to connect to redis", "error", err)
	}
	defer storage.Close()

	ledgerClient := kaspa.NewClient(cfg.KaspaAPIBaseURL, transporthttp.NewClient())

	notifier, err := telegram.NewNotifier(cfg.TelegramToken)
	if err != nil {
		logger.Fatal(ctx, "failed to authenticate telegram bot", "error", err)
	}

	renderer, err := txrender.New(cfg.Timezone)
	if err != nil {
		logger.Fatal(ctx, "failed to load render timezone", "error", err)
	}

	watcher := monitor.New(ledgerClient, notifier, renderer,
		monitor.WithPollInterval(cfg.PollInterval),
		monitor.WithObservationStorage(storage),
	)
	defer watcher.Close()

	subscriptions := subscription.New(storage)
	wallets := tracker.New(subscriptions, watcher, ledgerClient, renderer)

	if err := cli.Run(ctx, wallets, watcher); err != nil {
		logger.Fatal(ctx, "command execution failed", "error", err)
	}
}
