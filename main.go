package main

import (
	"context"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/sync/errgroup"

	"restockbot/internal/catalog"
)

// app is the process-wide dependency bundle, set once at startup.
var app *AppContext

func main() {
	setupLogger()

	cfg, err := loadConfig("config.json")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	store, err := catalog.Open(cfg.CatalogFile)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	warns := NewWarnStore(cfg.WarnsFile)

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("telegram: %v", err)
	}
	slog.Info("authorized", "account", bot.Self.UserName)

	app = InitApp(cfg, store, warns, &telegramMessenger{bot: bot})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	if cfg.KeepAlive.Enabled {
		g.Go(func() error {
			return runKeepAlive(ctx, app, cfg.KeepAlive.Addr)
		})
	}

	g.Go(func() error {
		u := tgbotapi.NewUpdate(0)
		u.Timeout = 30
		updates := bot.GetUpdatesChan(u)

		go func() {
			<-ctx.Done()
			bot.StopReceivingUpdates()
		}()

		// Updates are handled one at a time: form submissions and
		// publishes assume no concurrent writer.
		for update := range updates {
			handleUpdate(bot, update)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("shutdown with error", "err", err)
		return
	}
	slog.Info("shutdown complete")
}
