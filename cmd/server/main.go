package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/paydesk/transfer-service/internal/adapter/handler"
	"github.com/paydesk/transfer-service/internal/adapter/notification"
	"github.com/paydesk/transfer-service/internal/adapter/storage/memory"
	"github.com/paydesk/transfer-service/internal/config"
	"github.com/paydesk/transfer-service/internal/domain"
	"github.com/paydesk/transfer-service/internal/usecase/account"
	"github.com/paydesk/transfer-service/internal/usecase/transfer"
)

func main() {
	// 1. Load config
	cfg := config.LoadConfig()

	// 2. Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 3. Initialize the in-memory ledger
	store := memory.NewStore()

	// 4. Pick the notifier
	var notifier domain.Notifier
	if cfg.WebhookURL != "" {
		notifier = notification.NewWebhookNotifier(cfg.WebhookURL)
		slog.Info("using webhook notifier", "url", cfg.WebhookURL)
	} else {
		notifier = notification.NewLogNotifier()
	}

	// 5. Initialize services (use cases)
	accountService := account.NewService(store)
	transferService := transfer.NewService(store, notifier)

	// 6. Setup fiber
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(cors.New())

	handler.RegisterRoutes(app,
		&handler.AccountHandler{Accounts: accountService},
		&handler.TransferHandler{Transfers: transferService},
	)

	// 7. Start server in a goroutine
	go func() {
		slog.Info("server listening", "port", cfg.Port, "env", cfg.Env)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	// 8. Graceful shutdown
	waitForShutdown(app)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down
// the server.
func waitForShutdown(app *fiber.App) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	slog.Info("shutting down", "signal", sig.String())

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
