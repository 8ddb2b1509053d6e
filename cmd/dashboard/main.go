package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"weatherdash.app/internal/app"
	"weatherdash.app/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found or error loading it")
	}

	// Keep diagnostics off the dashboard output
	slog.SetDefault(logger.New(os.Stderr, logger.LoadOptions(logger.Options{Level: "warn", Format: "text"})))

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())

	dashboard, err := app.NewDashboardApplication(app.DashboardOptions{
		In:         os.Stdin,
		Out:        os.Stdout,
		ShowPrompt: interactive,
	})
	if err != nil {
		slog.Error("Failed to initialize dashboard", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// unblock the pending read so Run can return
		<-ctx.Done()
		_ = os.Stdin.Close()
	}()

	runErr := dashboard.Run(ctx)
	if err := dashboard.Shutdown(); err != nil {
		slog.Error("Error during shutdown", "error", err)
	}
	if runErr != nil {
		slog.Error("Dashboard stopped", "error", runErr)
		os.Exit(1)
	}
}
