package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apidoc "github.com/connecthq/registrar/api"
	"github.com/connecthq/registrar/internal/api"
	"github.com/connecthq/registrar/internal/api/handler"
	"github.com/connecthq/registrar/internal/config"
	"github.com/connecthq/registrar/internal/countdown"
	"github.com/connecthq/registrar/internal/database"
	"github.com/connecthq/registrar/internal/giveaway"
	"github.com/connecthq/registrar/internal/live"
	"github.com/connecthq/registrar/internal/notify"
	"github.com/connecthq/registrar/internal/registration"
	"github.com/connecthq/registrar/internal/summary"
	"github.com/connecthq/registrar/internal/team"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	if err := run(cfg); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			return err
		}
		slog.Info("database schema applied")
	}

	clock, err := countdown.Parse(cfg.EventStart, cfg.EventTimezone)
	if err != nil {
		return err
	}

	mailer, err := notify.NewMailer(notify.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
		SES: notify.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	})
	if err != nil {
		return err
	}

	hub := live.NewHub(cfg.CORSAllowedOrigins)
	go hub.Run(ctx)

	teamRepo := team.NewRepository(db)
	regRepo := registration.NewRepository(db)
	summarySvc := summary.NewService(regRepo, teamRepo)

	if cfg.SummaryInterval > 0 {
		go summary.NewBroadcaster(summarySvc, hub, cfg.SummaryInterval).Start(ctx)
	}

	router := api.NewRouter(api.RouterDeps{
		DBPinger:       db,
		Version:        cfg.Version,
		Registrations:  registration.NewService(regRepo, hub, notify.NewConfirmer(mailer, cfg.EventName)),
		Teams:          team.NewService(teamRepo, hub),
		Giveaway:       giveaway.NewService(regRepo, hub),
		Summary:        summarySvc,
		Countdown:      handler.NewCountdownHandler(clock, time.Now),
		Live:           hub,
		OpenAPISpec:    apidoc.OpenAPISpec,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting registrar server", "port", cfg.Port, "version", cfg.Version, "driver", cfg.DatabaseDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	// WebSocket connections are hijacked, so Shutdown does not wait for them.
	cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(logHandler))
}
