// cmd/server/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/canchalibre/canchalibre/internal/config"
	"github.com/canchalibre/canchalibre/internal/db"
	"github.com/canchalibre/canchalibre/internal/notify"
	"github.com/canchalibre/canchalibre/internal/scheduler"
)

const shutdownTimeout = 30 * time.Second

func setupLogger(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func newNotifier(cfg *config.Config) notify.Notifier {
	if len(cfg.Notify.Recipients) == 0 {
		log.Info().Msg("No notification recipients configured; logging notifications instead")
		return notify.LogNotifier{}
	}

	ses, err := notify.NewSESNotifier(
		cfg.Notify.AccessKeyID,
		cfg.Notify.SecretAccessKey,
		cfg.Notify.Region,
		cfg.Notify.Sender,
		cfg.Notify.Recipients,
	)
	if err != nil {
		log.Warn().Err(err).Msg("SES notifier unavailable; logging notifications instead")
		return notify.LogNotifier{}
	}
	return ses
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(cfg.App.Environment)

	database, err := db.NewFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer database.Close()

	notifier := newNotifier(cfg)

	if err := scheduler.Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize scheduler")
	}
	if cfg.Jobs.FixtureReminders {
		if err := scheduler.RegisterFixtureReminderJob(database, notifier, cfg.Jobs.ReminderCron); err != nil {
			log.Fatal().Err(err).Msg("Failed to register fixture reminder job")
		}
	}
	if err := scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start scheduler")
	}
	defer func() {
		if err := scheduler.Stop(); err != nil {
			log.Error().Err(err).Msg("Failed to stop scheduler")
		}
	}()

	server := newServer(cfg, database, notifier)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Int("port", cfg.App.Port).Msg("Starting server")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Info().Msg("Shutting down server")
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}
