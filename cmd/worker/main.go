package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"

	"eveuniverse/internal/interfaces/cli/bootstrap"
)

// The worker keeps mirrored data fresh: market prices hourly, entity names
// daily. Catalogue loads stay manual through the CLI.
func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := bootstrap.Setup(ctx, env)
	if err != nil {
		fmt.Printf("failed to start worker: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	log := app.Log.Named("worker")
	log.Infow("starting universe refresh worker", "environment", env)

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Errorw("failed to create scheduler", "error", err)
		os.Exit(1)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(time.Hour),
		gocron.NewTask(func() {
			count, err := app.Engine.UpdateMarketPrices(ctx, 0)
			if err != nil {
				log.Errorw("market price refresh failed", "error", err)
				return
			}
			if count > 0 {
				log.Infow("market prices refreshed", "count", count)
			}
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		log.Errorw("failed to schedule market price refresh", "error", err)
		os.Exit(1)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(24*time.Hour),
		gocron.NewTask(func() {
			count, err := app.Engine.UpdateAllEntitiesFromESI(ctx)
			if err != nil {
				log.Errorw("entity refresh failed", "error", err)
				return
			}
			log.Infow("entities refreshed", "resolved", count)
		}),
	)
	if err != nil {
		log.Errorw("failed to schedule entity refresh", "error", err)
		os.Exit(1)
	}

	scheduler.Start()
	log.Infow("refresh worker started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Infow("received signal, shutting down", "signal", sig)

	if err := scheduler.Shutdown(); err != nil {
		log.Errorw("scheduler shutdown failed", "error", err)
	}
	log.Infow("refresh worker stopped")
}
