// Package bootstrap wires configuration, database, cache, transport and
// engine together for the CLI entry points.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"eveuniverse/internal/infrastructure/cache"
	"eveuniverse/internal/infrastructure/config"
	"eveuniverse/internal/infrastructure/database"
	"eveuniverse/internal/infrastructure/esi"
	"eveuniverse/internal/infrastructure/sde"
	"eveuniverse/internal/infrastructure/tasks"
	"eveuniverse/internal/shared/logger"
	"eveuniverse/internal/universe/engine"
)

// App holds the assembled application services.
type App struct {
	Config *config.Config
	Log    logger.Interface
	Engine *engine.Engine
	Runner *tasks.Runner

	redisClient *redis.Client
}

// Setup loads config for the environment and assembles the full stack.
// The task runner is started; Close shuts everything down.
func Setup(ctx context.Context, env string) (*App, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	app := &App{Config: cfg, Log: log}

	var store cache.Store
	if cfg.Redis.Enabled {
		app.redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := app.redisClient.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		store = cache.NewRedisStore(app.redisClient, "eveuniverse")
		log.Infow("redis connection established", "address", cfg.Redis.GetAddr())
	} else {
		store = cache.NewMemoryStore()
	}

	transport := esi.NewClient(&cfg.ESI, log)
	materials := sde.NewClient(&cfg.SDE, store, log)

	eng, err := engine.New(database.Get(), transport, &cfg.Universe, log,
		engine.WithMaterials(materials))
	if err != nil {
		return nil, err
	}
	runner := tasks.NewRunner(eng, &cfg.Universe, log)
	eng.SetRuntime(runner)
	runner.Start(ctx)

	app.Engine = eng
	app.Runner = runner
	return app, nil
}

// Close stops the task runner and releases connections.
func (a *App) Close() {
	if a.Runner != nil {
		a.Runner.Stop()
	}
	if a.redisClient != nil {
		_ = a.redisClient.Close()
	}
	_ = database.Close()
}
