package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/sales_notes_service/internal/cache"
	portsrepo "github.com/SscSPs/sales_notes_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_notes_service/internal/core/ports/services"
	"github.com/SscSPs/sales_notes_service/internal/core/services"
	"github.com/SscSPs/sales_notes_service/internal/platform/config"
	"github.com/SscSPs/sales_notes_service/internal/platform/storage"
	"github.com/SscSPs/sales_notes_service/internal/repositories/database/memory"
	"github.com/SscSPs/sales_notes_service/internal/repositories/database/pgsql"
	"github.com/SscSPs/sales_notes_service/pkg/database"
)

// application is the wired object graph shared by the subcommands.
type application struct {
	services *portssvc.ServiceContainer
	closers  []func()
}

func (a *application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// buildApplication wires repositories, the optional reference cache, artifact storage
// and services from configuration.
func buildApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{}

	repos, err := buildRepositories(ctx, cfg, logger, app)
	if err != nil {
		app.Close()
		return nil, err
	}

	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedisReferenceCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		pingErr := redisCache.Ping(pingCtx)
		cancel()
		if pingErr != nil {
			logger.Warn("Redis unreachable, reference lookups will not be cached", slog.String("error", pingErr.Error()))
			_ = redisCache.Close()
		} else {
			logger.Info("Reference lookup cache enabled", slog.String("addr", cfg.RedisAddr), slog.Duration("ttl", cfg.ReferenceCacheTTL))
			repos = cache.WrapRepositories(repos, redisCache, cfg.ReferenceCacheTTL)
			app.closers = append(app.closers, func() { _ = redisCache.Close() })
		}
	}

	artifacts := storage.NewOSArtifactStore(cfg.PDFStoragePath)
	if err := artifacts.EnsureRoot(); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to prepare PDF storage %s: %w", cfg.PDFStoragePath, err)
	}

	app.services = services.NewServiceContainer(repos, artifacts, nil)
	return app, nil
}

func buildRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger, app *application) (portsrepo.RepositoryProvider, error) {
	if !cfg.UsesDatabase() {
		logger.Warn("PGSQL_URL is empty, using the in-memory store with demo customers and products")
		store := memory.NewStore()
		store.SeedDemoData()
		return memory.NewRepositoryProvider(store), nil
	}

	if cfg.RunMigrations {
		if err := database.Migrate(cfg.DatabaseURL, cfg.MigrationsPath, database.MigrateUp, logger); err != nil {
			return portsrepo.RepositoryProvider{}, err
		}
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return portsrepo.RepositoryProvider{}, err
	}
	app.closers = append(app.closers, func() { database.ClosePgxPool(dbPool, logger) })

	return pgsql.NewRepositoryProvider(dbPool), nil
}
