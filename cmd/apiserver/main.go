package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	appanalysis "github.com/slatedeck/GreenLight-Intelligence/internal/application/analysis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/application/development"
	"github.com/slatedeck/GreenLight-Intelligence/internal/config"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/version"
	infracatalog "github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/catalog"
	"github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/database/filestore"
	"github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/database/postgres"
	"github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/database/postgres/repositories"
	infraredis "github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/database/redis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/messaging/kafka"
	"github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/monitoring/logging"
	prommetrics "github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/monitoring/prometheus"
	httpiface "github.com/slatedeck/GreenLight-Intelligence/internal/interfaces/http"
	"github.com/slatedeck/GreenLight-Intelligence/internal/interfaces/http/handlers"
	"github.com/slatedeck/GreenLight-Intelligence/pkg/errors"
)

// buildVersion is set at build time via -ldflags.
var buildVersion = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	loader := config.NewLoader(*configPath)
	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	errors.SetDebugMode(cfg.Debug)

	logger, err := logging.NewLogger(cfg.Log.ToLogging())
	if err != nil {
		return err
	}
	logger.Info("starting greenlight api server", logging.String("version", buildVersion))

	loader.Watch(func(next config.Config) {
		logger.Info("configuration reloaded", logging.String("logLevel", next.Log.Level))
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := prommetrics.New(nil)
	provider := infracatalog.NewMemoryProvider()

	// Optional infrastructure: each subsystem degrades to its local
	// fallback so the scoring API stays available.
	var cache appanalysis.ResultCache
	var locker development.ProjectLocker = infraredis.NewLocalLocker()
	if cfg.Redis.Enabled {
		client, err := infraredis.NewClient(ctx, cfg.Redis.Config)
		if err != nil {
			logger.Warn("redis unavailable, running without cache and distributed lock", logging.Err(err))
		} else {
			defer client.Close()
			cache = infraredis.NewResultCache(client, logger)
			locker = infraredis.NewProjectLocker(client, logger)
		}
	}

	var events *kafka.Producer
	if cfg.Kafka.Enabled {
		events = kafka.NewProducer(cfg.Kafka.Config, logger)
		defer events.Close()
	}

	var repo version.Repository
	if cfg.Postgres.Enabled {
		if err := postgres.Migrate(cfg.Postgres.Config); err != nil {
			return err
		}
		pool, err := postgres.NewPool(ctx, cfg.Postgres.Config)
		if err != nil {
			return err
		}
		defer pool.Close()
		repo = repositories.NewVersionRepository(pool, logger)
	} else {
		repo, err = filestore.NewVersionRepository(cfg.Storage.Dir)
		if err != nil {
			return err
		}
		logger.Info("postgres disabled, using file-backed version store",
			logging.String("dir", cfg.Storage.Dir))
	}

	var analyzerEvents appanalysis.EventPublisher
	var versionEvents development.VersionEvents
	if events != nil {
		analyzerEvents = events
		versionEvents = events
	}
	analyzer := appanalysis.NewService(provider, cache, analyzerEvents, metrics, logger)
	devsvc := development.NewService(analyzer, repo, locker, versionEvents, logger)

	router := httpiface.NewRouter(httpiface.RouterDeps{
		Analysis:    handlers.NewAnalysisHandler(analyzer),
		Development: handlers.NewDevelopmentHandler(devsvc),
		Catalog:     provider,
		Metrics:     metrics,
		Logger:      logger,
		Version:     buildVersion,
	})
	server := httpiface.NewServer(cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
