package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"creator_sync/internal/config"
	"creator_sync/internal/consent"
	"creator_sync/internal/httpserver"
	"creator_sync/internal/listener"
	"creator_sync/internal/publisher"
	"creator_sync/internal/quota"
	"creator_sync/internal/scheduler"
	"creator_sync/internal/service"
	"creator_sync/internal/storage/postgres"
	"creator_sync/internal/supervisor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	if err := run(cfg, logger); err != nil {
		logger.Error("syncer stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	if cfg.Database.Migrate {
		if err := postgres.Migrate(cfg.Database.URL(), logger); err != nil {
			return err
		}
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("connected to database")

	// Stores
	accountStore := postgres.NewAccountStore(db)
	recordStore := postgres.NewRecordStore(db)
	ledgerStore := postgres.NewLedgerStore(db)
	consentStore := postgres.NewConsentStore(db)
	locker := postgres.NewAccountLocker(db, logger)
	txManager := postgres.NewTransactionManager(db)

	provider, err := newProvider(cfg.Provider, logger)
	if err != nil {
		return err
	}

	budgets := make(map[string]int64, len(cfg.Quota.DailyBudgets)+1)
	for p, b := range cfg.Quota.DailyBudgets {
		budgets[p] = b
	}
	budgets[provider.ID()] = cfg.Quota.BudgetFor(provider.ID())
	tracker := quota.NewTracker(ledgerStore, budgets, cfg.Quota.DefaultBudget, cfg.Quota.Window, logger)

	consentCache := consent.NewCache(consentStore, cfg.Consent.CacheSize, cfg.Consent.CacheTTL)

	// a nil *RabbitMQ must not reach the services as a non-nil interface
	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			return err
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	syncService := service.NewSyncService(
		provider,
		accountStore,
		recordStore,
		consentCache,
		tracker,
		locker,
		txManager,
		pub,
		logger,
		cfg.Sync,
	)

	retentionService := service.NewRetentionService(
		provider.ID(),
		accountStore,
		recordStore,
		consentCache,
		consentCache,
		pub,
		logger,
		cfg.Retention,
	)

	tree := supervisor.NewTree(logger, supervisor.TreeConfig{
		FailureThreshold: cfg.Supervisor.FailureThreshold,
		FailureDecay:     cfg.Supervisor.FailureDecay,
		FailureBackoff:   cfg.Supervisor.FailureBackoff,
		ShutdownTimeout:  cfg.Supervisor.ShutdownTimeout,
	})

	tree.AddJob(scheduler.NewScheduler(syncService, cfg.Sync.Interval, logger))
	tree.AddJob(scheduler.NewScheduler(retentionService, cfg.Retention.Interval, logger))

	if cfg.RabbitMQ.Enabled {
		tree.AddMessagingService(listener.NewConsentListener(listener.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			QueueName:  cfg.RabbitMQ.ConsentQueue,
			RoutingKey: cfg.RabbitMQ.ConsentRouting,
		}, consentStore, consentCache, retentionService, syncService, logger))
	}

	tree.AddAPIService(httpserver.New(httpserver.Config{
		Addr:            cfg.HTTP.Addr,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}, db, tracker, logger))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting creator syncer",
		"provider", provider.ID(),
		"sync_interval", cfg.Sync.Interval,
		"retention_interval", cfg.Retention.Interval,
		"max_pages", cfg.Sync.MaxPagesPerSync,
		"rabbitmq", cfg.RabbitMQ.Enabled,
	)

	err = tree.Serve(ctx)
	if report, rerr := tree.UnstoppedServiceReport(); rerr == nil && len(report) > 0 {
		for _, u := range report {
			logger.Warn("service did not stop in time", "service", u.Name)
		}
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("syncer stopped")
	return nil
}

func setupLogger(level string) *slog.Logger {
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

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
