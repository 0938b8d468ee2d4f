package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"driwich/internal/commons"
	"driwich/internal/config"
	"driwich/internal/infrastructure/kafka"
	"driwich/internal/infrastructure/logger"
	"driwich/internal/infrastructure/metrics"
	"driwich/internal/infrastructure/mysql"
	"driwich/internal/infrastructure/postgres"
	"driwich/internal/notify"
	"driwich/internal/order"
	"driwich/internal/printing"
	"driwich/internal/product"
	productrepo "driwich/internal/product/repository"
	"driwich/internal/server"
	"driwich/internal/ticket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx := context.Background()

	repo, closeRepo, err := openCatalogStore(ctx, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("connecting to catalog store", zap.Error(err))
	}
	defer closeRepo()

	srvMetrics := metrics.New()

	feed := notify.NewFeed(cfg.Notifications.Limit, zapLogger)
	notifiers := notify.Multi{feed}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer publisher.Close()
		notifiers = append(notifiers, notify.NewStreamNotifier(publisher, zapLogger))
		zapLogger.Info("notification stream enabled", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}

	catalog, productCtrl := product.NewModule(repo, notifiers, srvMetrics, zapLogger)
	if err := catalog.Reload(ctx); err != nil {
		zapLogger.Warn("initial catalog load failed", zap.Error(err))
	} else if cfg.Catalog.SeedFile != "" {
		seed, err := commons.LoadMenuSeed(cfg.Catalog.SeedFile)
		if err != nil {
			zapLogger.Fatal("loading menu seed", zap.Error(err))
		}
		if _, err := catalog.Seed(ctx, seed); err != nil {
			zapLogger.Error("seeding catalog", zap.Error(err))
		}
	}

	formatter := ticket.NewFormatter(cfg.Ticket.ShopName)
	var printer printing.Printer = printing.NewLogPrinter(zapLogger)
	if cfg.Printer.Mode == config.PrinterModeSpool {
		spool := printing.NewSpoolPrinter(cfg.Printer.SpoolDir, cfg.Printer.Command, cfg.Printer.Args, cfg.Printer.DisposeDelay, zapLogger)
		defer spool.Close()
		printer = spool
	}
	dispatcher := printing.NewDispatcher(formatter, printer, zapLogger)

	orderModule := order.NewModule(catalog, dispatcher, formatter, notifiers, srvMetrics, zapLogger)

	router := server.NewRouter(server.Mounts{
		Products:      productCtrl,
		Selection:     orderModule.Selection,
		Orders:        orderModule.Orders,
		Notifications: notify.NewController(feed, zapLogger),
	}, srvMetrics, srvMetrics.Handler(), zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(runCtx); err != nil {
		zapLogger.Error("server stopped with error", zap.Error(err))
		return
	}

	zapLogger.Info("server stopped gracefully")
}

func openCatalogStore(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) (product.Repository, func(), error) {
	if cfg.Catalog.Driver == config.CatalogDriverPostgres {
		pool, err := postgres.NewPool(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		zapLogger.Info("postgres connected")
		return productrepo.NewPostgresRepository(pool), pool.Close, nil
	}

	db, err := mysql.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	zapLogger.Info("database connected")
	return productrepo.NewMySQLRepository(db), func() { _ = db.Close() }, nil
}
