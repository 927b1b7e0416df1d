package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"max.ks1230/expense-tracker/internal/clients/cache"
	"max.ks1230/expense-tracker/internal/clients/console"
	"max.ks1230/expense-tracker/internal/clients/kafka"
	"max.ks1230/expense-tracker/internal/clients/kvsqlite"
	"max.ks1230/expense-tracker/internal/clients/rpc"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/metrics"
	"max.ks1230/expense-tracker/internal/model/auth"
	"max.ks1230/expense-tracker/internal/model/categories"
	"max.ks1230/expense-tracker/internal/model/expenses"
	"max.ks1230/expense-tracker/internal/model/gateway"
	"max.ks1230/expense-tracker/internal/model/kv"
	"max.ks1230/expense-tracker/internal/model/messages"
	"max.ks1230/expense-tracker/internal/model/notify"
	"max.ks1230/expense-tracker/internal/model/reports"
	refreshsignal "max.ks1230/expense-tracker/internal/model/signal"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/tracing"
)

func main() {
	defer logger.Sync()
	_ = godotenv.Load()

	logger.Info("Tracker init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	tracer, err := tracing.Init(conf.Tracing())
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer tracer.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	group, ctx := errgroup.WithContext(ctx)

	store, closeStore, err := openStore(conf)
	if err != nil {
		logger.Fatal("failed to init local cache:", zap.Error(err))
	}
	defer closeStore()

	clock := clockwork.NewRealClock()

	var (
		gw       gateway.Gateway
		provider auth.Provider
	)
	switch conf.App().Backend() {
	case config.BackendRemote:
		conn, err := rpc.Dial(conf.Gateway().Addr())
		if err != nil {
			logger.Fatal("failed to dial gateway:", zap.Error(err))
		}
		defer conn.Close()
		authClient := rpc.NewAuthClient(ctx, conn, store, clock, conf.Auth())
		group.Go(func() error {
			authClient.RunRefresh(ctx)
			return nil
		})
		gw, provider = rpc.NewClient(conn, authClient), authClient
	default:
		gw, provider = storage.NewLocalStorage(ctx, store), auth.NewLocalProvider(ctx, store)
	}

	categoryService := categories.NewService(gw, conf.App())
	guard := auth.NewGuard(provider, categoryService)
	defer guard.Close()

	refresh := refreshsignal.NewRefresh()
	expenseService := expenses.NewService(gw, guard, refresh, clock, conf.App())

	if conf.Kafka().Enabled() {
		producer, err := kafka.NewProducer(conf.Kafka(), conf.App().Device())
		if err != nil {
			logger.Fatal("failed to init kafka producer", zap.Error(err))
		}
		defer producer.Close()
		expenseService.SetChangeNotifier(producer)

		consumer, err := kafka.NewConsumer(conf.Kafka(), conf.App().Device(), guard, refresh)
		if err != nil {
			logger.Fatal("failed to init kafka consumer", zap.Error(err))
		}
		defer consumer.Close()
		group.Go(func() error {
			return consumer.StartConsuming(ctx)
		})
	}

	loc, err := conf.App().Location()
	if err != nil {
		logger.Fatal("failed to load timezone", zap.Error(err))
	}
	now := func() time.Time { return clock.Now().In(loc) }

	toasts := notify.New(clock, conf.App().DefaultToastTimeout())
	client, err := console.New(os.Stdin, os.Stdout)
	if err != nil {
		logger.Fatal("failed to init console", zap.Error(err))
	}
	defer client.Close()
	toasts.Subscribe(client.ShowToasts)

	msgService := messages.NewService(client, messages.Deps{
		Guard:      guard,
		Expenses:   expenseService,
		Categories: categoryService,
		Dashboard:  reports.NewDashboard(expenseService, guard, refresh, now),
		Notifier:   toasts,
		Now:        now,
	})

	group.Go(func() error {
		return metrics.Serve(ctx, conf.Metrics().Addr())
	})

	guard.InitAuth(ctx)
	logger.Info("Tracker init - end", zap.String("backend", conf.App().Backend()))

	group.Go(func() error {
		client.ListenUpdates(ctx, msgService)
		cancel()
		return nil
	})

	if err = group.Wait(); err != nil {
		logger.Error("tracker stopped with error", zap.Error(err))
	}
}

// openStore picks the persistence of the local reactive cache.
func openStore(conf *config.Service) (kv.Store, func(), error) {
	switch conf.Cache().Backend() {
	case config.CacheSqlite:
		store, err := kvsqlite.Open(conf.Cache().Path())
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case config.CacheMemcached:
		store, err := cache.NewMemcache(conf.Memcached())
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	default:
		return kv.NewMemoryStore(), func() {}, nil
	}
}
