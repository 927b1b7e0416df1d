package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"max.ks1230/expense-tracker/internal/clients/kvsqlite"
	"max.ks1230/expense-tracker/internal/clients/rpc"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/metrics"
	"max.ks1230/expense-tracker/internal/model/accounts"
	"max.ks1230/expense-tracker/internal/model/gateway"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/tracing"
)

func main() {
	defer logger.Sync()
	_ = godotenv.Load()

	logger.Info("Gateway init - start")

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

	var (
		gw    gateway.Gateway
		users accounts.UserStore
	)
	if conf.Postgres().Enabled() {
		db, err := storage.Connect(conf.Postgres())
		if err != nil {
			logger.Fatal("failed to init postgres:", zap.Error(err))
		}
		defer db.Close()
		if err = storage.RunMigrations(db); err != nil {
			logger.Fatal("failed to run migrations:", zap.Error(err))
		}
		gw, users = storage.NewPostgresStorage(db), storage.NewUsersStorage(db)
	} else {
		store, err := kvsqlite.Open(conf.Cache().Path())
		if err != nil {
			logger.Fatal("failed to open sqlite:", zap.Error(err))
		}
		defer store.Close()
		gw, users = storage.NewLocalStorage(ctx, store), storage.NewLocalUsers(ctx, store)
	}

	server, err := rpc.NewServer(conf.Gateway().ListenPort(), gw, accounts.NewService(users, conf.Auth()))
	if err != nil {
		logger.Fatal("failed to init gRPC server:", zap.Error(err))
	}

	logger.Info("Gateway init - end")

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return metrics.Serve(ctx, conf.Metrics().Addr())
	})
	group.Go(func() error {
		server.Serve()
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		server.Shutdown()
		return nil
	})

	if err = group.Wait(); err != nil {
		logger.Error("gateway stopped with error", zap.Error(err))
	}
}
