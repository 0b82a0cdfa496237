package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/ninebudget/ninebudget/api"
	"github.com/ninebudget/ninebudget/internal/config"
	"github.com/ninebudget/ninebudget/internal/logging"
	"github.com/ninebudget/ninebudget/internal/operator"
	"github.com/ninebudget/ninebudget/internal/service"
	"github.com/ninebudget/ninebudget/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logger.Info("ninebudget-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	logging.SetLevel(logger, envConfig.LogLevel)

	if err = storage.RunMigrations(envConfig.PostgresURL(), logger); err != nil {
		logger.WithError(err).Fatal("storage.RunMigrations")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		httpRest := api.Rest{
			Logger:         logger,
			Port:           envConfig.Port,
			AllowedOrigins: envConfig.CORSAllowedOrigins,
			Service:        svc,
			Database:       dbStorage,
		}
		return httpRest.Serve(ctx)
	})

	if err = group.Wait(); err != nil {
		logger.WithError(err).Error("ninebudget-server stopped with error")
		return
	}
	logger.Info("ninebudget-server stopped")
}
