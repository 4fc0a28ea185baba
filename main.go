package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/api"
	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/config"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logger.Info("expense-server starting")

	if err := run(logger); err != nil {
		logger.WithError(err).Fatal("expense-server stopped")
	}
}

func run(logger *logrus.Logger) error {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return err
	}
	if err := logging.SetLevel(logger, envConfig.LogLevel); err != nil {
		return err
	}
	if envConfig.UsesDevSigningKey() {
		logger.Warn("DEV_MODE: accepting tokens signed with the built-in development key")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbStorage, err := storage.Open(ctx, envConfig.PostgresDSN())
	if err != nil {
		return err
	}
	defer dbStorage.Close()

	if envConfig.MigrateOnStart {
		if err := storage.Migrate(dbStorage.DB, logger); err != nil {
			return err
		}
	}

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	httpRest := api.Rest{
		Logger:     logger,
		Port:       envConfig.Port,
		Service:    service.NewService(dbStorage, delegator),
		Storage:    dbStorage,
		Verifier:   auth.NewVerifier(envConfig.JWTSigningKey),
		CookieName: envConfig.AuthCookieName,
	}
	return httpRest.Serve(ctx)
}
