package main

import (
	"context"

	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/expense-server/internal/config"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()

	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	store, err := storage.Open(context.Background(), env.PostgresDSN())
	if err != nil {
		logger.WithError(err).Fatal("storage.Open")
		return
	}
	defer store.Close()

	if err := storage.Migrate(store.DB, logger); err != nil {
		logger.WithError(err).Fatal("storage.Migrate")
		return
	}

	logger.WithFields(logrus.Fields{
		"database": env.PostgresDB,
		"address":  env.PostgresAddress,
	}).Info("Migrations applied")
}
