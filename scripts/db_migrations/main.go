package main

import (
	"github.com/sirupsen/logrus"

	server_config "github.com/ninebudget/ninebudget/internal/config"
	"github.com/ninebudget/ninebudget/internal/logging"
	"github.com/ninebudget/ninebudget/internal/storage"
)

func main() {
	logger := logging.SetupLogging()

	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}
	logging.SetLevel(logger, env.LogLevel)

	logger.WithFields(logrus.Fields{
		"host":     env.PostgresAddress,
		"port":     env.PostgresPort,
		"database": env.PostgresDB,
	}).Info("Running migrations")

	if err = storage.RunMigrations(env.PostgresURL(), logger); err != nil {
		logger.WithError(err).Fatal("storage.RunMigrations")
		return
	}
}
