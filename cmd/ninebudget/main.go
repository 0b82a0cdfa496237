package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/ninebudget/ninebudget/client"
	"github.com/ninebudget/ninebudget/internal/cli"
)

func main() {
	logger := logrus.New()
	logger.Out = os.Stderr
	logger.SetLevel(logrus.WarnLevel)
	if os.Getenv("NINEBUDGET_DEBUG") != "" {
		logger.SetLevel(logrus.DebugLevel)
	}

	cfg, err := client.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("client.LoadConfig")
	}
	if cfg.SessionFile == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.SessionFile = filepath.Join(dir, "ninebudget", "session")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := cli.NewRunner(os.Stdout, cfg, logger)
	if err := runner.App().RunContext(ctx, os.Args); err != nil {
		logger.WithError(err).Error("ninebudget")
		stop()
		os.Exit(1)
	}
}
