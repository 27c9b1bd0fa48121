package main

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	// .env is optional; flags and real env vars still win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.WithError(err).Warn("could not read .env")
	}

	if err := command.Run(context.Background(), os.Args); err != nil {
		logrus.Errorf("❌ %v", err)
		os.Exit(1)
	}
}
