package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gramtop961/gilded-gaze-backend/internal/seed"
	"github.com/gramtop961/gilded-gaze-backend/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		logger.Error("DATABASE_URL environment variable is required")
		os.Exit(1)
	}

	databaseName := os.Getenv("DATABASE_NAME")
	if databaseName == "" {
		logger.Error("DATABASE_NAME environment variable is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := store.Connect(ctx, databaseURL, databaseName)
	if err != nil {
		logger.Error("failed to connect to document store", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Client().Disconnect(ctx) }()

	if err := seed.NewSeeder(db, logger).Seed(ctx); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding complete")
}
