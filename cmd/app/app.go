package app

import (
	"context"
	"fmt"
	"log/slog"

	"blogapi/internal/config"
	"blogapi/internal/database"
	"blogapi/internal/repository"
	"blogapi/internal/service"
	"blogapi/internal/storage"
)

// App connects the database and, when configured, MinIO, then wires the
// repositories and services.
func App(ctx context.Context, cfg *config.Config) (*database.DB, *service.Service, error) {
	// connection DB
	db, err := database.ConnectDB(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// connection MinIO
	var store storage.Storage
	if cfg.MinIO.Enabled() {
		minioClient, err := storage.NewMinIOClient(ctx, cfg.MinIO)
		if err != nil {
			db.CloseDB()
			return nil, nil, fmt.Errorf("failed to initialize MinIO: %w", err)
		}
		store = minioClient
		slog.Info("media storage enabled", "endpoint", cfg.MinIO.Endpoint, "bucket", cfg.MinIO.BucketName)
	} else {
		slog.Info("media storage disabled, MINIO_ENDPOINT not set")
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, store)

	return db, services, nil
}
