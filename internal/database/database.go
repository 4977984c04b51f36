package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Holly45vd/products/internal/config"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect creates a MongoDB client and verifies connectivity with a ping.
func Connect(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(uint64(cfg.MaxPoolSize)).
		SetConnectTimeout(time.Duration(cfg.ConnectTimeout) * time.Second)

	logger.Info().
		Str("database", cfg.Database).
		Int("max_pool_size", cfg.MaxPoolSize).
		Msg("connecting to document store")

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.ConnectTimeout)*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping document store: %w", err)
	}

	logger.Info().Msg("document store connection established")

	return client, nil
}
