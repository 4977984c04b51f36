package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/Holly45vd/products/internal/config"
	"github.com/Holly45vd/products/internal/database"
	"github.com/Holly45vd/products/internal/ingest"
	"github.com/Holly45vd/products/internal/repository"
)

// Seeds the product collection from a CSV file:
//
//	go run scripts/seed_products.go data/products.csv
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: seed_products <csv-file>")
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read file: %v\n", err)
		os.Exit(1)
	}

	records, skipped := ingest.ParseRecords(string(data))
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "No importable rows found")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client, err := database.Connect(ctx, cfg.Database, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer client.Disconnect(context.Background())

	repo := repository.NewProductRepository(client.Database(cfg.Database.Database), logger)

	result, err := repo.Upsert(ctx, records, repository.UpsertOptions{
		ReplaceTags:       true,
		ReplaceCategories: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Upsert failed after %d records: %v\n", result.Applied, err)
		os.Exit(1)
	}

	fmt.Printf("Seeded %d products (%d rows skipped, %d chunks)\n", result.Applied, skipped, result.Chunks)
}
