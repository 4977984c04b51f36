package integration

import (
	"context"
	"testing"
	"time"

	"github.com/Holly45vd/products/internal/config"
	"github.com/Holly45vd/products/internal/database"
	"github.com/Holly45vd/products/internal/model"

	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

// TestDB represents a test document-store instance.
type TestDB struct {
	Container *mongodb.MongoDBContainer
	Client    *mongo.Client
	DB        *mongo.Database
	ConnStr   string
}

// SetupTestDB creates a MongoDB test container and a connected client.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	mongoContainer, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		t.Fatalf("failed to start mongodb container: %v", err)
	}

	connStr, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		URI:            connStr,
		Database:       "products_test",
		ConnectTimeout: 30,
		MaxPoolSize:    10,
	}

	logger := zerolog.Nop()
	client, err := database.Connect(ctx, dbConfig, logger)
	if err != nil {
		t.Fatalf("failed to connect to mongodb: %v", err)
	}

	db := client.Database(dbConfig.Database)

	t.Cleanup(func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			t.Logf("failed to disconnect client: %v", err)
		}
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: mongoContainer,
		Client:    client,
		DB:        db,
		ConnStr:   connStr,
	}
}

// SeedProducts inserts test product documents directly into the store.
func SeedProducts(t *testing.T, db *mongo.Database) {
	t.Helper()

	ctx := context.Background()
	now := time.Now().UTC()

	products := []interface{}{
		model.Product{ID: "P001", Name: "전통문양 봉투 2매입", Price: 1000, ProductCode: "1038756", Tags: []string{"전통", "봉투"}, CategoryL1: "지류", CategoryL2: "봉투", Stock: 30, UpdatedAt: now.Add(-4 * time.Minute)},
		model.Product{ID: "P002", Name: "모란 엽서", Price: 1500, Tags: []string{"전통", "엽서"}, CategoryL1: "지류", CategoryL2: "카드/엽서", Stock: 12, UpdatedAt: now.Add(-3 * time.Minute)},
		model.Product{ID: "P003", Name: "자개 키링", Price: 8000, Tags: []string{"자개"}, CategoryL1: "소품", CategoryL2: "키링", UpdatedAt: now.Add(-2 * time.Minute)},
		model.Product{ID: "P004", Name: "청자 머그", Price: 12000, Tags: []string{"도자"}, CategoryL1: "리빙", CategoryL2: "머그/컵", Status: "재입고 예정", UpdatedAt: now.Add(-1 * time.Minute)},
		model.Product{ID: "P005", Name: "은장도 책갈피", Price: 4500, UpdatedAt: now},
	}

	if _, err := db.Collection("products").InsertMany(ctx, products); err != nil {
		t.Fatalf("failed to seed products: %v", err)
	}
}

// CleanupDB removes all documents from the test collections.
func CleanupDB(t *testing.T, db *mongo.Database) {
	t.Helper()

	ctx := context.Background()

	for _, name := range []string{"products", "saved", "orders"} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			t.Logf("failed to drop collection %s: %v", name, err)
		}
	}
}
