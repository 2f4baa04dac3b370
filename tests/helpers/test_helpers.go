package helpers

import (
	"context"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// SetupTestDB connects to the test MongoDB instance. Tests that need a
// live store are skipped when TEST_MONGO_URL is not set.
func SetupTestDB(t *testing.T) *mongo.Database {
	uri := os.Getenv("TEST_MONGO_URL")
	if uri == "" {
		t.Skip("TEST_MONGO_URL not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	dbName := os.Getenv("TEST_DB_NAME")
	if dbName == "" {
		dbName = "carplog_test"
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			t.Logf("Warning: failed to disconnect test client: %v", err)
		}
	})

	return client.Database(dbName)
}

// CleanupTestDB drops the collections the tests write to.
func CleanupTestDB(t *testing.T, db *mongo.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, name := range []string{"users", "catches", "analytics"} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			t.Logf("Warning: failed to drop collection %s: %v", name, err)
		}
	}
}
