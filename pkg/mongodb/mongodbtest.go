//go:build integration

package mongodb

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"

	"bootcamp-api/pkg/config"
)

const (
	TestMongoDbUserName = "root"
	TestMongoDbPassword = "12345"
	TestMongoDbDatabase = "devcamper"
)

// SetupTestClient starts a disposable mongo container and returns a client
// connected to it together with a config pointing at the test database.
func SetupTestClient(t *testing.T, ctx context.Context) (*mongo.Client, *config.MongodbConfig) {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image: "mongo:6",
		Env: map[string]string{
			"MONGO_INITDB_ROOT_USERNAME": TestMongoDbUserName,
			"MONGO_INITDB_ROOT_PASSWORD": TestMongoDbPassword,
		},
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForLog("Waiting for connections"),
			wait.ForListeningPort("27017/tcp"),
		),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	})

	mongodbUri, err := container.Endpoint(ctx, "mongodb")
	if err != nil {
		t.Fatalf("failed to get endpoint: %s", err)
	}

	mongodbConfig := &config.MongodbConfig{
		Uri:         mongodbUri,
		Username:    TestMongoDbUserName,
		Password:    TestMongoDbPassword,
		Database:    TestMongoDbDatabase,
		Collections: config.DefaultCollections(),
	}

	client, err := NewClient(ctx, mongodbConfig)
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		_ = client.Disconnect(ctx)
	})

	return client, mongodbConfig
}
