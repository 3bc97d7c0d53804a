package repository

import (
	"context"
	"os"
	"testing"

	appconfig "oficina_pro/internal/infrastructure/config"
	"oficina_pro/internal/infrastructure/database"

	"github.com/google/uuid"
)

// The backends below need a running server. Point the matching variable at
// one (e.g. the docker-compose services) to run them.

func TestDatasetDynamoRepository_Integration(t *testing.T) {
	endpoint := os.Getenv("DYNAMODB_TEST_ENDPOINT")
	if endpoint == "" {
		t.Skip("DYNAMODB_TEST_ENDPOINT not set")
	}
	ctx := context.Background()
	ddb, err := database.ConnectDynamoDB(ctx, appconfig.AWSConfig{
		Region:           "us-east-1",
		AccessKeyID:      "local",
		SecretAccessKey:  "local",
		DynamoDBEndpoint: endpoint,
	})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	table := "oficina_datasets_test"
	if err := database.EnsureDatasetTable(ctx, ddb, table); err != nil {
		t.Skipf("dynamodb unreachable: %v", err)
	}
	runDatasetStoreContract(t, NewDatasetDynamoRepository(ddb, table, "test_"+uuid.NewString()))
}

func TestDatasetRedisRepository_Integration(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	ctx := context.Background()
	rdb, err := database.ConnectRedis(ctx, appconfig.RedisConfig{Addr: addr})
	if err != nil {
		t.Skipf("redis unreachable: %v", err)
	}
	defer rdb.Close()

	key := "oficina_test:" + uuid.NewString()
	defer rdb.Del(ctx, key)
	runDatasetStoreContract(t, NewDatasetRedisRepository(rdb, key))
}

func TestDatasetMongoRepository_Integration(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	ctx := context.Background()
	client, err := database.ConnectMongo(ctx, appconfig.MongoConfig{URI: uri, Database: "oficina_test"})
	if err != nil {
		t.Skipf("mongo unreachable: %v", err)
	}
	defer client.Disconnect(ctx)

	collection := client.Database("oficina_test").Collection("datasets")
	runDatasetStoreContract(t, NewDatasetMongoRepository(collection, "test_"+uuid.NewString()))
}
