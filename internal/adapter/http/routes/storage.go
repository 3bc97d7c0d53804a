package routes

import (
	"context"
	"fmt"

	"oficina_pro/internal/adapter/persistence/repository"
	"oficina_pro/internal/infrastructure/config"
	"oficina_pro/internal/infrastructure/database"
	"oficina_pro/internal/usecase/interfaces"
	"oficina_pro/pkg/logger"
)

// newDatasetStore opens the backend selected by STORAGE_DRIVER. The returned
// func releases its connections.
func newDatasetStore(ctx context.Context, cfg *config.Config) (interfaces.IDatasetStore, func(), error) {
	noop := func() {}

	switch cfg.Storage.Driver {
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return nil, noop, err
		}
		if err := database.EnsureDatasetTable(ctx, ddb, cfg.AWS.DatasetTable); err != nil {
			return nil, noop, err
		}
		return repository.NewDatasetDynamoRepository(ddb, cfg.AWS.DatasetTable, cfg.Storage.Key), noop, nil

	case config.StorageSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, noop, err
		}
		repo := repository.NewDatasetSQLiteRepository(db, cfg.Storage.Key)
		if err := repo.InitSchema(ctx); err != nil {
			db.Close()
			return nil, noop, err
		}
		return repo, func() { db.Close() }, nil

	case config.StorageRedis:
		rdb, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, noop, err
		}
		return repository.NewDatasetRedisRepository(rdb, cfg.Storage.Key), func() { rdb.Close() }, nil

	case config.StorageMongo:
		client, err := database.ConnectMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, noop, err
		}
		coll := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.Warnf(context.Background(), "[app][storage] mongo disconnect failed: %v", err)
			}
		}
		return repository.NewDatasetMongoRepository(coll, cfg.Storage.Key), closeFn, nil

	case config.StorageMemory:
		logger.Warnf(ctx, "[app][storage] using in-memory storage, data is lost on restart")
		return repository.NewDatasetMemoryRepository(), noop, nil

	default:
		return nil, noop, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}
