package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"oficina_pro/internal/domain/entities"
	"oficina_pro/internal/usecase/interfaces"
	"oficina_pro/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const (
	redisFieldPayload   = "payload"
	redisFieldVersion   = "version"
	redisFieldUpdatedAt = "updated_at"
)

// DatasetRedisRepository keeps the dataset in one Redis hash. Saves run in a
// WATCH/MULTI transaction on that key.
type DatasetRedisRepository struct {
	rdb *redis.Client
	key string
}

var _ interfaces.IDatasetStore = (*DatasetRedisRepository)(nil)

func NewDatasetRedisRepository(rdb *redis.Client, key string) *DatasetRedisRepository {
	return &DatasetRedisRepository{rdb: rdb, key: key}
}

func (r *DatasetRedisRepository) Load(ctx context.Context) (*entities.Dataset, error) {
	vals, err := r.rdb.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, err
	}
	payload, ok := vals[redisFieldPayload]
	if !ok {
		return entities.NewDataset(), nil
	}
	version, err := strconv.ParseInt(vals[redisFieldVersion], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid dataset version in redis: %w", err)
	}
	return decodeDataset([]byte(payload), version)
}

func (r *DatasetRedisRepository) Save(ctx context.Context, ds *entities.Dataset) error {
	payload, next, err := encodeNext(ds)
	if err != nil {
		return err
	}

	txf := func(tx *redis.Tx) error {
		current, err := tx.HGet(ctx, r.key, redisFieldVersion).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != ds.Version {
			return interfaces.ErrDatasetVersionConflict
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, r.key,
				redisFieldPayload, string(payload),
				redisFieldVersion, next,
				redisFieldUpdatedAt, formatTime(time.Now()),
			)
			return nil
		})
		return err
	}

	err = r.rdb.Watch(ctx, txf, r.key)
	if errors.Is(err, redis.TxFailedErr) || errors.Is(err, interfaces.ErrDatasetVersionConflict) {
		logger.Warnf(ctx, "[dataset][redis] version conflict key=%s expected=%d", r.key, ds.Version)
		return interfaces.ErrDatasetVersionConflict
	}
	if err != nil {
		return err
	}
	ds.Version = next
	return nil
}
