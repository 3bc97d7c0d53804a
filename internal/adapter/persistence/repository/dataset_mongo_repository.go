package repository

import (
	"context"
	"errors"
	"time"

	"oficina_pro/internal/domain/entities"
	"oficina_pro/internal/usecase/interfaces"
	"oficina_pro/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type datasetDocument struct {
	ID        string    `bson:"_id"`
	Version   int64     `bson:"version"`
	Payload   string    `bson:"payload"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// DatasetMongoRepository stores the dataset as one document whose _id is the
// storage key.
type DatasetMongoRepository struct {
	collection *mongo.Collection
	key        string
}

var _ interfaces.IDatasetStore = (*DatasetMongoRepository)(nil)

func NewDatasetMongoRepository(collection *mongo.Collection, key string) *DatasetMongoRepository {
	return &DatasetMongoRepository{collection: collection, key: key}
}

func (r *DatasetMongoRepository) Load(ctx context.Context) (*entities.Dataset, error) {
	var doc datasetDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": r.key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.NewDataset(), nil
	}
	if err != nil {
		return nil, err
	}
	return decodeDataset([]byte(doc.Payload), doc.Version)
}

func (r *DatasetMongoRepository) Save(ctx context.Context, ds *entities.Dataset) error {
	payload, next, err := encodeNext(ds)
	if err != nil {
		return err
	}
	doc := datasetDocument{ID: r.key, Version: next, Payload: string(payload), UpdatedAt: time.Now().UTC()}

	if ds.Version == 0 {
		_, err = r.collection.InsertOne(ctx, doc)
		if mongo.IsDuplicateKeyError(err) {
			return r.conflict(ctx, ds)
		}
		if err != nil {
			return err
		}
		ds.Version = next
		return nil
	}

	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": r.key, "version": ds.Version}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return r.conflict(ctx, ds)
	}
	ds.Version = next
	return nil
}

func (r *DatasetMongoRepository) conflict(ctx context.Context, ds *entities.Dataset) error {
	logger.Warnf(ctx, "[dataset][mongo] version conflict key=%s expected=%d", r.key, ds.Version)
	return interfaces.ErrDatasetVersionConflict
}
