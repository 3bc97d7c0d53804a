package repository

import (
	"context"
	"sync"

	"oficina_pro/internal/domain/entities"
	"oficina_pro/internal/usecase/interfaces"
)

// DatasetMemoryRepository keeps the encoded dataset in process memory. Used
// for local runs and tests.
type DatasetMemoryRepository struct {
	mu      sync.Mutex
	payload []byte
	version int64
}

var _ interfaces.IDatasetStore = (*DatasetMemoryRepository)(nil)

func NewDatasetMemoryRepository() *DatasetMemoryRepository {
	return &DatasetMemoryRepository{}
}

func (r *DatasetMemoryRepository) Load(_ context.Context) (*entities.Dataset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.payload == nil {
		return entities.NewDataset(), nil
	}
	return decodeDataset(r.payload, r.version)
}

func (r *DatasetMemoryRepository) Save(_ context.Context, ds *entities.Dataset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ds.Version != r.version {
		return interfaces.ErrDatasetVersionConflict
	}
	payload, next, err := encodeNext(ds)
	if err != nil {
		return err
	}
	r.payload = payload
	r.version = next
	ds.Version = next
	return nil
}
