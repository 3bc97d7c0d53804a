package interfaces

import (
	"context"
	"errors"

	"oficina_pro/internal/domain/entities"
)

// ErrDatasetVersionConflict is returned by Save when the stored document
// changed after it was loaded.
var ErrDatasetVersionConflict = errors.New("dataset was modified concurrently")

// IDatasetStore persists the whole shop dataset as one document.
//
//   - Load returns the stored dataset, or a fresh entities.NewDataset() when
//     nothing was saved yet. It never returns nil without an error.
//   - Save writes the full document if the stored version still equals
//     ds.Version, then increments ds.Version.
type IDatasetStore interface {
	Load(ctx context.Context) (*entities.Dataset, error)
	Save(ctx context.Context, ds *entities.Dataset) error
}
