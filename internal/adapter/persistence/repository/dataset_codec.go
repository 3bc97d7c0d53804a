package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"oficina_pro/internal/domain/entities"
)

// encodeNext serializes ds as the version that follows it, which is what a
// successful Save stores.
func encodeNext(ds *entities.Dataset) ([]byte, int64, error) {
	next := *ds
	next.Version = ds.Version + 1
	b, err := json.Marshal(&next)
	if err != nil {
		return nil, 0, fmt.Errorf("encode dataset: %w", err)
	}
	return b, next.Version, nil
}

// decodeDataset parses a stored document. The version kept next to the
// payload is authoritative.
func decodeDataset(payload []byte, version int64) (*entities.Dataset, error) {
	var ds entities.Dataset
	if err := json.Unmarshal(payload, &ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if ds.SchemaVersion > entities.DatasetSchemaVersion {
		return nil, fmt.Errorf("dataset schema version %d is newer than supported %d", ds.SchemaVersion, entities.DatasetSchemaVersion)
	}
	ds.Version = version
	ds.Normalize()
	return &ds, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
