package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"oficina_pro/internal/domain/entities"
	"oficina_pro/internal/usecase/interfaces"
	"oficina_pro/pkg/logger"
)

// DatasetSQLiteRepository keeps the dataset in a key/value table of a SQLite
// file (modernc.org/sqlite, no cgo).
type DatasetSQLiteRepository struct {
	db  *sql.DB
	key string
}

var _ interfaces.IDatasetStore = (*DatasetSQLiteRepository)(nil)

func NewDatasetSQLiteRepository(db *sql.DB, key string) *DatasetSQLiteRepository {
	return &DatasetSQLiteRepository{db: db, key: key}
}

func (r *DatasetSQLiteRepository) InitSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS kv_store (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		version INTEGER NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		logger.Errorf(ctx, "[dataset][sqlite] error creating schema: %v", err)
		return err
	}
	return nil
}

func (r *DatasetSQLiteRepository) Load(ctx context.Context) (*entities.Dataset, error) {
	var (
		payload string
		version int64
	)
	err := r.db.QueryRowContext(ctx, `SELECT value, version FROM kv_store WHERE key = ?`, r.key).Scan(&payload, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.NewDataset(), nil
	}
	if err != nil {
		return nil, err
	}
	return decodeDataset([]byte(payload), version)
}

func (r *DatasetSQLiteRepository) Save(ctx context.Context, ds *entities.Dataset) error {
	payload, next, err := encodeNext(ds)
	if err != nil {
		return err
	}
	now := formatTime(time.Now())

	var res sql.Result
	if ds.Version == 0 {
		res, err = r.db.ExecContext(ctx,
			`INSERT INTO kv_store (key, value, version, updated_at) VALUES (?, ?, ?, ?) ON CONFLICT(key) DO NOTHING`,
			r.key, string(payload), next, now)
	} else {
		res, err = r.db.ExecContext(ctx,
			`UPDATE kv_store SET value = ?, version = ?, updated_at = ? WHERE key = ? AND version = ?`,
			string(payload), next, now, r.key, ds.Version)
	}
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		logger.Warnf(ctx, "[dataset][sqlite] version conflict key=%s expected=%d", r.key, ds.Version)
		return interfaces.ErrDatasetVersionConflict
	}
	ds.Version = next
	return nil
}
