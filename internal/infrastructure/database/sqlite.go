package database

import (
	"context"
	"database/sql"
	"fmt"

	"oficina_pro/pkg/logger"

	_ "modernc.org/sqlite"
)

// OpenSQLite opens (creating when missing) the SQLite file at path.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A single connection keeps writers serialized inside the process.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite ping failed: %w", err)
	}
	logger.Infof(ctx, "[database][sqlite] opened path=%s", path)
	return db, nil
}
