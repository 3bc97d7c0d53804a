package repository

import (
	"context"
	"testing"
	"time"

	"oficina_pro/internal/domain/entities"
	"oficina_pro/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runDatasetStoreContract checks the behaviour every backend must share.
func runDatasetStoreContract(t *testing.T, store interfaces.IDatasetStore) {
	t.Helper()
	ctx := context.Background()

	ds, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), ds.Version)
	assert.Empty(t, ds.Users)
	assert.NotNil(t, ds.Counters)
	assert.Equal(t, entities.DatasetSchemaVersion, ds.SchemaVersion)

	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ds.Counters["u1"] = 3
	ds.Clients = append(ds.Clients, entities.Client{ID: "c1", Name: "Ana", Phone: "11 99999-0000", UserID: "u1", CreatedAt: created})
	ds.Orders = append(ds.Orders, entities.ServiceOrder{ID: "o1", Number: 3, Status: entities.OrderStatusAberta, TotalValue: 180.5, CreatedAt: created, UserID: "u1"})
	require.NoError(t, store.Save(ctx, ds))
	assert.Equal(t, int64(1), ds.Version)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), loaded.Version)
	assert.Equal(t, 3, loaded.Counters["u1"])
	require.Len(t, loaded.Clients, 1)
	assert.Equal(t, "Ana", loaded.Clients[0].Name)
	require.Len(t, loaded.Orders, 1)
	assert.Equal(t, 180.5, loaded.Orders[0].TotalValue)
	assert.True(t, loaded.Orders[0].CreatedAt.Equal(created))

	stale, err := store.Load(ctx)
	require.NoError(t, err)

	loaded.Counters["u1"] = 4
	require.NoError(t, store.Save(ctx, loaded))
	assert.Equal(t, int64(2), loaded.Version)

	err = store.Save(ctx, stale)
	assert.ErrorIs(t, err, interfaces.ErrDatasetVersionConflict)
	assert.Equal(t, int64(1), stale.Version)

	err = store.Save(ctx, entities.NewDataset())
	assert.ErrorIs(t, err, interfaces.ErrDatasetVersionConflict)

	final, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), final.Version)
	assert.Equal(t, 4, final.Counters["u1"])
}
