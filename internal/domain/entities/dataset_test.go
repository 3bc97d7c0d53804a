package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDataset(t *testing.T) {
	ds := NewDataset()
	assert.Equal(t, DatasetSchemaVersion, ds.SchemaVersion)
	assert.NotNil(t, ds.Counters)
	assert.Empty(t, ds.Orders)
	assert.Equal(t, 1, ds.NextOrderNumber("u1"))
	assert.Equal(t, 2, ds.NextOrderNumber("u1"))
	assert.Equal(t, 1, ds.NextOrderNumber("u2"))
}

func TestDataset_Lookups(t *testing.T) {
	t0 := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	ds := NewDataset()
	ds.Users = append(ds.Users, User{ID: "u1", Email: "Dono@Oficina.com"})
	ds.Checklist = append(ds.Checklist,
		ChecklistRow{ID: "c2", OrderID: "os-1", Item: "Macaco", Position: 2},
		ChecklistRow{ID: "c1", OrderID: "os-1", Item: "Extintor", Position: 0},
		ChecklistRow{ID: "x", OrderID: "os-2", Item: "Extintor", Position: 0},
	)
	ds.Timeline = append(ds.Timeline,
		TimelineEvent{ID: "t1", OrderID: "os-1", Event: "a", CreatedAt: t0},
		TimelineEvent{ID: "t2", OrderID: "os-1", Event: "b", CreatedAt: t0},
		TimelineEvent{ID: "t3", OrderID: "os-1", Event: "c", CreatedAt: t0.Add(time.Minute)},
	)

	require.NotNil(t, ds.FindUserByEmail("dono@oficina.COM"))
	assert.Nil(t, ds.FindUserByEmail("outro@oficina.com"))

	rows := ds.ChecklistOf("os-1")
	require.Len(t, rows, 2)
	assert.Equal(t, "c1", rows[0].ID)

	events := ds.TimelineOf("os-1")
	require.Len(t, events, 3)
	assert.Equal(t, []string{"t3", "t2", "t1"}, []string{events[0].ID, events[1].ID, events[2].ID})
}

func TestDataset_RemoveItems(t *testing.T) {
	ds := NewDataset()
	ds.Items = append(ds.Items,
		OrderItem{ID: "i1", OrderID: "os-1", Kind: ItemKindPeca},
		OrderItem{ID: "i2", OrderID: "os-1", Kind: ItemKindServico},
		OrderItem{ID: "i3", OrderID: "os-2", Kind: ItemKindPeca},
	)

	removed := ds.RemoveItems(func(it OrderItem) bool {
		return it.OrderID == "os-1" && it.Kind == ItemKindPeca
	})

	require.Len(t, removed, 1)
	assert.Equal(t, "i1", removed[0].ID)
	assert.Len(t, ds.Items, 2)
	assert.Len(t, ds.ItemsOf("os-1"), 1)
}

func TestDefaultChecklist(t *testing.T) {
	entries := DefaultChecklist("Estepe", "Extintor")
	require.Len(t, entries, len(DefaultChecklistCatalog))
	assert.Equal(t, "Extintor", entries[0].Item)
	assert.True(t, entries[0].Checked)
	assert.False(t, entries[1].Checked)
	assert.True(t, entries[4].Checked)
}
