package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"oficina_pro/internal/domain/entities"
	mock_interfaces "oficina_pro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// fakeDB is the document held behind a mocked store.
type fakeDB struct {
	ds    *entities.Dataset
	saves int
}

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

var baseTime = time.Date(2024, 6, 10, 13, 0, 0, 0, time.UTC)

func cloneDataset(t *testing.T, ds *entities.Dataset) *entities.Dataset {
	t.Helper()
	b, err := json.Marshal(ds)
	if err != nil {
		t.Fatalf("marshal dataset: %v", err)
	}
	var out entities.Dataset
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal dataset: %v", err)
	}
	return &out
}

// newTestWorkspace wires a Workspace to a gomock store that keeps the
// document in memory, copying it on every Load and Save.
func newTestWorkspace(t *testing.T) (*Workspace, *fakeDB, *testClock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mock_interfaces.NewMockIDatasetStore(ctrl)
	db := &fakeDB{ds: entities.NewDataset()}
	clock := &testClock{now: baseTime}

	store.EXPECT().Load(gomock.Any()).DoAndReturn(func(context.Context) (*entities.Dataset, error) {
		return cloneDataset(t, db.ds), nil
	}).AnyTimes()
	store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ds *entities.Dataset) error {
		db.ds = cloneDataset(t, ds)
		db.saves++
		return nil
	}).AnyTimes()

	ws := NewWorkspace(store)
	ws.now = clock.Now
	return ws, db, clock
}

// seedOrder creates a client, a vehicle and an open order for user.
func seedOrder(t *testing.T, ws *Workspace, user string) entities.ServiceOrder {
	t.Helper()
	clients := NewClientUseCase(ws)
	orders := NewServiceOrderUseCase(ws)
	ctx := context.Background()

	c, err := clients.CreateClient(ctx, user, ClientInput{Name: "Maria Souza", Phone: "(11) 98888-7777"})
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	v, err := clients.CreateVehicle(ctx, user, VehicleInput{ClientID: c.ID, Plate: "abc1d23", Make: "Fiat", Model: "Uno"})
	if err != nil {
		t.Fatalf("create vehicle: %v", err)
	}
	o, err := orders.CreateOrder(ctx, user, OrderInput{ClientID: c.ID, VehicleID: v.ID, Problem: "Barulho no freio", Odometer: 120000, FuelLevel: 50})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	return o
}

func TestWorkspace_Update(t *testing.T) {
	t.Run("load error is returned and nothing saved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_interfaces.NewMockIDatasetStore(ctrl)
		store.EXPECT().Load(gomock.Any()).Return(nil, errors.New("db"))
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

		err := NewWorkspace(store).update(context.Background(), func(*entities.Dataset, time.Time) error { return nil })
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("fn error skips save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_interfaces.NewMockIDatasetStore(ctrl)
		store.EXPECT().Load(gomock.Any()).Return(entities.NewDataset(), nil)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

		err := NewWorkspace(store).update(context.Background(), func(*entities.Dataset, time.Time) error { return ErrOrderNotFound })
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("save error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_interfaces.NewMockIDatasetStore(ctrl)
		store.EXPECT().Load(gomock.Any()).Return(&entities.Dataset{}, nil)
		store.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(&entities.Dataset{})).DoAndReturn(
			func(_ context.Context, ds *entities.Dataset) error {
				if ds.Counters == nil {
					t.Fatalf("expected normalized dataset")
				}
				return errors.New("conflict")
			},
		)

		err := NewWorkspace(store).update(context.Background(), func(*entities.Dataset, time.Time) error { return nil })
		if err == nil || err.Error() != "conflict" {
			t.Fatalf("expected conflict error, got %v", err)
		}
	})
}
