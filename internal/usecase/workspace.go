package usecase

import (
	"context"
	"sync"
	"time"

	"oficina_pro/internal/domain/entities"
	"oficina_pro/internal/usecase/interfaces"
)

// Workspace serializes read-modify-write cycles over the dataset store.
//
// All use cases of a process share one Workspace so two requests never load
// the same version and overwrite each other. Stores additionally reject stale
// versions, which covers several processes sharing a backend.
type Workspace struct {
	store interfaces.IDatasetStore
	mu    sync.Mutex
	now   func() time.Time
}

func NewWorkspace(store interfaces.IDatasetStore) *Workspace {
	return &Workspace{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (w *Workspace) read(ctx context.Context) (*entities.Dataset, error) {
	ds, err := w.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	ds.Normalize()
	return ds, nil
}

// update loads the dataset, runs fn and saves only when fn succeeds, so a
// failed validation never persists a partial mutation.
func (w *Workspace) update(ctx context.Context, fn func(ds *entities.Dataset, now time.Time) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	ds, err := w.read(ctx)
	if err != nil {
		return err
	}
	if err := fn(ds, w.now()); err != nil {
		return err
	}
	ds.UpdatedAt = w.now()
	return w.store.Save(ctx, ds)
}

func ownedOrder(ds *entities.Dataset, userID, orderID string) (*entities.ServiceOrder, error) {
	o := ds.FindOrder(orderID)
	if o == nil || !ownedBy(o.UserID, userID) {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func ownedClient(ds *entities.Dataset, userID, clientID string) (*entities.Client, error) {
	c := ds.FindClient(clientID)
	if c == nil || !ownedBy(c.UserID, userID) {
		return nil, ErrClientNotFound
	}
	return c, nil
}

// ownedBy treats an empty acting user as a system call with full access.
func ownedBy(owner, userID string) bool {
	return userID == "" || owner == userID
}

func appendTimeline(ds *entities.Dataset, orderID, userID, event string, now time.Time) {
	ev := entities.TimelineEvent{
		ID:        newID(),
		OrderID:   orderID,
		Event:     event,
		CreatedAt: now,
	}
	if userID != "" {
		uid := userID
		ev.UserID = &uid
	}
	ds.Timeline = append(ds.Timeline, ev)
}
