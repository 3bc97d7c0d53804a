package usecase

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"oficina_pro/internal/domain/entities"
)

const dateOnlyLayout = "2006-01-02"

type OrderInput struct {
	ClientID         string
	VehicleID        string
	Problem          string
	Odometer         int
	FuelLevel        int
	DeliveryEstimate *string
}

// IntakeInput registers a vehicle arrival in one step. Existing client and
// vehicle ids win over the New* payloads.
type IntakeInput struct {
	ClientID   string
	NewClient  *ClientInput
	VehicleID  string
	NewVehicle *VehicleInput
	Order      OrderInput
	// Checklist defaults to the standard catalog, all unchecked, when nil.
	Checklist []entities.ChecklistEntry
}

// OrderPatch edits the descriptive fields of an order. Nil fields are kept.
type OrderPatch struct {
	Problem               *string
	Odometer              *int
	FuelLevel             *int
	DeliveryEstimate      *string
	ClearDeliveryEstimate bool
}

type OrderFilter struct {
	Status entities.OrderStatus
	Search string
}

// OrderSummary is an order hydrated with its client and vehicle.
type OrderSummary struct {
	Order   entities.ServiceOrder
	Client  *entities.Client
	Vehicle *entities.Vehicle
}

type OrderDetails struct {
	OrderSummary
	Items     []entities.OrderItem
	Checklist []entities.ChecklistRow
	Photos    []entities.Photo
	Timeline  []entities.TimelineEvent
	Payments  []entities.Payment
	Totals    entities.Totals
}

type IServiceOrderUseCase interface {
	CreateOrder(ctx context.Context, userID string, in OrderInput) (entities.ServiceOrder, error)
	Intake(ctx context.Context, userID string, in IntakeInput) (OrderDetails, error)
	UpdateOrder(ctx context.Context, userID, orderID string, patch OrderPatch) (entities.ServiceOrder, error)
	ListOrders(ctx context.Context, userID string, filter OrderFilter) ([]OrderSummary, error)
	GetDetails(ctx context.Context, userID, orderID string) (OrderDetails, error)
	SeedChecklist(ctx context.Context, userID, orderID string, entries []entities.ChecklistEntry) ([]entities.ChecklistRow, error)
	ToggleChecklist(ctx context.Context, userID, rowID string) (checked bool, found bool, err error)
	AddPhoto(ctx context.Context, userID, orderID string, kind entities.PhotoKind, url string) (entities.Photo, error)
}

type ServiceOrderUseCase struct {
	ws *Workspace
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(ws *Workspace) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{ws: ws}
}

// CreateOrder opens an order with the user's next sequential number. Numbers
// are never reused.
func (u *ServiceOrderUseCase) CreateOrder(ctx context.Context, userID string, in OrderInput) (entities.ServiceOrder, error) {
	var created entities.ServiceOrder
	err := u.ws.update(ctx, func(ds *entities.Dataset, now time.Time) error {
		o, err := openOrder(ds, userID, in, now)
		created = o
		return err
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return created, nil
}

func (u *ServiceOrderUseCase) Intake(ctx context.Context, userID string, in IntakeInput) (OrderDetails, error) {
	var orderID string
	err := u.ws.update(ctx, func(ds *entities.Dataset, now time.Time) error {
		clientID := strings.TrimSpace(in.ClientID)
		if clientID == "" {
			if in.NewClient == nil {
				return ErrInvalidClientName
			}
			c, err := addClient(ds, userID, *in.NewClient, now)
			if err != nil {
				return err
			}
			clientID = c.ID
		}

		vehicleID := strings.TrimSpace(in.VehicleID)
		if vehicleID == "" {
			if in.NewVehicle == nil {
				return ErrInvalidVehicle
			}
			vin := *in.NewVehicle
			vin.ClientID = clientID
			v, err := addVehicle(ds, userID, vin, now)
			if err != nil {
				return err
			}
			vehicleID = v.ID
		}

		oin := in.Order
		oin.ClientID = clientID
		oin.VehicleID = vehicleID
		o, err := openOrder(ds, userID, oin, now)
		if err != nil {
			return err
		}

		entries := in.Checklist
		if entries == nil {
			entries = entities.DefaultChecklist()
		}
		if _, err := seedChecklist(ds, o.ID, entries, now); err != nil {
			return err
		}
		orderID = o.ID
		return nil
	})
	if err != nil {
		return OrderDetails{}, err
	}
	return u.GetDetails(ctx, userID, orderID)
}

func (u *ServiceOrderUseCase) UpdateOrder(ctx context.Context, userID, orderID string, patch OrderPatch) (entities.ServiceOrder, error) {
	var updated entities.ServiceOrder
	err := u.ws.update(ctx, func(ds *entities.Dataset, now time.Time) error {
		o, err := ownedOrder(ds, userID, strings.TrimSpace(orderID))
		if err != nil {
			return err
		}

		next := *o
		if patch.Problem != nil {
			next.ReportedProblem = strings.TrimSpace(*patch.Problem)
		}
		if patch.Odometer != nil {
			next.Odometer = *patch.Odometer
		}
		if patch.FuelLevel != nil {
			next.FuelLevel = *patch.FuelLevel
		}
		switch {
		case patch.ClearDeliveryEstimate:
			next.DeliveryEstimate = nil
		case patch.DeliveryEstimate != nil:
			next.DeliveryEstimate = patch.DeliveryEstimate
		}
		if err := validateOrderFields(next.Odometer, next.FuelLevel, next.DeliveryEstimate); err != nil {
			return err
		}
		next.DeliveryEstimate = optionalString(next.DeliveryEstimate)
		next.UpdatedAt = now

		*o = next
		updated = next
		return nil
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return updated, nil
}

// ListOrders returns the user's orders newest first, hydrated with client and
// vehicle. Search matches the order number, the plate or the client name.
func (u *ServiceOrderUseCase) ListOrders(ctx context.Context, userID string, filter OrderFilter) ([]OrderSummary, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, ErrInvalidOrderStatus
	}
	ds, err := u.ws.read(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(filter.Search))

	out := []OrderSummary{}
	for _, o := range ds.Orders {
		if !ownedBy(o.UserID, userID) {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		s := hydrate(ds, o)
		if q != "" && !summaryMatches(s, q) {
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order.CreatedAt.After(out[j].Order.CreatedAt)
	})
	return out, nil
}

func summaryMatches(s OrderSummary, q string) bool {
	if strings.Contains(strconv.Itoa(s.Order.Number), q) {
		return true
	}
	if s.Vehicle != nil && strings.Contains(strings.ToLower(s.Vehicle.Plate), q) {
		return true
	}
	return s.Client != nil && strings.Contains(strings.ToLower(s.Client.Name), q)
}

func (u *ServiceOrderUseCase) GetDetails(ctx context.Context, userID, orderID string) (OrderDetails, error) {
	ds, err := u.ws.read(ctx)
	if err != nil {
		return OrderDetails{}, err
	}
	o, err := ownedOrder(ds, userID, strings.TrimSpace(orderID))
	if err != nil {
		return OrderDetails{}, err
	}
	return details(ds, *o), nil
}

// SeedChecklist stores the intake inspection rows in catalog order. An order
// is seeded once.
func (u *ServiceOrderUseCase) SeedChecklist(ctx context.Context, userID, orderID string, entries []entities.ChecklistEntry) ([]entities.ChecklistRow, error) {
	var rows []entities.ChecklistRow
	err := u.ws.update(ctx, func(ds *entities.Dataset, now time.Time) error {
		o, err := ownedOrder(ds, userID, strings.TrimSpace(orderID))
		if err != nil {
			return err
		}
		if len(ds.ChecklistOf(o.ID)) > 0 {
			return ErrChecklistAlreadySeeded
		}
		rows, err = seedChecklist(ds, o.ID, entries, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ToggleChecklist flips a row. found is false when the row does not exist (or
// belongs to another user); nothing is written in that case.
func (u *ServiceOrderUseCase) ToggleChecklist(ctx context.Context, userID, rowID string) (bool, bool, error) {
	var checked bool
	err := u.ws.update(ctx, func(ds *entities.Dataset, _ time.Time) error {
		row := ds.FindChecklistRow(strings.TrimSpace(rowID))
		if row == nil {
			return ErrChecklistRowNotFound
		}
		if _, err := ownedOrder(ds, userID, row.OrderID); err != nil {
			return ErrChecklistRowNotFound
		}
		row.Checked = !row.Checked
		checked = row.Checked
		return nil
	})
	if errors.Is(err, ErrChecklistRowNotFound) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return checked, true, nil
}

func (u *ServiceOrderUseCase) AddPhoto(ctx context.Context, userID, orderID string, kind entities.PhotoKind, url string) (entities.Photo, error) {
	url = strings.TrimSpace(url)
	if !kind.IsValid() {
		return entities.Photo{}, ErrInvalidPhotoKind
	}
	if url == "" {
		return entities.Photo{}, ErrInvalidPhotoURL
	}

	var photo entities.Photo
	err := u.ws.update(ctx, func(ds *entities.Dataset, now time.Time) error {
		o, err := ownedOrder(ds, userID, strings.TrimSpace(orderID))
		if err != nil {
			return err
		}
		photo = entities.Photo{ID: newID(), OrderID: o.ID, Kind: kind, URL: url, CreatedAt: now}
		ds.Photos = append(ds.Photos, photo)
		return nil
	})
	if err != nil {
		return entities.Photo{}, err
	}
	return photo, nil
}

func openOrder(ds *entities.Dataset, userID string, in OrderInput, now time.Time) (entities.ServiceOrder, error) {
	if err := validateOrderFields(in.Odometer, in.FuelLevel, in.DeliveryEstimate); err != nil {
		return entities.ServiceOrder{}, err
	}
	client, err := ownedClient(ds, userID, strings.TrimSpace(in.ClientID))
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	vehicle := ds.FindVehicle(strings.TrimSpace(in.VehicleID))
	if vehicle == nil || !ownedBy(vehicle.UserID, userID) {
		return entities.ServiceOrder{}, ErrVehicleNotFound
	}
	if vehicle.ClientID != client.ID {
		return entities.ServiceOrder{}, ErrVehicleClientMismatch
	}

	o := entities.ServiceOrder{
		ID:               newID(),
		Number:           ds.NextOrderNumber(userID),
		ClientID:         client.ID,
		VehicleID:        vehicle.ID,
		Status:           entities.OrderStatusAberta,
		ReportedProblem:  strings.TrimSpace(in.Problem),
		Odometer:         in.Odometer,
		FuelLevel:        in.FuelLevel,
		DeliveryEstimate: optionalString(in.DeliveryEstimate),
		EntryDate:        now,
		CreatedAt:        now,
		UpdatedAt:        now,
		UserID:           userID,
	}
	ds.Orders = append(ds.Orders, o)
	return o, nil
}

func validateOrderFields(odometer, fuel int, estimate *string) error {
	if odometer < 0 {
		return ErrInvalidOdometer
	}
	if fuel < 0 || fuel > 100 {
		return ErrInvalidFuelLevel
	}
	if e := optionalString(estimate); e != nil {
		if _, err := time.Parse(dateOnlyLayout, *e); err != nil {
			return ErrInvalidDeliveryEstimate
		}
	}
	return nil
}

func seedChecklist(ds *entities.Dataset, orderID string, entries []entities.ChecklistEntry, now time.Time) ([]entities.ChecklistRow, error) {
	rows := make([]entities.ChecklistRow, 0, len(entries))
	for i, e := range entries {
		label := strings.TrimSpace(e.Item)
		if label == "" {
			return nil, ErrInvalidChecklist
		}
		rows = append(rows, entities.ChecklistRow{
			ID:        newID(),
			OrderID:   orderID,
			Item:      label,
			Checked:   e.Checked,
			Position:  i,
			CreatedAt: now,
		})
	}
	ds.Checklist = append(ds.Checklist, rows...)
	return rows, nil
}

func hydrate(ds *entities.Dataset, o entities.ServiceOrder) OrderSummary {
	s := OrderSummary{Order: o}
	if c := ds.FindClient(o.ClientID); c != nil {
		cc := *c
		s.Client = &cc
	}
	if v := ds.FindVehicle(o.VehicleID); v != nil {
		vv := *v
		s.Vehicle = &vv
	}
	return s
}

func details(ds *entities.Dataset, o entities.ServiceOrder) OrderDetails {
	items := ds.ItemsOf(o.ID)
	return OrderDetails{
		OrderSummary: hydrate(ds, o),
		Items:        items,
		Checklist:    ds.ChecklistOf(o.ID),
		Photos:       ds.PhotosOf(o.ID),
		Timeline:     ds.TimelineOf(o.ID),
		Payments:     ds.PaymentsOf(o.ID),
		Totals:       entities.ComputeTotals(items, o.LaborValue),
	}
}
