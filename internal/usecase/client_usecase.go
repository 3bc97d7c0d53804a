package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"oficina_pro/internal/domain/entities"
)

type ClientInput struct {
	Name    string
	Phone   string
	Email   *string
	TaxID   *string
	Address *string
}

type VehicleInput struct {
	ClientID string
	Plate    string
	Make     string
	Model    string
	Year     *int
	Color    *string
}

// ClientDetails is a client with its vehicles attached.
type ClientDetails struct {
	Client   entities.Client
	Vehicles []entities.Vehicle
}

type IClientUseCase interface {
	CreateClient(ctx context.Context, userID string, in ClientInput) (entities.Client, error)
	ListClients(ctx context.Context, userID, search string) ([]entities.Client, error)
	GetClient(ctx context.Context, userID, clientID string) (ClientDetails, error)
	CreateVehicle(ctx context.Context, userID string, in VehicleInput) (entities.Vehicle, error)
}

type ClientUseCase struct {
	ws *Workspace
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(ws *Workspace) *ClientUseCase {
	return &ClientUseCase{ws: ws}
}

// CreateClient does not enforce unique phone or email: the same person may be
// registered twice by different attendants.
func (u *ClientUseCase) CreateClient(ctx context.Context, userID string, in ClientInput) (entities.Client, error) {
	var created entities.Client
	err := u.ws.update(ctx, func(ds *entities.Dataset, now time.Time) error {
		c, err := addClient(ds, userID, in, now)
		created = c
		return err
	})
	if err != nil {
		return entities.Client{}, err
	}
	return created, nil
}

// ListClients returns the user's clients sorted by name. A non-empty search
// matches name, phone or email.
func (u *ClientUseCase) ListClients(ctx context.Context, userID, search string) ([]entities.Client, error) {
	ds, err := u.ws.read(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(search))

	out := []entities.Client{}
	for _, c := range ds.Clients {
		if !ownedBy(c.UserID, userID) {
			continue
		}
		if q != "" && !clientMatches(c, q) {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func clientMatches(c entities.Client, q string) bool {
	if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(c.Phone, q) {
		return true
	}
	return c.Email != nil && strings.Contains(strings.ToLower(*c.Email), q)
}

func (u *ClientUseCase) GetClient(ctx context.Context, userID, clientID string) (ClientDetails, error) {
	ds, err := u.ws.read(ctx)
	if err != nil {
		return ClientDetails{}, err
	}
	c, err := ownedClient(ds, userID, strings.TrimSpace(clientID))
	if err != nil {
		return ClientDetails{}, err
	}
	return ClientDetails{Client: *c, Vehicles: ds.VehiclesOf(c.ID)}, nil
}

func (u *ClientUseCase) CreateVehicle(ctx context.Context, userID string, in VehicleInput) (entities.Vehicle, error) {
	var created entities.Vehicle
	err := u.ws.update(ctx, func(ds *entities.Dataset, now time.Time) error {
		v, err := addVehicle(ds, userID, in, now)
		created = v
		return err
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	return created, nil
}

func addClient(ds *entities.Dataset, userID string, in ClientInput, now time.Time) (entities.Client, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	if name == "" {
		return entities.Client{}, ErrInvalidClientName
	}
	if phone == "" {
		return entities.Client{}, ErrInvalidClientPhone
	}

	c := entities.Client{
		ID:        newID(),
		Name:      name,
		Phone:     phone,
		Email:     optionalString(in.Email),
		TaxID:     optionalString(in.TaxID),
		Address:   optionalString(in.Address),
		CreatedAt: now,
		UpdatedAt: now,
		UserID:    userID,
	}
	ds.Clients = append(ds.Clients, c)
	return c, nil
}

func addVehicle(ds *entities.Dataset, userID string, in VehicleInput, now time.Time) (entities.Vehicle, error) {
	plate := strings.ToUpper(strings.TrimSpace(in.Plate))
	brand := strings.TrimSpace(in.Make)
	model := strings.TrimSpace(in.Model)
	if plate == "" || brand == "" || model == "" {
		return entities.Vehicle{}, ErrInvalidVehicle
	}
	if in.Year != nil && (*in.Year < 1900 || *in.Year > now.Year()+1) {
		return entities.Vehicle{}, ErrInvalidVehicleYear
	}
	if _, err := ownedClient(ds, userID, strings.TrimSpace(in.ClientID)); err != nil {
		return entities.Vehicle{}, err
	}

	v := entities.Vehicle{
		ID:        newID(),
		ClientID:  strings.TrimSpace(in.ClientID),
		Plate:     plate,
		Make:      brand,
		Model:     model,
		Year:      in.Year,
		Color:     optionalString(in.Color),
		CreatedAt: now,
		UserID:    userID,
	}
	ds.Vehicles = append(ds.Vehicles, v)
	return v, nil
}
