package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestClientUseCase_CreateAndList(t *testing.T) {
	ws, db, _ := newTestWorkspace(t)
	ctx := context.Background()
	uc := NewClientUseCase(ws)

	if _, err := uc.CreateClient(ctx, "u1", ClientInput{Name: "  ", Phone: "1"}); !errors.Is(err, ErrInvalidClientName) {
		t.Fatalf("expected ErrInvalidClientName, got %v", err)
	}
	if _, err := uc.CreateClient(ctx, "u1", ClientInput{Name: "Ana"}); !errors.Is(err, ErrInvalidClientPhone) {
		t.Fatalf("expected ErrInvalidClientPhone, got %v", err)
	}
	if db.saves != 0 {
		t.Fatalf("validation failures must not save, got %d saves", db.saves)
	}

	zeca, err := uc.CreateClient(ctx, "u1", ClientInput{Name: " zeca ", Phone: "11 3333-4444", Email: strPtr("  "), TaxID: strPtr("123.456.789-00")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if zeca.Name != "zeca" || zeca.Email != nil || zeca.TaxID == nil || zeca.UserID != "u1" {
		t.Fatalf("unexpected client: %+v", zeca)
	}
	if _, err := uc.CreateClient(ctx, "u1", ClientInput{Name: "Ana", Phone: "11 2222-1111", Email: strPtr("ana@x.com")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.CreateClient(ctx, "u1", ClientInput{Name: "Ana", Phone: "11 2222-1111"}); err != nil {
		t.Fatalf("duplicates are allowed, got %v", err)
	}
	if _, err := uc.CreateClient(ctx, "u2", ClientInput{Name: "Bruno", Phone: "5"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, err := uc.ListClients(ctx, "u1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 || all[0].Name != "Ana" || all[2].Name != "zeca" {
		t.Fatalf("expected 3 clients sorted by name, got %+v", all)
	}

	byEmail, _ := uc.ListClients(ctx, "u1", "ANA@X")
	if len(byEmail) != 1 {
		t.Fatalf("expected email match, got %+v", byEmail)
	}
	byPhone, _ := uc.ListClients(ctx, "u1", "3333")
	if len(byPhone) != 1 || byPhone[0].ID != zeca.ID {
		t.Fatalf("expected phone match, got %+v", byPhone)
	}
}

func TestClientUseCase_Vehicles(t *testing.T) {
	ws, _, _ := newTestWorkspace(t)
	ctx := context.Background()
	uc := NewClientUseCase(ws)

	c, _ := uc.CreateClient(ctx, "u1", ClientInput{Name: "Maria", Phone: "1"})

	cases := []struct {
		name string
		in   VehicleInput
		want error
	}{
		{name: "missing model", in: VehicleInput{ClientID: c.ID, Plate: "ABC1D23", Make: "Fiat"}, want: ErrInvalidVehicle},
		{name: "year too old", in: VehicleInput{ClientID: c.ID, Plate: "ABC1D23", Make: "Fiat", Model: "Uno", Year: intPtr(1850)}, want: ErrInvalidVehicleYear},
		{name: "unknown client", in: VehicleInput{ClientID: "nope", Plate: "ABC1D23", Make: "Fiat", Model: "Uno"}, want: ErrClientNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.CreateVehicle(ctx, "u1", tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	v, err := uc.CreateVehicle(ctx, "u1", VehicleInput{ClientID: c.ID, Plate: " abc1d23 ", Make: "Fiat", Model: "Uno", Year: intPtr(2012)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Plate != "ABC1D23" {
		t.Fatalf("expected upper-cased plate, got %q", v.Plate)
	}

	if _, err := uc.CreateVehicle(ctx, "u2", VehicleInput{ClientID: c.ID, Plate: "X", Make: "Y", Model: "Z"}); !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("another user's client must be hidden, got %v", err)
	}

	details, err := uc.GetClient(ctx, "u1", c.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details.Vehicles) != 1 || details.Vehicles[0].ID != v.ID {
		t.Fatalf("unexpected details: %+v", details)
	}
	if _, err := uc.GetClient(ctx, "u2", c.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for another user, got %v", err)
	}
}
