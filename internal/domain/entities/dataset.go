package entities

import (
	"sort"
	"strings"
	"time"
)

// DatasetSchemaVersion is bumped when the document layout changes.
const DatasetSchemaVersion = 1

// Dataset is the whole persisted document. Every operation loads it, mutates
// it and saves it back as one unit.
//
// Version is the optimistic lock counter maintained by the stores: a Save is
// rejected when the stored version moved since the Load.
type Dataset struct {
	SchemaVersion int             `json:"schema_version"`
	Version       int64           `json:"version"`
	Users         []User          `json:"users"`
	Clients       []Client        `json:"clientes"`
	Vehicles      []Vehicle       `json:"veiculos"`
	Orders        []ServiceOrder  `json:"ordens_servico"`
	Checklist     []ChecklistRow  `json:"os_checklist"`
	Items         []OrderItem     `json:"os_itens"`
	Photos        []Photo         `json:"os_fotos"`
	Timeline      []TimelineEvent `json:"os_timeline"`
	Payments      []Payment       `json:"os_pagamentos"`
	Counters      map[string]int  `json:"counters"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewDataset returns the empty document used when nothing is stored yet.
func NewDataset() *Dataset {
	ds := &Dataset{SchemaVersion: DatasetSchemaVersion}
	ds.Normalize()
	return ds
}

// Normalize replaces nil collections so callers can append and index freely.
func (d *Dataset) Normalize() {
	if d.SchemaVersion == 0 {
		d.SchemaVersion = DatasetSchemaVersion
	}
	if d.Users == nil {
		d.Users = []User{}
	}
	if d.Clients == nil {
		d.Clients = []Client{}
	}
	if d.Vehicles == nil {
		d.Vehicles = []Vehicle{}
	}
	if d.Orders == nil {
		d.Orders = []ServiceOrder{}
	}
	if d.Checklist == nil {
		d.Checklist = []ChecklistRow{}
	}
	if d.Items == nil {
		d.Items = []OrderItem{}
	}
	if d.Photos == nil {
		d.Photos = []Photo{}
	}
	if d.Timeline == nil {
		d.Timeline = []TimelineEvent{}
	}
	if d.Payments == nil {
		d.Payments = []Payment{}
	}
	if d.Counters == nil {
		d.Counters = map[string]int{}
	}
}

// NextOrderNumber increments and returns the user's order counter.
func (d *Dataset) NextOrderNumber(userID string) int {
	d.Counters[userID]++
	return d.Counters[userID]
}

func (d *Dataset) FindUserByEmail(email string) *User {
	for i := range d.Users {
		if strings.EqualFold(d.Users[i].Email, email) {
			return &d.Users[i]
		}
	}
	return nil
}

func (d *Dataset) FindClient(id string) *Client {
	for i := range d.Clients {
		if d.Clients[i].ID == id {
			return &d.Clients[i]
		}
	}
	return nil
}

func (d *Dataset) FindVehicle(id string) *Vehicle {
	for i := range d.Vehicles {
		if d.Vehicles[i].ID == id {
			return &d.Vehicles[i]
		}
	}
	return nil
}

func (d *Dataset) FindOrder(id string) *ServiceOrder {
	for i := range d.Orders {
		if d.Orders[i].ID == id {
			return &d.Orders[i]
		}
	}
	return nil
}

func (d *Dataset) FindItem(id string) *OrderItem {
	for i := range d.Items {
		if d.Items[i].ID == id {
			return &d.Items[i]
		}
	}
	return nil
}

func (d *Dataset) FindChecklistRow(id string) *ChecklistRow {
	for i := range d.Checklist {
		if d.Checklist[i].ID == id {
			return &d.Checklist[i]
		}
	}
	return nil
}

// VehiclesOf returns the client's vehicles in creation order.
func (d *Dataset) VehiclesOf(clientID string) []Vehicle {
	out := []Vehicle{}
	for _, v := range d.Vehicles {
		if v.ClientID == clientID {
			out = append(out, v)
		}
	}
	return out
}

// ItemsOf returns copies of the order's items in insertion order.
func (d *Dataset) ItemsOf(orderID string) []OrderItem {
	out := []OrderItem{}
	for _, it := range d.Items {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out
}

// ChecklistOf returns the order's rows sorted by display position.
func (d *Dataset) ChecklistOf(orderID string) []ChecklistRow {
	out := []ChecklistRow{}
	for _, r := range d.Checklist {
		if r.OrderID == orderID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

func (d *Dataset) PhotosOf(orderID string) []Photo {
	out := []Photo{}
	for _, p := range d.Photos {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	return out
}

// TimelineOf returns the order's events newest first. Events appended in the
// same instant keep reverse insertion order.
func (d *Dataset) TimelineOf(orderID string) []TimelineEvent {
	out := []TimelineEvent{}
	for i := len(d.Timeline) - 1; i >= 0; i-- {
		if d.Timeline[i].OrderID == orderID {
			out = append(out, d.Timeline[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (d *Dataset) PaymentsOf(orderID string) []Payment {
	out := []Payment{}
	for _, p := range d.Payments {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	return out
}

// RemoveItems deletes the items for which match is true and returns them.
func (d *Dataset) RemoveItems(match func(OrderItem) bool) []OrderItem {
	kept := d.Items[:0]
	var removed []OrderItem
	for _, it := range d.Items {
		if match(it) {
			removed = append(removed, it)
			continue
		}
		kept = append(kept, it)
	}
	d.Items = kept
	return removed
}
