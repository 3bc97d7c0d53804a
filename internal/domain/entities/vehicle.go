package entities

import "time"

// Vehicle belongs to exactly one client.
type Vehicle struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"cliente_id"`
	Plate     string    `json:"placa"`
	Make      string    `json:"marca"`
	Model     string    `json:"modelo"`
	Year      *int      `json:"ano,omitempty"`
	Color     *string   `json:"cor,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id"`
}

// Description renders "Marca Modelo" for messages and quotes.
func (v Vehicle) Description() string {
	switch {
	case v.Make == "":
		return v.Model
	case v.Model == "":
		return v.Make
	default:
		return v.Make + " " + v.Model
	}
}
