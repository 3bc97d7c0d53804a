package entities

import "time"

type PhotoKind string

const (
	PhotoKindAntes   PhotoKind = "antes"
	PhotoKindDurante PhotoKind = "durante"
	PhotoKindDepois  PhotoKind = "depois"
)

func (k PhotoKind) IsValid() bool {
	switch k {
	case PhotoKindAntes, PhotoKindDurante, PhotoKindDepois:
		return true
	}
	return false
}

// Photo is a reference to an image stored elsewhere.
type Photo struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"os_id"`
	Kind      PhotoKind `json:"tipo"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
