package entities

import "time"

// Client is a shop customer. Contact fields are the only mutable part.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	Phone     string    `json:"telefone"`
	Email     *string   `json:"email,omitempty"`
	TaxID     *string   `json:"cpf_cnpj,omitempty"`
	Address   *string   `json:"endereco,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    string    `json:"user_id"`
}
