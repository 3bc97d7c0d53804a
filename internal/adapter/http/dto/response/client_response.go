package response

import (
	"time"

	"oficina_pro/internal/domain/entities"
	"oficina_pro/internal/usecase"
)

type ClientResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Telefone  string    `json:"telefone"`
	Email     *string   `json:"email"`
	CPFCNPJ   *string   `json:"cpf_cnpj"`
	Endereco  *string   `json:"endereco"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Nome:      c.Name,
		Telefone:  c.Phone,
		Email:     c.Email,
		CPFCNPJ:   c.TaxID,
		Endereco:  c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromClients(cs []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromClient(c))
	}
	return out
}

type VehicleResponse struct {
	ID        string    `json:"id"`
	ClienteID string    `json:"cliente_id"`
	Placa     string    `json:"placa"`
	Marca     string    `json:"marca"`
	Modelo    string    `json:"modelo"`
	Ano       *int      `json:"ano"`
	Cor       *string   `json:"cor"`
	CreatedAt time.Time `json:"created_at"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:        v.ID,
		ClienteID: v.ClientID,
		Placa:     v.Plate,
		Marca:     v.Make,
		Modelo:    v.Model,
		Ano:       v.Year,
		Cor:       v.Color,
		CreatedAt: v.CreatedAt,
	}
}

type ClientDetailsResponse struct {
	ClientResponse
	Veiculos []VehicleResponse `json:"veiculos"`
}

func FromClientDetails(d usecase.ClientDetails) ClientDetailsResponse {
	out := ClientDetailsResponse{ClientResponse: FromClient(d.Client), Veiculos: []VehicleResponse{}}
	for _, v := range d.Vehicles {
		out.Veiculos = append(out.Veiculos, FromVehicle(v))
	}
	return out
}
