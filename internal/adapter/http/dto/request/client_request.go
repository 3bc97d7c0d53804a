package request

import "oficina_pro/internal/usecase"

type ClientRequest struct {
	Nome     string  `json:"nome" binding:"required"`
	Telefone string  `json:"telefone" binding:"required"`
	Email    *string `json:"email"`
	CPFCNPJ  *string `json:"cpf_cnpj"`
	Endereco *string `json:"endereco"`
}

func (r ClientRequest) ToInput() usecase.ClientInput {
	return usecase.ClientInput{
		Name:    r.Nome,
		Phone:   r.Telefone,
		Email:   r.Email,
		TaxID:   r.CPFCNPJ,
		Address: r.Endereco,
	}
}

type VehicleRequest struct {
	Placa  string  `json:"placa" binding:"required"`
	Marca  string  `json:"marca" binding:"required"`
	Modelo string  `json:"modelo" binding:"required"`
	Ano    *int    `json:"ano" binding:"omitempty,gte=1900"`
	Cor    *string `json:"cor"`
}

// ToInput builds the use case input. clientID comes from the route or from
// the intake flow.
func (r VehicleRequest) ToInput(clientID string) usecase.VehicleInput {
	return usecase.VehicleInput{
		ClientID: clientID,
		Plate:    r.Placa,
		Make:     r.Marca,
		Model:    r.Modelo,
		Year:     r.Ano,
		Color:    r.Cor,
	}
}
