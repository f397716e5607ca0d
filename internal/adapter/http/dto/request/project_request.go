package request

import (
	"construtora_xpto/internal/usecase"
)

type ProjectRequest struct {
	Name       string `json:"name" binding:"required"`
	ClientName string `json:"client_name"`
	Address    string `json:"address"`
	Currency   string `json:"currency"`
}

func (r ProjectRequest) ToInput() usecase.ProjectInput {
	return usecase.ProjectInput{
		Name:       r.Name,
		ClientName: r.ClientName,
		Address:    r.Address,
		Currency:   r.Currency,
	}
}
