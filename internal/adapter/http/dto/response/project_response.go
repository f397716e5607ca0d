package response

import (
	"time"

	"construtora_xpto/internal/domain/entities"
)

type ProjectResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ClientName string    `json:"client_name,omitempty"`
	Address    string    `json:"address,omitempty"`
	Currency   string    `json:"currency"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:         p.ID,
		Name:       p.Name,
		ClientName: p.ClientName,
		Address:    p.Address,
		Currency:   p.Currency,
		CreatedAt:  p.CreatedAt,
	}
}

func FromProjectList(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}
