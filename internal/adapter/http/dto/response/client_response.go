package response

import (
	"time"

	"mutual_cartera/internal/domain/entities"
)

type ClientResponse struct {
	CUIT      string     `json:"cuit"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Address   string     `json:"address,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Age       *int       `json:"age,omitempty"`
	Gender    string     `json:"gender,omitempty"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		CUIT:      c.CUIT,
		FullName:  c.FullName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		BirthDate: c.BirthDate,
		Age:       c.Age,
		Gender:    c.Gender,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromClients(clients []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c))
	}
	return out
}
