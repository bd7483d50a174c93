package dto

import "time"

// CreateClientRequest body para POST /api/clients.
type CreateClientRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	Pincode       string `json:"pincode,omitempty"`
}

// UpdateClientRequest body para PUT /api/clients/:id (campos opcionales).
type UpdateClientRequest struct {
	Name          *string `json:"name,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	City          *string `json:"city,omitempty"`
	State         *string `json:"state,omitempty"`
	Pincode       *string `json:"pincode,omitempty"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	City          string    `json:"city,omitempty"`
	State         string    `json:"state,omitempty"`
	Pincode       string    `json:"pincode,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
