package entity

import "time"

// Client representa un cliente (colegio/institución) que recibe kits.
// No tiene campos de stock; es solo el destino de las asignaciones.
type Client struct {
	ID            string
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	City          string
	State         string
	Pincode       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
