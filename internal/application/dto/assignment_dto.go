package dto

import "time"

// CreateAssignmentRequest body para POST /api/assignments.
type CreateAssignmentRequest struct {
	ClientID     string `json:"client_id"`
	KitID        string `json:"kit_id"`
	Quantity     int    `json:"quantity"`
	DeliveryType string `json:"delivery_type"` // single_delivery | monthly_subscription
	DeliveryDate string `json:"delivery_date"` // "YYYY-MM-DD"
	Notes        string `json:"notes,omitempty"`
}

// UpdateAssignmentStatusRequest body para PATCH /api/assignments/:id/status.
type UpdateAssignmentStatusRequest struct {
	Status string `json:"status"` // delivered | cancelled
}

// AssignmentResponse asignación en respuestas.
type AssignmentResponse struct {
	ID           string    `json:"id"`
	ClientID     string    `json:"client_id"`
	KitID        string    `json:"kit_id"`
	Quantity     int       `json:"quantity"`
	DeliveryType string    `json:"delivery_type"`
	DeliveryDate string    `json:"delivery_date"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	AssignedBy   string    `json:"assigned_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AssignmentDetailResponse asignación con referencias resueltas para vistas
// (composición de lectura sobre el núcleo; el camino de escritura no la usa).
type AssignmentDetailResponse struct {
	AssignmentResponse
	ClientName      string `json:"client_name,omitempty"`
	KitName         string `json:"kit_name,omitempty"`
	KitSerialNumber string `json:"kit_serial_number,omitempty"`
	AssignedByName  string `json:"assigned_by_name,omitempty"`
}
