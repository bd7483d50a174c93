package entity

import "time"

// Estados de una asignación de kits.
const (
	AssignmentStatusPending   = "pending"
	AssignmentStatusDelivered = "delivered"
	AssignmentStatusCancelled = "cancelled"
)

// Tipos de entrega.
const (
	DeliveryTypeSingle  = "single_delivery"
	DeliveryTypeMonthly = "monthly_subscription"
)

// ValidDeliveryType verifica el tipo de entrega.
func ValidDeliveryType(t string) bool {
	return t == DeliveryTypeSingle || t == DeliveryTypeMonthly
}

// ValidAssignmentStatus verifica que el estado sea uno de los conocidos.
func ValidAssignmentStatus(s string) bool {
	return s == AssignmentStatusPending || s == AssignmentStatusDelivered || s == AssignmentStatusCancelled
}

// KitAssignment compromete N unidades de un kit a un cliente. Quantity queda
// fija al crear; después solo cambia Status. El stock del kit se descuenta al
// crear la asignación (compromiso), no al entregarla.
type KitAssignment struct {
	ID           string
	ClientID     string
	KitID        string
	Quantity     int    // > 0
	DeliveryType string // single_delivery | monthly_subscription
	DeliveryDate string // fecha calendario "YYYY-MM-DD"
	Status       string // pending | delivered | cancelled
	Notes        string
	AssignedBy   string // usuario que creó la asignación
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanTransition indica si el paso Status -> next está permitido por la máquina
// de estados: pending→delivered y pending→cancelled. Los estados delivered y
// cancelled son terminales; ningún paso vuelve a pending.
func (a *KitAssignment) CanTransition(next string) bool {
	if a.Status != AssignmentStatusPending {
		return false
	}
	return next == AssignmentStatusDelivered || next == AssignmentStatusCancelled
}
