package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin              = "admin"
	RoleProgramCoordinator = "program_coordinator"
	RoleInventoryManager   = "inventory_manager"
)

// User representa un usuario del sistema (quien autoriza mutaciones).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, program_coordinator, inventory_manager
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
