package entity

import "time"

// Programas curriculares a los que pertenece un kit.
const (
	ProgramRobotics = "robotics"
	ProgramCSTEM    = "cstem"
)

// ValidProgram verifica que el programa sea uno de los conocidos.
func ValidProgram(p string) bool {
	return p == ProgramRobotics || p == ProgramCSTEM
}

// Kit representa un kit educativo armado. SerialNumber es único en todo el sistema.
// StockLevel cuenta kits terminados; se alimenta por el flujo de ensamble (fuera
// del motor) y se compromete al crear asignaciones.
type Kit struct {
	ID           string
	Name         string
	SerialNumber string
	Program      string // robotics | cstem
	GradeLevel   string
	Description  string
	StockLevel   int // siempre >= 0
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
