package repository

import "github.com/edukits/kittrack-api/internal/domain/entity"

// AssignmentRepository define el puerto de persistencia para KitAssignment.
// Las mutaciones se usan dentro de transacciones junto con StockRepository.
type AssignmentRepository interface {
	Create(assignment *entity.KitAssignment) error
	GetByID(id string) (*entity.KitAssignment, error)
	// GetByIDForUpdate bloquea la fila de la asignación para la transición de estado.
	GetByIDForUpdate(id string) (*entity.KitAssignment, error)
	UpdateStatus(id, status string) error
	// ListByClient devuelve las asignaciones del cliente ordenadas por delivery_date ascendente.
	ListByClient(clientID string) ([]*entity.KitAssignment, error)
	// ListByDateRange devuelve las asignaciones con delivery_date en [start, end]
	// (bordes inclusivos) ordenadas ascendente.
	ListByDateRange(start, end string) ([]*entity.KitAssignment, error)
	ListAll(limit, offset int) ([]*entity.KitAssignment, error)
}
