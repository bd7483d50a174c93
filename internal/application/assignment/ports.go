package assignment

import (
	"context"

	"github.com/edukits/kittrack-api/internal/domain/entity"
	"github.com/edukits/kittrack-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. El check de stock y el decremento del kit
// ocurren bajo el mismo límite de aislamiento que la inserción de la asignación.
type TxRunner interface {
	RunAssignment(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		assignmentRepo repository.AssignmentRepository,
	) error) error
}

// DeliveryNoteLine línea del remito: material del plan de empaque con el total
// a empacar para la cantidad asignada.
type DeliveryNoteLine struct {
	MaterialType   string
	MaterialName   string
	Unit           string
	QuantityPerKit int
	TotalQuantity  int // QuantityPerKit * cantidad asignada
	PacketNumber   int
	PacketName     string
}

// DeliveryNoteData datos ya resueltos para generar el remito de una asignación.
type DeliveryNoteData struct {
	Assignment *entity.KitAssignment
	Client     *entity.Client
	Kit        *entity.Kit
	AssignedBy *entity.User // nil si el usuario ya no existe
	Lines      []DeliveryNoteLine
}

// DeliveryNoteGenerator genera el documento del remito (PDF).
type DeliveryNoteGenerator interface {
	GenerateDeliveryNote(ctx context.Context, data *DeliveryNoteData) ([]byte, error)
}
