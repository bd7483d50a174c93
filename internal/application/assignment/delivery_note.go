package assignment

import (
	"context"

	"github.com/edukits/kittrack-api/internal/domain"
	"github.com/edukits/kittrack-api/internal/domain/entity"
	"github.com/edukits/kittrack-api/internal/domain/repository"
)

// DeliveryNoteUseCase arma y genera el remito de una asignación: cliente, kit,
// cantidad y el plan de empaque con los totales a empacar.
type DeliveryNoteUseCase struct {
	assignmentRepo repository.AssignmentRepository
	clientRepo     repository.ClientRepository
	kitRepo        repository.KitRepository
	userRepo       repository.UserRepository
	lineRepo       repository.KitMaterialRepository
	rawRepo        repository.RawMaterialRepository
	preRepo        repository.PreprocessedGoodRepository
	generator      DeliveryNoteGenerator
}

// NewDeliveryNoteUseCase construye el caso de uso.
func NewDeliveryNoteUseCase(
	assignmentRepo repository.AssignmentRepository,
	clientRepo repository.ClientRepository,
	kitRepo repository.KitRepository,
	userRepo repository.UserRepository,
	lineRepo repository.KitMaterialRepository,
	rawRepo repository.RawMaterialRepository,
	preRepo repository.PreprocessedGoodRepository,
	generator DeliveryNoteGenerator,
) *DeliveryNoteUseCase {
	return &DeliveryNoteUseCase{
		assignmentRepo: assignmentRepo,
		clientRepo:     clientRepo,
		kitRepo:        kitRepo,
		userRepo:       userRepo,
		lineRepo:       lineRepo,
		rawRepo:        rawRepo,
		preRepo:        preRepo,
		generator:      generator,
	}
}

// Generate devuelve los bytes del PDF del remito para la asignación.
func (uc *DeliveryNoteUseCase) Generate(ctx context.Context, assignmentID string) ([]byte, error) {
	a, err := uc.assignmentRepo.GetByID(assignmentID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	client, err := uc.clientRepo.GetByID(a.ClientID)
	if err != nil {
		return nil, err
	}
	kit, err := uc.kitRepo.GetByID(a.KitID)
	if err != nil {
		return nil, err
	}
	if client == nil || kit == nil {
		return nil, domain.ErrNotFound
	}
	assignedBy, _ := uc.userRepo.GetByID(a.AssignedBy)

	lines, err := uc.lineRepo.ListByKit(a.KitID)
	if err != nil {
		return nil, err
	}
	noteLines := make([]DeliveryNoteLine, 0, len(lines))
	for _, line := range lines {
		nl := DeliveryNoteLine{
			MaterialType:   line.MaterialType,
			QuantityPerKit: line.Quantity,
			TotalQuantity:  line.Quantity * a.Quantity,
			PacketNumber:   line.PacketNumber,
			PacketName:     line.PacketName,
		}
		switch line.MaterialType {
		case entity.MaterialTypeRaw:
			if m, err := uc.rawRepo.GetByID(line.MaterialID); err == nil && m != nil {
				nl.MaterialName = m.Name
				nl.Unit = m.Unit
			}
		case entity.MaterialTypePreprocessed:
			if m, err := uc.preRepo.GetByID(line.MaterialID); err == nil && m != nil {
				nl.MaterialName = m.Name
				nl.Unit = m.Unit
			}
		}
		if nl.MaterialName == "" {
			// Referencia colgante: se reporta en el documento, no se repara.
			nl.MaterialName = "(material eliminado)"
		}
		noteLines = append(noteLines, nl)
	}

	return uc.generator.GenerateDeliveryNote(ctx, &DeliveryNoteData{
		Assignment: a,
		Client:     client,
		Kit:        kit,
		AssignedBy: assignedBy,
		Lines:      noteLines,
	})
}
