package assignment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/edukits/kittrack-api/internal/application/dto"
	"github.com/edukits/kittrack-api/internal/domain"
	"github.com/edukits/kittrack-api/internal/domain/entity"
	"github.com/edukits/kittrack-api/internal/domain/repository"
)

// LifecycleUseCase gobierna el ciclo de vida de las asignaciones de kits:
// crear compromete stock del kit en la misma transacción que inserta el
// registro; las transiciones pending→delivered y pending→cancelled son las
// únicas permitidas y la cancelación devuelve el stock comprometido.
type LifecycleUseCase struct {
	txRunner       TxRunner
	clientRepo     repository.ClientRepository
	kitRepo        repository.KitRepository
	assignmentRepo repository.AssignmentRepository
	userRepo       repository.UserRepository
}

// NewLifecycleUseCase construye el caso de uso.
func NewLifecycleUseCase(
	txRunner TxRunner,
	clientRepo repository.ClientRepository,
	kitRepo repository.KitRepository,
	assignmentRepo repository.AssignmentRepository,
	userRepo repository.UserRepository,
) *LifecycleUseCase {
	return &LifecycleUseCase{
		txRunner:       txRunner,
		clientRepo:     clientRepo,
		kitRepo:        kitRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
	}
}

// Create valida la petición, y dentro de una transacción bloquea la fila de
// stock del kit, verifica disponibilidad, descuenta la cantidad y persiste la
// asignación en estado pending. Un segundo Create concurrente sobre el mismo
// kit observa el contador ya descontado: no hay sobreventa.
func (uc *LifecycleUseCase) Create(ctx context.Context, actingUserID string, in dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	if actingUserID == "" {
		return nil, domain.ErrUnauthorized
	}
	if in.Quantity <= 0 || !entity.ValidDeliveryType(in.DeliveryType) {
		return nil, domain.ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", in.DeliveryDate); err != nil {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	kit, err := uc.kitRepo.GetByID(in.KitID)
	if err != nil {
		return nil, err
	}
	if kit == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	a := &entity.KitAssignment{
		ID:           uuid.New().String(),
		ClientID:     in.ClientID,
		KitID:        in.KitID,
		Quantity:     in.Quantity,
		DeliveryType: in.DeliveryType,
		DeliveryDate: in.DeliveryDate,
		Status:       entity.AssignmentStatusPending,
		Notes:        in.Notes,
		AssignedBy:   actingUserID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.RunAssignment(ctx, func(
		stockRepo repository.StockRepository,
		assignmentRepo repository.AssignmentRepository,
	) error {
		// Bloquea la fila del kit: el check y el decremento son una sola
		// operación frente a otros Create sobre el mismo kit.
		rec, err := stockRepo.GetForUpdate(entity.ItemKindKit, in.KitID)
		if err != nil {
			return err
		}
		if rec == nil {
			return domain.ErrNotFound
		}
		if rec.Level < in.Quantity {
			return fmt.Errorf("%w: solo hay %d unidades de '%s' disponibles", domain.ErrInsufficientStock, rec.Level, rec.Name)
		}
		if err := stockRepo.UpdateLevel(entity.ItemKindKit, in.KitID, rec.Level-in.Quantity); err != nil {
			return err
		}
		return assignmentRepo.Create(a)
	})
	if err != nil {
		return nil, err
	}
	return toAssignmentResponse(a), nil
}

// Transition aplica un cambio de estado. pending→delivered solo actualiza el
// estado (el stock ya quedó comprometido al crear). pending→cancelled devuelve
// la cantidad comprometida al stock del kit en la misma transacción: cancelar
// no debe filtrar stock de forma permanente. Cualquier otra arista falla con
// ErrInvalidTransition.
func (uc *LifecycleUseCase) Transition(ctx context.Context, actingUserID, assignmentID, newStatus string) (*dto.AssignmentResponse, error) {
	if actingUserID == "" {
		return nil, domain.ErrUnauthorized
	}
	if !entity.ValidAssignmentStatus(newStatus) {
		return nil, domain.ErrInvalidInput
	}
	var out *entity.KitAssignment
	err := uc.txRunner.RunAssignment(ctx, func(
		stockRepo repository.StockRepository,
		assignmentRepo repository.AssignmentRepository,
	) error {
		a, err := assignmentRepo.GetByIDForUpdate(assignmentID)
		if err != nil {
			return err
		}
		if a == nil {
			return domain.ErrNotFound
		}
		if !a.CanTransition(newStatus) {
			return fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, a.Status, newStatus)
		}
		if newStatus == entity.AssignmentStatusCancelled {
			rec, err := stockRepo.GetForUpdate(entity.ItemKindKit, a.KitID)
			if err != nil {
				return err
			}
			if rec == nil {
				return domain.ErrNotFound
			}
			if err := stockRepo.UpdateLevel(entity.ItemKindKit, a.KitID, rec.Level+a.Quantity); err != nil {
				return err
			}
		}
		if err := assignmentRepo.UpdateStatus(assignmentID, newStatus); err != nil {
			return err
		}
		a.Status = newStatus
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toAssignmentResponse(out), nil
}

// GetByID devuelve una asignación con sus referencias resueltas.
func (uc *LifecycleUseCase) GetByID(ctx context.Context, assignmentID string) (*dto.AssignmentDetailResponse, error) {
	a, err := uc.assignmentRepo.GetByID(assignmentID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.toDetails([]*entity.KitAssignment{a})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// ListByClient devuelve las asignaciones del cliente ordenadas por fecha de
// entrega ascendente, con las referencias resueltas para vistas.
func (uc *LifecycleUseCase) ListByClient(ctx context.Context, clientID string) ([]dto.AssignmentDetailResponse, error) {
	list, err := uc.assignmentRepo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	return uc.toDetails(list)
}

// ListByDateRange devuelve las asignaciones con fecha de entrega en [start, end]
// (bordes inclusivos) ordenadas ascendente; usada para la vista de programación.
func (uc *LifecycleUseCase) ListByDateRange(ctx context.Context, start, end string) ([]dto.AssignmentDetailResponse, error) {
	if _, err := time.Parse("2006-01-02", start); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", end); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if start > end {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.assignmentRepo.ListByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return uc.toDetails(list)
}

// ListAll devuelve todas las asignaciones paginadas, con referencias resueltas.
func (uc *LifecycleUseCase) ListAll(ctx context.Context, limit, offset int) ([]dto.AssignmentDetailResponse, error) {
	list, err := uc.assignmentRepo.ListAll(limit, offset)
	if err != nil {
		return nil, err
	}
	return uc.toDetails(list)
}

// toDetails arma la composición de lectura (cliente, kit, usuario) sobre las
// asignaciones. Referencias que ya no resuelven dejan el campo vacío: el
// listado no falla por un borrado ajeno.
func (uc *LifecycleUseCase) toDetails(list []*entity.KitAssignment) ([]dto.AssignmentDetailResponse, error) {
	out := make([]dto.AssignmentDetailResponse, 0, len(list))
	for _, a := range list {
		d := dto.AssignmentDetailResponse{AssignmentResponse: *toAssignmentResponse(a)}
		if client, err := uc.clientRepo.GetByID(a.ClientID); err == nil && client != nil {
			d.ClientName = client.Name
		}
		if kit, err := uc.kitRepo.GetByID(a.KitID); err == nil && kit != nil {
			d.KitName = kit.Name
			d.KitSerialNumber = kit.SerialNumber
		}
		if user, err := uc.userRepo.GetByID(a.AssignedBy); err == nil && user != nil {
			d.AssignedByName = user.Name
		}
		out = append(out, d)
	}
	return out, nil
}

func toAssignmentResponse(a *entity.KitAssignment) *dto.AssignmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AssignmentResponse{
		ID:           a.ID,
		ClientID:     a.ClientID,
		KitID:        a.KitID,
		Quantity:     a.Quantity,
		DeliveryType: a.DeliveryType,
		DeliveryDate: a.DeliveryDate,
		Status:       a.Status,
		Notes:        a.Notes,
		AssignedBy:   a.AssignedBy,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
