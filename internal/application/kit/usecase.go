package kit

import (
	"time"

	"github.com/google/uuid"

	"github.com/edukits/kittrack-api/internal/application/dto"
	"github.com/edukits/kittrack-api/internal/domain"
	"github.com/edukits/kittrack-api/internal/domain/entity"
	"github.com/edukits/kittrack-api/internal/domain/repository"
)

// UseCase casos de uso de kits: CRUD y plan de empaque (BOM). Agregar o quitar
// líneas del plan nunca mueve stock: la composición es una receta, no un
// evento de consumo.
type UseCase struct {
	kitRepo  repository.KitRepository
	lineRepo repository.KitMaterialRepository
	rawRepo  repository.RawMaterialRepository
	preRepo  repository.PreprocessedGoodRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	kitRepo repository.KitRepository,
	lineRepo repository.KitMaterialRepository,
	rawRepo repository.RawMaterialRepository,
	preRepo repository.PreprocessedGoodRepository,
) *UseCase {
	return &UseCase{kitRepo: kitRepo, lineRepo: lineRepo, rawRepo: rawRepo, preRepo: preRepo}
}

// Create crea un kit con stock en 0. El número de serie es único en todo el
// sistema; si ya existe falla con ErrDuplicate y el kit existente no se toca.
func (uc *UseCase) Create(in dto.CreateKitRequest) (*dto.KitResponse, error) {
	if in.Name == "" || in.SerialNumber == "" || !entity.ValidProgram(in.Program) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.kitRepo.GetBySerialNumber(in.SerialNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	kit := &entity.Kit{
		ID:           uuid.New().String(),
		Name:         in.Name,
		SerialNumber: in.SerialNumber,
		Program:      in.Program,
		GradeLevel:   in.GradeLevel,
		Description:  in.Description,
		StockLevel:   0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.kitRepo.Create(kit); err != nil {
		return nil, err
	}
	return toKitResponse(kit), nil
}

// GetByID devuelve el kit con su plan de empaque completo y los materiales
// resueltos. Una línea cuyo material ya no existe hace fallar la resolución
// con ErrNotFound (se reporta, no se repara).
func (uc *UseCase) GetByID(id string) (*dto.KitDetailResponse, error) {
	kit, err := uc.kitRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if kit == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.lineRepo.ListByKit(id)
	if err != nil {
		return nil, err
	}
	materials := make([]dto.KitMaterialResponse, 0, len(lines))
	for _, line := range lines {
		details, err := uc.Resolve(line)
		if err != nil {
			return nil, err
		}
		materials = append(materials, toKitMaterialResponse(line, details))
	}
	return &dto.KitDetailResponse{KitResponse: *toKitResponse(kit), Materials: materials}, nil
}

// List lista kits paginados.
func (uc *UseCase) List(limit, offset int) ([]dto.KitResponse, error) {
	list, err := uc.kitRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toKitResponses(list), nil
}

// ListByProgram lista kits de un programa (robotics | cstem).
func (uc *UseCase) ListByProgram(program string) ([]dto.KitResponse, error) {
	if !entity.ValidProgram(program) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.kitRepo.ListByProgram(program)
	if err != nil {
		return nil, err
	}
	return toKitResponses(list), nil
}

// Search busca kits por nombre o número de serie.
func (uc *UseCase) Search(term string) ([]dto.KitResponse, error) {
	list, err := uc.kitRepo.Search(term)
	if err != nil {
		return nil, err
	}
	return toKitResponses(list), nil
}

// AddLine agrega una línea al plan de empaque del kit. El material debe
// resolver en el inventario que indica material_type; no toca stock.
func (uc *UseCase) AddLine(kitID string, in dto.AddKitMaterialRequest) (*dto.KitMaterialResponse, error) {
	if !entity.ValidMaterialType(in.MaterialType) || in.Quantity <= 0 || in.PacketNumber < 0 {
		return nil, domain.ErrInvalidInput
	}
	kit, err := uc.kitRepo.GetByID(kitID)
	if err != nil {
		return nil, err
	}
	if kit == nil {
		return nil, domain.ErrNotFound
	}
	line := &entity.KitMaterial{
		ID:           uuid.New().String(),
		KitID:        kitID,
		MaterialType: in.MaterialType,
		MaterialID:   in.MaterialID,
		Quantity:     in.Quantity,
		PacketNumber: in.PacketNumber,
		PacketName:   in.PacketName,
	}
	details, err := uc.Resolve(line)
	if err != nil {
		return nil, err
	}
	if err := uc.lineRepo.Create(line); err != nil {
		return nil, err
	}
	resp := toKitMaterialResponse(line, details)
	return &resp, nil
}

// RemoveLine elimina una línea del plan de empaque. Si la línea no existe
// falla con ErrNotFound (elección documentada: la eliminación no es idempotente).
func (uc *UseCase) RemoveLine(lineID string) error {
	line, err := uc.lineRepo.GetByID(lineID)
	if err != nil {
		return err
	}
	if line == nil {
		return domain.ErrNotFound
	}
	return uc.lineRepo.Delete(lineID)
}

// ListLines devuelve las líneas del plan de empaque del kit, agrupadas por
// packet_number y orden de inserción. Lectura fresca en cada llamada.
func (uc *UseCase) ListLines(kitID string) ([]dto.KitMaterialResponse, error) {
	kit, err := uc.kitRepo.GetByID(kitID)
	if err != nil {
		return nil, err
	}
	if kit == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.lineRepo.ListByKit(kitID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.KitMaterialResponse, 0, len(lines))
	for _, line := range lines {
		details, err := uc.Resolve(line)
		if err != nil {
			return nil, err
		}
		out = append(out, toKitMaterialResponse(line, details))
	}
	return out, nil
}

// Resolve sigue material_type hasta el material referenciado por la línea.
// Falla con ErrNotFound si el material fue eliminado (referencia colgante).
func (uc *UseCase) Resolve(line *entity.KitMaterial) (*dto.MaterialDetails, error) {
	switch line.MaterialType {
	case entity.MaterialTypeRaw:
		m, err := uc.rawRepo.GetByID(line.MaterialID)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, domain.ErrNotFound
		}
		return &dto.MaterialDetails{ID: m.ID, Name: m.Name, Category: m.Category, Unit: m.Unit, StockLevel: m.StockLevel}, nil
	case entity.MaterialTypePreprocessed:
		m, err := uc.preRepo.GetByID(line.MaterialID)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, domain.ErrNotFound
		}
		return &dto.MaterialDetails{ID: m.ID, Name: m.Name, Category: m.Category, Unit: m.Unit, StockLevel: m.StockLevel}, nil
	}
	return nil, domain.ErrInvalidInput
}

func toKitResponse(k *entity.Kit) *dto.KitResponse {
	if k == nil {
		return nil
	}
	return &dto.KitResponse{
		ID:           k.ID,
		Name:         k.Name,
		SerialNumber: k.SerialNumber,
		Program:      k.Program,
		GradeLevel:   k.GradeLevel,
		Description:  k.Description,
		StockLevel:   k.StockLevel,
		CreatedAt:    k.CreatedAt,
		UpdatedAt:    k.UpdatedAt,
	}
}

func toKitResponses(list []*entity.Kit) []dto.KitResponse {
	out := make([]dto.KitResponse, 0, len(list))
	for _, k := range list {
		out = append(out, *toKitResponse(k))
	}
	return out
}

func toKitMaterialResponse(line *entity.KitMaterial, details *dto.MaterialDetails) dto.KitMaterialResponse {
	return dto.KitMaterialResponse{
		ID:           line.ID,
		KitID:        line.KitID,
		MaterialType: line.MaterialType,
		MaterialID:   line.MaterialID,
		Quantity:     line.Quantity,
		PacketNumber: line.PacketNumber,
		PacketName:   line.PacketName,
		Material:     details,
	}
}
