package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/edukits/kittrack-api/internal/application/dto"
	"github.com/edukits/kittrack-api/internal/domain"
	"github.com/edukits/kittrack-api/internal/domain/entity"
	"github.com/edukits/kittrack-api/internal/domain/repository"
)

// UseCase casos de uso de materiales (materias primas y procesados) y del
// registro de categorías. La categoría de un material es un enum con
// extensión: conjunto conocido más categorías registradas, nunca texto libre.
type UseCase struct {
	rawRepo      repository.RawMaterialRepository
	preRepo      repository.PreprocessedGoodRepository
	categoryRepo repository.CategoryRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	rawRepo repository.RawMaterialRepository,
	preRepo repository.PreprocessedGoodRepository,
	categoryRepo repository.CategoryRepository,
) *UseCase {
	return &UseCase{rawRepo: rawRepo, preRepo: preRepo, categoryRepo: categoryRepo}
}

// CreateRawMaterial crea una materia prima con su stock inicial.
func (uc *UseCase) CreateRawMaterial(in dto.CreateRawMaterialRequest) (*dto.RawMaterialResponse, error) {
	if in.Name == "" || in.Unit == "" || in.StockLevel < 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validateCategory(entity.CategoryTypeRawMaterial, in.Category); err != nil {
		return nil, err
	}
	unitPrice := decimal.Zero
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		unitPrice = *in.UnitPrice
	}
	now := time.Now()
	m := &entity.RawMaterial{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Category:    in.Category,
		StockLevel:  in.StockLevel,
		Unit:        in.Unit,
		Description: in.Description,
		Supplier:    in.Supplier,
		UnitPrice:   unitPrice,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.rawRepo.Create(m); err != nil {
		return nil, err
	}
	return toRawMaterialResponse(m), nil
}

// ListRawMaterials lista materias primas; si category no es vacío filtra por categoría.
func (uc *UseCase) ListRawMaterials(category string, limit, offset int) ([]dto.RawMaterialResponse, error) {
	var list []*entity.RawMaterial
	var err error
	if category != "" {
		list, err = uc.rawRepo.ListByCategory(category)
	} else {
		list, err = uc.rawRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.RawMaterialResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toRawMaterialResponse(m))
	}
	return out, nil
}

// CreatePreprocessedGood crea un material procesado con su stock inicial.
func (uc *UseCase) CreatePreprocessedGood(in dto.CreatePreprocessedGoodRequest) (*dto.PreprocessedGoodResponse, error) {
	if in.Name == "" || in.Unit == "" || in.StockLevel < 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validateCategory(entity.CategoryTypePreprocessed, in.Category); err != nil {
		return nil, err
	}
	now := time.Now()
	g := &entity.PreprocessedGood{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Category:        in.Category,
		StockLevel:      in.StockLevel,
		Unit:            in.Unit,
		Description:     in.Description,
		ProcessingNotes: in.ProcessingNotes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.preRepo.Create(g); err != nil {
		return nil, err
	}
	return toPreprocessedGoodResponse(g), nil
}

// ListPreprocessedGoods lista materiales procesados; si category no es vacío filtra.
func (uc *UseCase) ListPreprocessedGoods(category string, limit, offset int) ([]dto.PreprocessedGoodResponse, error) {
	var list []*entity.PreprocessedGood
	var err error
	if category != "" {
		list, err = uc.preRepo.ListByCategory(category)
	} else {
		list, err = uc.preRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.PreprocessedGoodResponse, 0, len(list))
	for _, g := range list {
		out = append(out, *toPreprocessedGoodResponse(g))
	}
	return out, nil
}

// CreateCategory registra una categoría custom para el tipo dado. Falla con
// ErrDuplicate si ya es una categoría conocida o ya fue registrada.
func (uc *UseCase) CreateCategory(actingUserID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" || !entity.ValidCategoryType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if entity.KnownCategory(in.Type, in.Name) {
		return nil, domain.ErrDuplicate
	}
	existing, err := uc.categoryRepo.GetByTypeAndName(in.Type, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	c := &entity.CustomCategory{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Type:      in.Type,
		CreatedBy: actingUserID,
		CreatedAt: time.Now(),
	}
	if err := uc.categoryRepo.Create(c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// ListCategories lista las categorías registradas (custom) del tipo dado.
func (uc *UseCase) ListCategories(categoryType string) ([]dto.CategoryResponse, error) {
	if !entity.ValidCategoryType(categoryType) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.categoryRepo.ListByType(categoryType)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// validateCategory acepta categorías del conjunto conocido o registradas en
// custom_categories; cualquier otra cadena es entrada inválida.
func (uc *UseCase) validateCategory(categoryType, name string) error {
	if name == "" {
		return domain.ErrInvalidInput
	}
	if entity.KnownCategory(categoryType, name) {
		return nil
	}
	custom, err := uc.categoryRepo.GetByTypeAndName(categoryType, name)
	if err != nil {
		return err
	}
	if custom == nil {
		return domain.ErrInvalidInput
	}
	return nil
}

func toRawMaterialResponse(m *entity.RawMaterial) *dto.RawMaterialResponse {
	if m == nil {
		return nil
	}
	return &dto.RawMaterialResponse{
		ID:          m.ID,
		Name:        m.Name,
		Category:    m.Category,
		StockLevel:  m.StockLevel,
		Unit:        m.Unit,
		Description: m.Description,
		Supplier:    m.Supplier,
		UnitPrice:   m.UnitPrice,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toPreprocessedGoodResponse(g *entity.PreprocessedGood) *dto.PreprocessedGoodResponse {
	if g == nil {
		return nil
	}
	return &dto.PreprocessedGoodResponse{
		ID:              g.ID,
		Name:            g.Name,
		Category:        g.Category,
		StockLevel:      g.StockLevel,
		Unit:            g.Unit,
		Description:     g.Description,
		ProcessingNotes: g.ProcessingNotes,
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
	}
}

func toCategoryResponse(c *entity.CustomCategory) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Type:      c.Type,
		CreatedAt: c.CreatedAt,
	}
}
