package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukits/kittrack-api/internal/application/dto"
	"github.com/edukits/kittrack-api/internal/application/inventory"
	"github.com/edukits/kittrack-api/internal/domain"
	"github.com/edukits/kittrack-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeRawRepo struct {
	created []*entity.RawMaterial
}

func (f *fakeRawRepo) Create(m *entity.RawMaterial) error { f.created = append(f.created, m); return nil }
func (f *fakeRawRepo) GetByID(id string) (*entity.RawMaterial, error) { return nil, nil }
func (f *fakeRawRepo) List(limit, offset int) ([]*entity.RawMaterial, error) {
	return f.created, nil
}
func (f *fakeRawRepo) ListByCategory(category string) ([]*entity.RawMaterial, error) {
	var out []*entity.RawMaterial
	for _, m := range f.created {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakePreRepo struct {
	created []*entity.PreprocessedGood
}

func (f *fakePreRepo) Create(g *entity.PreprocessedGood) error {
	f.created = append(f.created, g)
	return nil
}
func (f *fakePreRepo) GetByID(id string) (*entity.PreprocessedGood, error) { return nil, nil }
func (f *fakePreRepo) List(limit, offset int) ([]*entity.PreprocessedGood, error) {
	return f.created, nil
}
func (f *fakePreRepo) ListByCategory(category string) ([]*entity.PreprocessedGood, error) {
	return nil, nil
}

type catKey struct{ typ, name string }

type fakeCategoryRepo struct {
	byKey map[catKey]*entity.CustomCategory
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byKey: make(map[catKey]*entity.CustomCategory)}
}

func (f *fakeCategoryRepo) Create(c *entity.CustomCategory) error {
	f.byKey[catKey{c.Type, c.Name}] = c
	return nil
}

func (f *fakeCategoryRepo) ListByType(categoryType string) ([]*entity.CustomCategory, error) {
	var out []*entity.CustomCategory
	for _, c := range f.byKey {
		if c.Type == categoryType {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) GetByTypeAndName(categoryType, name string) (*entity.CustomCategory, error) {
	return f.byKey[catKey{categoryType, name}], nil
}

func newFixture() (*inventory.UseCase, *fakeCategoryRepo) {
	cats := newFakeCategoryRepo()
	uc := inventory.NewUseCase(&fakeRawRepo{}, &fakePreRepo{}, cats)
	return uc, cats
}

func validRaw(category string) dto.CreateRawMaterialRequest {
	return dto.CreateRawMaterialRequest{
		Name:       "EVA Foam Sheet 2mm",
		Category:   category,
		StockLevel: 500,
		Unit:       "pieces",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías: enum con extensión
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateRawMaterial_CategoriaConocida(t *testing.T) {
	uc, _ := newFixture()
	out, err := uc.CreateRawMaterial(validRaw("foam"))
	require.NoError(t, err)
	assert.Equal(t, "foam", out.Category)
	assert.Equal(t, 500, out.StockLevel)
}

// Una categoría fuera del conjunto conocido y sin registrar es entrada
// inválida: el campo no es texto libre.
func TestCreateRawMaterial_CategoriaDesconocida(t *testing.T) {
	uc, _ := newFixture()
	_, err := uc.CreateRawMaterial(validRaw("ceramics"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Registrar la categoría custom primero la habilita para los materiales.
func TestCreateRawMaterial_CategoriaCustomRegistrada(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.CreateCategory("user-1", dto.CreateCategoryRequest{
		Name: "ceramics", Type: entity.CategoryTypeRawMaterial,
	})
	require.NoError(t, err)

	out, err := uc.CreateRawMaterial(validRaw("ceramics"))
	require.NoError(t, err)
	assert.Equal(t, "ceramics", out.Category)
}

// La categoría custom registrada para un tipo no habilita el otro tipo.
func TestCreatePreprocessedGood_CategoriaDeOtroTipo(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.CreateCategory("user-1", dto.CreateCategoryRequest{
		Name: "ceramics", Type: entity.CategoryTypeRawMaterial,
	})
	require.NoError(t, err)

	_, err = uc.CreatePreprocessedGood(dto.CreatePreprocessedGoodRequest{
		Name: "Fired Clay Discs", Category: "ceramics", StockLevel: 10, Unit: "pieces",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Registrar una categoría que ya es conocida duplica el conjunto base.
func TestCreateCategory_ConocidaEsDuplicado(t *testing.T) {
	uc, _ := newFixture()
	_, err := uc.CreateCategory("user-1", dto.CreateCategoryRequest{
		Name: "foam", Type: entity.CategoryTypeRawMaterial,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateCategory_RegistradaDosVeces(t *testing.T) {
	uc, _ := newFixture()
	in := dto.CreateCategoryRequest{Name: "ceramics", Type: entity.CategoryTypePreprocessed}

	_, err := uc.CreateCategory("user-1", in)
	require.NoError(t, err)

	_, err = uc.CreateCategory("user-1", in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateCategory_TipoInvalido(t *testing.T) {
	uc, _ := newFixture()
	_, err := uc.CreateCategory("user-1", dto.CreateCategoryRequest{Name: "x", Type: "kit"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListCategories_PorTipo(t *testing.T) {
	uc, _ := newFixture()
	_, err := uc.CreateCategory("user-1", dto.CreateCategoryRequest{
		Name: "ceramics", Type: entity.CategoryTypeRawMaterial,
	})
	require.NoError(t, err)
	_, err = uc.CreateCategory("user-1", dto.CreateCategoryRequest{
		Name: "cnc_milled", Type: entity.CategoryTypePreprocessed,
	})
	require.NoError(t, err)

	list, err := uc.ListCategories(entity.CategoryTypeRawMaterial)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "ceramics", list[0].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones de materiales
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateRawMaterial_Validaciones(t *testing.T) {
	uc, _ := newFixture()

	in := validRaw("foam")
	in.Name = ""
	_, err := uc.CreateRawMaterial(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validRaw("foam")
	in.StockLevel = -1
	_, err = uc.CreateRawMaterial(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock inicial negativo")

	in = validRaw("foam")
	in.Unit = ""
	_, err = uc.CreateRawMaterial(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
