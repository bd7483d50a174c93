package kit_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukits/kittrack-api/internal/application/dto"
	"github.com/edukits/kittrack-api/internal/application/kit"
	"github.com/edukits/kittrack-api/internal/domain"
	"github.com/edukits/kittrack-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeKitRepo struct {
	byID map[string]*entity.Kit
}

func (f *fakeKitRepo) Create(k *entity.Kit) error { f.byID[k.ID] = k; return nil }
func (f *fakeKitRepo) GetByID(id string) (*entity.Kit, error) {
	return f.byID[id], nil
}
func (f *fakeKitRepo) GetBySerialNumber(sn string) (*entity.Kit, error) {
	for _, k := range f.byID {
		if k.SerialNumber == sn {
			return k, nil
		}
	}
	return nil, nil
}
func (f *fakeKitRepo) List(limit, offset int) ([]*entity.Kit, error) {
	var out []*entity.Kit
	for _, k := range f.byID {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
func (f *fakeKitRepo) ListByProgram(program string) ([]*entity.Kit, error) {
	var out []*entity.Kit
	for _, k := range f.byID {
		if k.Program == program {
			out = append(out, k)
		}
	}
	return out, nil
}
func (f *fakeKitRepo) Search(term string) ([]*entity.Kit, error) { return nil, nil }

type fakeLineRepo struct {
	byID map[string]*entity.KitMaterial
	seq  []string // orden de inserción
}

func newFakeLineRepo() *fakeLineRepo {
	return &fakeLineRepo{byID: make(map[string]*entity.KitMaterial)}
}

func (f *fakeLineRepo) Create(line *entity.KitMaterial) error {
	f.byID[line.ID] = line
	f.seq = append(f.seq, line.ID)
	return nil
}

func (f *fakeLineRepo) GetByID(id string) (*entity.KitMaterial, error) {
	return f.byID[id], nil
}

func (f *fakeLineRepo) ListByKit(kitID string) ([]*entity.KitMaterial, error) {
	var out []*entity.KitMaterial
	for _, id := range f.seq {
		line, ok := f.byID[id]
		if ok && line.KitID == kitID {
			out = append(out, line)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PacketNumber < out[j].PacketNumber })
	return out, nil
}

func (f *fakeLineRepo) Delete(id string) error {
	delete(f.byID, id)
	return nil
}

type fakeRawRepo struct {
	byID map[string]*entity.RawMaterial
}

func (f *fakeRawRepo) Create(m *entity.RawMaterial) error { f.byID[m.ID] = m; return nil }
func (f *fakeRawRepo) GetByID(id string) (*entity.RawMaterial, error) {
	return f.byID[id], nil
}
func (f *fakeRawRepo) List(limit, offset int) ([]*entity.RawMaterial, error) { return nil, nil }
func (f *fakeRawRepo) ListByCategory(c string) ([]*entity.RawMaterial, error) {
	return nil, nil
}

type fakePreRepo struct {
	byID map[string]*entity.PreprocessedGood
}

func (f *fakePreRepo) Create(g *entity.PreprocessedGood) error { f.byID[g.ID] = g; return nil }
func (f *fakePreRepo) GetByID(id string) (*entity.PreprocessedGood, error) {
	return f.byID[id], nil
}
func (f *fakePreRepo) List(limit, offset int) ([]*entity.PreprocessedGood, error) { return nil, nil }
func (f *fakePreRepo) ListByCategory(c string) ([]*entity.PreprocessedGood, error) {
	return nil, nil
}

type fixture struct {
	uc    *kit.UseCase
	kits  *fakeKitRepo
	lines *fakeLineRepo
	raws  *fakeRawRepo
	pres  *fakePreRepo
}

func newFixture() *fixture {
	kits := &fakeKitRepo{byID: make(map[string]*entity.Kit)}
	lines := newFakeLineRepo()
	raws := &fakeRawRepo{byID: map[string]*entity.RawMaterial{
		"rm-1": {ID: "rm-1", Name: "EVA Foam Sheet 2mm", Category: "foam", Unit: "pieces", StockLevel: 500},
	}}
	pres := &fakePreRepo{byID: map[string]*entity.PreprocessedGood{
		"pg-1": {ID: "pg-1", Name: "Laser Cut MDF Gears", Category: "laser_cut", Unit: "sets", StockLevel: 120},
	}}
	return &fixture{
		uc:    kit.NewUseCase(kits, lines, raws, pres),
		kits:  kits,
		lines: lines,
		raws:  raws,
		pres:  pres,
	}
}

func validKit() dto.CreateKitRequest {
	return dto.CreateKitRequest{
		Name:         "Robotics Starter Kit",
		SerialNumber: "ROB-001",
		Program:      entity.ProgramRobotics,
		GradeLevel:   "6-8",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_StockInicialCero(t *testing.T) {
	f := newFixture()
	out, err := f.uc.Create(validKit())
	require.NoError(t, err)
	assert.Equal(t, 0, out.StockLevel, "el kit nace con stock 0; el ensamble lo alimenta después")
	assert.Equal(t, "ROB-001", out.SerialNumber)
}

// El número de serie es único: el segundo Create falla y el primero no se toca.
func TestCreate_SerialDuplicado(t *testing.T) {
	f := newFixture()
	first, err := f.uc.Create(validKit())
	require.NoError(t, err)

	in := validKit()
	in.Name = "Otro kit con la misma serie"
	_, err = f.uc.Create(in)
	require.ErrorIs(t, err, domain.ErrDuplicate)

	kept, err := f.kits.GetBySerialNumber("ROB-001")
	require.NoError(t, err)
	assert.Equal(t, first.ID, kept.ID, "el kit original debe permanecer intacto")
	assert.Equal(t, "Robotics Starter Kit", kept.Name)
}

func TestCreate_Validaciones(t *testing.T) {
	f := newFixture()

	in := validKit()
	in.Name = ""
	_, err := f.uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validKit()
	in.SerialNumber = ""
	_, err = f.uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validKit()
	in.Program = "chemistry"
	_, err = f.uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "programa fuera de robotics|cstem")
}

// ──────────────────────────────────────────────────────────────────────────────
// Plan de empaque
// ──────────────────────────────────────────────────────────────────────────────

func TestAddLine_ResuelveMaterial(t *testing.T) {
	f := newFixture()
	created, err := f.uc.Create(validKit())
	require.NoError(t, err)

	out, err := f.uc.AddLine(created.ID, dto.AddKitMaterialRequest{
		MaterialType: entity.MaterialTypeRaw,
		MaterialID:   "rm-1",
		Quantity:     5,
		PacketNumber: 1,
		PacketName:   "Packet A",
	})
	require.NoError(t, err)
	require.NotNil(t, out.Material)
	assert.Equal(t, "EVA Foam Sheet 2mm", out.Material.Name)
	assert.Equal(t, "pieces", out.Material.Unit)

	// Agregar líneas nunca toca el stock del material.
	m, err := f.raws.GetByID("rm-1")
	require.NoError(t, err)
	assert.Equal(t, 500, m.StockLevel)
}

func TestAddLine_MaterialInexistente(t *testing.T) {
	f := newFixture()
	created, err := f.uc.Create(validKit())
	require.NoError(t, err)

	_, err = f.uc.AddLine(created.ID, dto.AddKitMaterialRequest{
		MaterialType: entity.MaterialTypePreprocessed,
		MaterialID:   "no-existe",
		Quantity:     2,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "la línea no debe crearse si el material no resuelve")
	assert.Empty(t, f.lines.byID)
}

func TestAddLine_Validaciones(t *testing.T) {
	f := newFixture()
	created, err := f.uc.Create(validKit())
	require.NoError(t, err)

	_, err = f.uc.AddLine(created.ID, dto.AddKitMaterialRequest{
		MaterialType: "kit", MaterialID: "rm-1", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "material_type fuera de raw|preprocessed")

	_, err = f.uc.AddLine(created.ID, dto.AddKitMaterialRequest{
		MaterialType: entity.MaterialTypeRaw, MaterialID: "rm-1", Quantity: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = f.uc.AddLine("kit-inexistente", dto.AddKitMaterialRequest{
		MaterialType: entity.MaterialTypeRaw, MaterialID: "rm-1", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoveLine_Existente(t *testing.T) {
	f := newFixture()
	created, err := f.uc.Create(validKit())
	require.NoError(t, err)
	line, err := f.uc.AddLine(created.ID, dto.AddKitMaterialRequest{
		MaterialType: entity.MaterialTypeRaw, MaterialID: "rm-1", Quantity: 5,
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.RemoveLine(line.ID))

	lines, err := f.uc.ListLines(created.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

// Quitar una línea inexistente falla: la eliminación no es idempotente.
func TestRemoveLine_Inexistente(t *testing.T) {
	f := newFixture()
	err := f.uc.RemoveLine("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un material eliminado deja la línea colgante: la lectura del detalle falla
// con ErrNotFound en lugar de ocultar la inconsistencia.
func TestGetByID_ReferenciaColgante(t *testing.T) {
	f := newFixture()
	created, err := f.uc.Create(validKit())
	require.NoError(t, err)
	_, err = f.uc.AddLine(created.ID, dto.AddKitMaterialRequest{
		MaterialType: entity.MaterialTypePreprocessed, MaterialID: "pg-1", Quantity: 2,
	})
	require.NoError(t, err)

	delete(f.pres.byID, "pg-1")

	_, err = f.uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListLines_AgrupaPorPaquete(t *testing.T) {
	f := newFixture()
	created, err := f.uc.Create(validKit())
	require.NoError(t, err)

	_, err = f.uc.AddLine(created.ID, dto.AddKitMaterialRequest{
		MaterialType: entity.MaterialTypePreprocessed, MaterialID: "pg-1", Quantity: 2, PacketNumber: 2, PacketName: "Packet B",
	})
	require.NoError(t, err)
	_, err = f.uc.AddLine(created.ID, dto.AddKitMaterialRequest{
		MaterialType: entity.MaterialTypeRaw, MaterialID: "rm-1", Quantity: 5, PacketNumber: 1, PacketName: "Packet A",
	})
	require.NoError(t, err)

	lines, err := f.uc.ListLines(created.ID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].PacketNumber, "el paquete 1 debe listarse primero")
	assert.Equal(t, 2, lines[1].PacketNumber)
}
