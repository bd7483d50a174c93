package stock_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukits/kittrack-api/internal/application/stock"
	"github.com/edukits/kittrack-api/internal/domain"
	"github.com/edukits/kittrack-api/internal/domain/entity"
	"github.com/edukits/kittrack-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type stockKey struct {
	kind entity.ItemKind
	id   string
}

// fakeStockRepo libro de stock en memoria. El mutex lo aporta el fakeTxRunner,
// que serializa las "transacciones" igual que el bloqueo de fila en PostgreSQL.
type fakeStockRepo struct {
	records map[stockKey]*entity.StockRecord
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{records: make(map[stockKey]*entity.StockRecord)}
}

func (f *fakeStockRepo) put(kind entity.ItemKind, id, name string, level int) {
	f.records[stockKey{kind, id}] = &entity.StockRecord{Kind: kind, ID: id, Name: name, Level: level}
}

func (f *fakeStockRepo) Get(kind entity.ItemKind, id string) (*entity.StockRecord, error) {
	rec, ok := f.records[stockKey{kind, id}]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeStockRepo) GetForUpdate(kind entity.ItemKind, id string) (*entity.StockRecord, error) {
	return f.Get(kind, id)
}

func (f *fakeStockRepo) UpdateLevel(kind entity.ItemKind, id string, level int) error {
	rec, ok := f.records[stockKey{kind, id}]
	if !ok {
		return domain.ErrNotFound
	}
	rec.Level = level
	return nil
}

// fakeTxRunner ejecuta el callback bajo un mutex: dos Run concurrentes nunca se
// intercalan, que es la garantía que da SELECT FOR UPDATE en la fila del ítem.
type fakeTxRunner struct {
	mu   sync.Mutex
	repo *fakeStockRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(stockRepo repository.StockRepository) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(f.repo)
}

func newLedger() (*stock.LedgerUseCase, *fakeStockRepo) {
	repo := newFakeStockRepo()
	return stock.NewLedgerUseCase(&fakeTxRunner{repo: repo}, repo), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustStock_IncrementoYDecremento(t *testing.T) {
	uc, repo := newLedger()
	repo.put(entity.ItemKindRaw, "rm-1", "EVA Foam Sheet 2mm", 100)

	rec, err := uc.AdjustStock(context.Background(), entity.ItemKindRaw, "rm-1", 50)
	require.NoError(t, err)
	assert.Equal(t, 150, rec.Level)

	rec, err = uc.AdjustStock(context.Background(), entity.ItemKindRaw, "rm-1", -150)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Level, "ajustar hasta exactamente cero debe permitirse")
}

// Un decremento que dejaría el contador negativo falla y no persiste nada.
func TestAdjustStock_ResultadoNegativo_Rechazado(t *testing.T) {
	uc, repo := newLedger()
	repo.put(entity.ItemKindPreprocessed, "pg-1", "Laser Cut MDF Gears", 3)

	_, err := uc.AdjustStock(context.Background(), entity.ItemKindPreprocessed, "pg-1", -5)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "3", "el error debe incluir la cantidad disponible")
	assert.Contains(t, err.Error(), "Laser Cut MDF Gears", "el error debe incluir el nombre del ítem")

	rec, err := uc.GetStock(context.Background(), entity.ItemKindPreprocessed, "pg-1")
	require.NoError(t, err)
	assert.Equal(t, 3, rec.Level, "el contador no debe cambiar tras un ajuste rechazado")
}

func TestAdjustStock_ItemInexistente(t *testing.T) {
	uc, _ := newLedger()
	_, err := uc.AdjustStock(context.Background(), entity.ItemKindRaw, "no-existe", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdjustStock_TipoInvalido(t *testing.T) {
	uc, _ := newLedger()
	_, err := uc.AdjustStock(context.Background(), entity.ItemKind("producto"), "x", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetStock_ValorAbsoluto(t *testing.T) {
	uc, repo := newLedger()
	repo.put(entity.ItemKindKit, "kit-1", "Robotics Starter Kit", 10)

	rec, err := uc.SetStock(context.Background(), entity.ItemKindKit, "kit-1", 25)
	require.NoError(t, err)
	assert.Equal(t, 25, rec.Level)
}

func TestSetStock_NegativoRechazado(t *testing.T) {
	uc, repo := newLedger()
	repo.put(entity.ItemKindKit, "kit-1", "Robotics Starter Kit", 10)

	_, err := uc.SetStock(context.Background(), entity.ItemKindKit, "kit-1", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	rec, err := uc.GetStock(context.Background(), entity.ItemKindKit, "kit-1")
	require.NoError(t, err)
	assert.Equal(t, 10, rec.Level)
}

func TestGetStock_Inexistente(t *testing.T) {
	uc, _ := newLedger()
	_, err := uc.GetStock(context.Background(), entity.ItemKindRaw, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Dos decrementos concurrentes que juntos exceden lo disponible: exactamente
// uno gana y el contador nunca queda negativo.
func TestAdjustStock_DecrementosConcurrentes(t *testing.T) {
	uc, repo := newLedger()
	repo.put(entity.ItemKindKit, "kit-1", "Robotics Starter Kit", 5)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.AdjustStock(context.Background(), entity.ItemKindKit, "kit-1", -3)
		}(i)
	}
	wg.Wait()

	okCount, stockErrCount := 0, 0
	for _, err := range errs {
		if err == nil {
			okCount++
		} else if errors.Is(err, domain.ErrInsufficientStock) {
			stockErrCount++
		}
	}
	assert.Equal(t, 1, okCount, "exactamente un decremento debe ganar")
	assert.Equal(t, 1, stockErrCount, "el otro debe fallar por stock insuficiente")

	rec, err := uc.GetStock(context.Background(), entity.ItemKindKit, "kit-1")
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Level, "5 - 3 = 2; el segundo decremento no debe aplicarse")
}
