package stock

import (
	"context"
	"fmt"

	"github.com/edukits/kittrack-api/internal/domain"
	"github.com/edukits/kittrack-api/internal/domain/entity"
	"github.com/edukits/kittrack-api/internal/domain/repository"
)

// LedgerUseCase es la única autoridad para leer y ajustar stock_level de los
// tres inventarios (materias primas, procesados, kits). Todo ajuste corre en
// transacción con bloqueo de fila (SELECT FOR UPDATE): dos decrementos
// concurrentes que juntos dejarían el contador negativo producen exactamente
// un éxito y un ErrInsufficientStock, nunca un valor negativo persistido.
type LedgerUseCase struct {
	txRunner  TxRunner
	stockRepo repository.StockRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner TxRunner, stockRepo repository.StockRepository) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, stockRepo: stockRepo}
}

// GetStock lee el contador actual de un ítem.
func (uc *LedgerUseCase) GetStock(ctx context.Context, kind entity.ItemKind, id string) (*entity.StockRecord, error) {
	if !entity.ValidItemKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	rec, err := uc.stockRepo.Get(kind, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

// AdjustStock aplica stock_level += delta como operación atómica sobre la fila
// del ítem. Falla con ErrInsufficientStock (incluye disponible y nombre) si el
// resultado quedaría negativo, y con ErrNotFound si el ítem no existe.
func (uc *LedgerUseCase) AdjustStock(ctx context.Context, kind entity.ItemKind, id string, delta int) (*entity.StockRecord, error) {
	if !entity.ValidItemKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	var out *entity.StockRecord
	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository) error {
		// Bloquea la fila del ítem para que ningún otro ajuste se intercale
		// entre la lectura y la escritura.
		rec, err := stockRepo.GetForUpdate(kind, id)
		if err != nil {
			return err
		}
		if rec == nil {
			return domain.ErrNotFound
		}
		newLevel := rec.Level + delta
		if newLevel < 0 {
			return fmt.Errorf("%w: solo hay %d unidades de '%s'", domain.ErrInsufficientStock, rec.Level, rec.Name)
		}
		if err := stockRepo.UpdateLevel(kind, id, newLevel); err != nil {
			return err
		}
		rec.Level = newLevel
		out = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SetStock fija el contador en un valor absoluto (corrección manual o cierre de
// ensamble de kits). Falla con ErrInvalidInput si value < 0.
func (uc *LedgerUseCase) SetStock(ctx context.Context, kind entity.ItemKind, id string, value int) (*entity.StockRecord, error) {
	if !entity.ValidItemKind(kind) || value < 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *entity.StockRecord
	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository) error {
		rec, err := stockRepo.GetForUpdate(kind, id)
		if err != nil {
			return err
		}
		if rec == nil {
			return domain.ErrNotFound
		}
		if err := stockRepo.UpdateLevel(kind, id, value); err != nil {
			return err
		}
		rec.Level = value
		out = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
