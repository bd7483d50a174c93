package stock

import (
	"context"

	"github.com/edukits/kittrack-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// StockRepository atado a esa tx. Garantiza que el check-and-adjust del libro
// de stock sea una sola operación atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(stockRepo repository.StockRepository) error) error
}
