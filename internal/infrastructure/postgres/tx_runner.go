package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edukits/kittrack-api/internal/application/assignment"
	"github.com/edukits/kittrack-api/internal/application/stock"
	"github.com/edukits/kittrack-api/internal/domain/repository"
)

// Ensure TxRunner implements stock.TxRunner and assignment.TxRunner.
var _ stock.TxRunner = (*TxRunner)(nil)
var _ assignment.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con el repositorio de stock atado a
// la tx y hace Commit o Rollback. Usado por el libro de stock.
func (r *TxRunner) Run(ctx context.Context, fn func(stockRepo repository.StockRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAssignment inicia una transacción con los repos de stock y asignaciones
// (para Create/Transition del ciclo de vida de asignaciones).
func (r *TxRunner) RunAssignment(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	assignmentRepo repository.AssignmentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockRepository(tx), NewAssignmentRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
