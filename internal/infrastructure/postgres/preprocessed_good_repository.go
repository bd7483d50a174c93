package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/edukits/kittrack-api/internal/domain/entity"
	"github.com/edukits/kittrack-api/internal/domain/repository"
)

var _ repository.PreprocessedGoodRepository = (*PreprocessedGoodRepo)(nil)

// PreprocessedGoodRepo implementación del puerto PreprocessedGoodRepository sobre PostgreSQL.
type PreprocessedGoodRepo struct {
	q Querier
}

// NewPreprocessedGoodRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPreprocessedGoodRepository(q Querier) *PreprocessedGoodRepo {
	return &PreprocessedGoodRepo{q: q}
}

const preprocessedColumns = `id, name, category, stock_level, unit, description, processing_notes, created_at, updated_at`

// Create persiste un nuevo material procesado.
func (r *PreprocessedGoodRepo) Create(g *entity.PreprocessedGood) error {
	query := `
		INSERT INTO preprocessed_goods (` + preprocessedColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		g.ID, g.Name, g.Category, g.StockLevel, g.Unit, g.Description,
		g.ProcessingNotes, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert preprocessed good: %w", err)
	}
	return nil
}

// GetByID obtiene un material procesado por ID. Devuelve (nil, nil) si no existe.
func (r *PreprocessedGoodRepo) GetByID(id string) (*entity.PreprocessedGood, error) {
	query := `SELECT ` + preprocessedColumns + ` FROM preprocessed_goods WHERE id = $1`
	g, err := scanPreprocessedGood(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get preprocessed good: %w", err)
	}
	return g, nil
}

// List lista materiales procesados paginados por nombre.
func (r *PreprocessedGoodRepo) List(limit, offset int) ([]*entity.PreprocessedGood, error) {
	query := `SELECT ` + preprocessedColumns + ` FROM preprocessed_goods ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list preprocessed goods: %w", err)
	}
	defer rows.Close()
	return collectPreprocessedGoods(rows)
}

// ListByCategory lista materiales procesados de una categoría.
func (r *PreprocessedGoodRepo) ListByCategory(category string) ([]*entity.PreprocessedGood, error) {
	query := `SELECT ` + preprocessedColumns + ` FROM preprocessed_goods WHERE category = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, category)
	if err != nil {
		return nil, fmt.Errorf("list preprocessed goods by category: %w", err)
	}
	defer rows.Close()
	return collectPreprocessedGoods(rows)
}

func scanPreprocessedGood(row pgx.Row) (*entity.PreprocessedGood, error) {
	var g entity.PreprocessedGood
	err := row.Scan(&g.ID, &g.Name, &g.Category, &g.StockLevel, &g.Unit,
		&g.Description, &g.ProcessingNotes, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func collectPreprocessedGoods(rows pgx.Rows) ([]*entity.PreprocessedGood, error) {
	var list []*entity.PreprocessedGood
	for rows.Next() {
		g, err := scanPreprocessedGood(rows)
		if err != nil {
			return nil, fmt.Errorf("scan preprocessed good: %w", err)
		}
		list = append(list, g)
	}
	return list, rows.Err()
}
