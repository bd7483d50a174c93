package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/edukits/kittrack-api/internal/domain"
	"github.com/edukits/kittrack-api/internal/domain/entity"
	"github.com/edukits/kittrack-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría custom. El índice único (type, name) respalda
// la verificación del caso de uso: bajo carrera devuelve ErrDuplicate.
func (r *CategoryRepo) Create(c *entity.CustomCategory) error {
	query := `
		INSERT INTO custom_categories (id, name, type, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.Name, c.Type, c.CreatedBy, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// ListByType lista las categorías custom de un tipo, por nombre.
func (r *CategoryRepo) ListByType(categoryType string) ([]*entity.CustomCategory, error) {
	query := `
		SELECT id, name, type, created_by, created_at
		FROM custom_categories WHERE type = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, categoryType)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.CustomCategory
	for rows.Next() {
		var c entity.CustomCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.CreatedBy, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// GetByTypeAndName obtiene una categoría custom. Devuelve (nil, nil) si no existe.
func (r *CategoryRepo) GetByTypeAndName(categoryType, name string) (*entity.CustomCategory, error) {
	query := `
		SELECT id, name, type, created_by, created_at
		FROM custom_categories WHERE type = $1 AND name = $2`
	var c entity.CustomCategory
	err := r.q.QueryRow(context.Background(), query, categoryType, name).Scan(
		&c.ID, &c.Name, &c.Type, &c.CreatedBy, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}
