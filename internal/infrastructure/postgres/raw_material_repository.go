package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/edukits/kittrack-api/internal/domain/entity"
	"github.com/edukits/kittrack-api/internal/domain/repository"
)

var _ repository.RawMaterialRepository = (*RawMaterialRepo)(nil)

// RawMaterialRepo implementación del puerto RawMaterialRepository sobre PostgreSQL.
type RawMaterialRepo struct {
	q Querier
}

// NewRawMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRawMaterialRepository(q Querier) *RawMaterialRepo {
	return &RawMaterialRepo{q: q}
}

const rawMaterialColumns = `id, name, category, stock_level, unit, description, supplier, unit_price, created_at, updated_at`

// Create persiste una nueva materia prima.
func (r *RawMaterialRepo) Create(m *entity.RawMaterial) error {
	query := `
		INSERT INTO raw_materials (` + rawMaterialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Name, m.Category, m.StockLevel, m.Unit, m.Description,
		m.Supplier, m.UnitPrice, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert raw material: %w", err)
	}
	return nil
}

// GetByID obtiene una materia prima por ID. Devuelve (nil, nil) si no existe.
func (r *RawMaterialRepo) GetByID(id string) (*entity.RawMaterial, error) {
	query := `SELECT ` + rawMaterialColumns + ` FROM raw_materials WHERE id = $1`
	m, err := scanRawMaterial(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get raw material: %w", err)
	}
	return m, nil
}

// List lista materias primas paginadas por nombre.
func (r *RawMaterialRepo) List(limit, offset int) ([]*entity.RawMaterial, error) {
	query := `SELECT ` + rawMaterialColumns + ` FROM raw_materials ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list raw materials: %w", err)
	}
	defer rows.Close()
	return collectRawMaterials(rows)
}

// ListByCategory lista materias primas de una categoría.
func (r *RawMaterialRepo) ListByCategory(category string) ([]*entity.RawMaterial, error) {
	query := `SELECT ` + rawMaterialColumns + ` FROM raw_materials WHERE category = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, category)
	if err != nil {
		return nil, fmt.Errorf("list raw materials by category: %w", err)
	}
	defer rows.Close()
	return collectRawMaterials(rows)
}

func scanRawMaterial(row pgx.Row) (*entity.RawMaterial, error) {
	var m entity.RawMaterial
	err := row.Scan(&m.ID, &m.Name, &m.Category, &m.StockLevel, &m.Unit,
		&m.Description, &m.Supplier, &m.UnitPrice, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectRawMaterials(rows pgx.Rows) ([]*entity.RawMaterial, error) {
	var list []*entity.RawMaterial
	for rows.Next() {
		m, err := scanRawMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan raw material: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
