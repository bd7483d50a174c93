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

var _ repository.KitRepository = (*KitRepo)(nil)

// KitRepo implementación del puerto KitRepository sobre PostgreSQL.
type KitRepo struct {
	q Querier
}

// NewKitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewKitRepository(q Querier) *KitRepo {
	return &KitRepo{q: q}
}

const kitColumns = `id, name, serial_number, program, grade_level, description, stock_level, created_at, updated_at`

// Create persiste un nuevo kit. El índice único de serial_number respalda la
// verificación del caso de uso: bajo carrera devuelve ErrDuplicate.
func (r *KitRepo) Create(kit *entity.Kit) error {
	query := `
		INSERT INTO kits (` + kitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		kit.ID, kit.Name, kit.SerialNumber, kit.Program, kit.GradeLevel,
		kit.Description, kit.StockLevel, kit.CreatedAt, kit.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert kit: %w", err)
	}
	return nil
}

// GetByID obtiene un kit por ID. Devuelve (nil, nil) si no existe.
func (r *KitRepo) GetByID(id string) (*entity.Kit, error) {
	query := `SELECT ` + kitColumns + ` FROM kits WHERE id = $1`
	return r.getOne(query, id)
}

// GetBySerialNumber obtiene un kit por número de serie. Devuelve (nil, nil) si no existe.
func (r *KitRepo) GetBySerialNumber(serialNumber string) (*entity.Kit, error) {
	query := `SELECT ` + kitColumns + ` FROM kits WHERE serial_number = $1`
	return r.getOne(query, serialNumber)
}

func (r *KitRepo) getOne(query string, arg any) (*entity.Kit, error) {
	k, err := scanKit(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get kit: %w", err)
	}
	return k, nil
}

// List lista kits paginados por nombre.
func (r *KitRepo) List(limit, offset int) ([]*entity.Kit, error) {
	query := `SELECT ` + kitColumns + ` FROM kits ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list kits: %w", err)
	}
	defer rows.Close()
	return collectKits(rows)
}

// ListByProgram lista los kits de un programa.
func (r *KitRepo) ListByProgram(program string) ([]*entity.Kit, error) {
	query := `SELECT ` + kitColumns + ` FROM kits WHERE program = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, program)
	if err != nil {
		return nil, fmt.Errorf("list kits by program: %w", err)
	}
	defer rows.Close()
	return collectKits(rows)
}

// Search filtra por nombre o número de serie (case-insensitive, substring).
func (r *KitRepo) Search(term string) ([]*entity.Kit, error) {
	query := `
		SELECT ` + kitColumns + ` FROM kits
		WHERE name ILIKE '%' || $1 || '%' OR serial_number ILIKE '%' || $1 || '%'
		ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, term)
	if err != nil {
		return nil, fmt.Errorf("search kits: %w", err)
	}
	defer rows.Close()
	return collectKits(rows)
}

func scanKit(row pgx.Row) (*entity.Kit, error) {
	var k entity.Kit
	err := row.Scan(&k.ID, &k.Name, &k.SerialNumber, &k.Program, &k.GradeLevel,
		&k.Description, &k.StockLevel, &k.CreatedAt, &k.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func collectKits(rows pgx.Rows) ([]*entity.Kit, error) {
	var list []*entity.Kit
	for rows.Next() {
		k, err := scanKit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan kit: %w", err)
		}
		list = append(list, k)
	}
	return list, rows.Err()
}
