package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/edukits/kittrack-api/internal/domain/entity"
	"github.com/edukits/kittrack-api/internal/domain/repository"
)

var _ repository.AssignmentRepository = (*AssignmentRepo)(nil)

// AssignmentRepo implementación del puerto AssignmentRepository sobre PostgreSQL.
type AssignmentRepo struct {
	q Querier
}

// NewAssignmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAssignmentRepository(q Querier) *AssignmentRepo {
	return &AssignmentRepo{q: q}
}

const assignmentColumns = `id, client_id, kit_id, quantity, delivery_type, delivery_date, status, notes, assigned_by, created_at, updated_at`

// Create persiste una nueva asignación.
func (r *AssignmentRepo) Create(a *entity.KitAssignment) error {
	query := `
		INSERT INTO kit_assignments (` + assignmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.ClientID, a.KitID, a.Quantity, a.DeliveryType, a.DeliveryDate,
		a.Status, a.Notes, a.AssignedBy, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

// GetByID obtiene una asignación por ID. Devuelve (nil, nil) si no existe.
func (r *AssignmentRepo) GetByID(id string) (*entity.KitAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM kit_assignments WHERE id = $1`
	return r.getOne(query, id)
}

// GetByIDForUpdate obtiene la asignación y bloquea su fila (SELECT FOR UPDATE)
// para serializar transiciones de estado concurrentes.
func (r *AssignmentRepo) GetByIDForUpdate(id string) (*entity.KitAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM kit_assignments WHERE id = $1 FOR UPDATE`
	return r.getOne(query, id)
}

func (r *AssignmentRepo) getOne(query, id string) (*entity.KitAssignment, error) {
	a, err := scanAssignment(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return a, nil
}

// UpdateStatus actualiza solo el estado de la asignación.
func (r *AssignmentRepo) UpdateStatus(id, status string) error {
	query := `UPDATE kit_assignments SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update assignment status: %w", err)
	}
	return nil
}

// ListByClient devuelve las asignaciones del cliente ordenadas por fecha de
// entrega ascendente (respaldado por índice en (client_id, delivery_date)).
func (r *AssignmentRepo) ListByClient(clientID string) ([]*entity.KitAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + ` FROM kit_assignments
		WHERE client_id = $1 ORDER BY delivery_date`
	rows, err := r.q.Query(context.Background(), query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list assignments by client: %w", err)
	}
	defer rows.Close()
	return collectAssignments(rows)
}

// ListByDateRange devuelve las asignaciones con delivery_date en [start, end],
// bordes inclusivos, ordenadas ascendente.
func (r *AssignmentRepo) ListByDateRange(start, end string) ([]*entity.KitAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + ` FROM kit_assignments
		WHERE delivery_date >= $1 AND delivery_date <= $2
		ORDER BY delivery_date`
	rows, err := r.q.Query(context.Background(), query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list assignments by date range: %w", err)
	}
	defer rows.Close()
	return collectAssignments(rows)
}

// ListAll lista asignaciones paginadas, más recientes primero.
func (r *AssignmentRepo) ListAll(limit, offset int) ([]*entity.KitAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + ` FROM kit_assignments
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()
	return collectAssignments(rows)
}

func scanAssignment(row pgx.Row) (*entity.KitAssignment, error) {
	var a entity.KitAssignment
	err := row.Scan(&a.ID, &a.ClientID, &a.KitID, &a.Quantity, &a.DeliveryType,
		&a.DeliveryDate, &a.Status, &a.Notes, &a.AssignedBy, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func collectAssignments(rows pgx.Rows) ([]*entity.KitAssignment, error) {
	var list []*entity.KitAssignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
