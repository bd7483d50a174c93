package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/edukits/kittrack-api/internal/domain/entity"
	"github.com/edukits/kittrack-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, name, contact_person, email, phone, address, city, state, pincode, created_at, updated_at`

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(c *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.ContactPerson, c.Email, c.Phone, c.Address,
		c.City, c.State, c.Pincode, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	c, err := scanClient(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// List lista clientes paginados por nombre.
func (r *ClientRepo) List(limit, offset int) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	return collectClients(rows)
}

// Update actualiza un cliente existente.
func (r *ClientRepo) Update(c *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, contact_person = $3, email = $4, phone = $5,
			address = $6, city = $7, state = $8, pincode = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.ContactPerson, c.Email, c.Phone, c.Address,
		c.City, c.State, c.Pincode, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Search filtra por nombre, persona de contacto o email (case-insensitive, substring).
func (r *ClientRepo) Search(term string) ([]*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + ` FROM clients
		WHERE name ILIKE '%' || $1 || '%'
			OR contact_person ILIKE '%' || $1 || '%'
			OR email ILIKE '%' || $1 || '%'
		ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, term)
	if err != nil {
		return nil, fmt.Errorf("search clients: %w", err)
	}
	defer rows.Close()
	return collectClients(rows)
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(&c.ID, &c.Name, &c.ContactPerson, &c.Email, &c.Phone,
		&c.Address, &c.City, &c.State, &c.Pincode, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func collectClients(rows pgx.Rows) ([]*entity.Client, error) {
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
