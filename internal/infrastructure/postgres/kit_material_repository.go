package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/edukits/kittrack-api/internal/domain/entity"
	"github.com/edukits/kittrack-api/internal/domain/repository"
)

var _ repository.KitMaterialRepository = (*KitMaterialRepo)(nil)

// KitMaterialRepo implementación del puerto KitMaterialRepository sobre PostgreSQL.
type KitMaterialRepo struct {
	q Querier
}

// NewKitMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewKitMaterialRepository(q Querier) *KitMaterialRepo {
	return &KitMaterialRepo{q: q}
}

// Create persiste una línea del plan de empaque. La columna seq (bigserial)
// conserva el orden de inserción dentro del paquete.
func (r *KitMaterialRepo) Create(line *entity.KitMaterial) error {
	query := `
		INSERT INTO kit_materials (id, kit_id, material_type, material_id, quantity, packet_number, packet_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.KitID, line.MaterialType, line.MaterialID,
		line.Quantity, line.PacketNumber, line.PacketName,
	)
	if err != nil {
		return fmt.Errorf("insert kit material: %w", err)
	}
	return nil
}

// GetByID obtiene una línea por ID. Devuelve (nil, nil) si no existe.
func (r *KitMaterialRepo) GetByID(id string) (*entity.KitMaterial, error) {
	query := `
		SELECT id, kit_id, material_type, material_id, quantity, packet_number, packet_name
		FROM kit_materials WHERE id = $1`
	var line entity.KitMaterial
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&line.ID, &line.KitID, &line.MaterialType, &line.MaterialID,
		&line.Quantity, &line.PacketNumber, &line.PacketName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get kit material: %w", err)
	}
	return &line, nil
}

// ListByKit devuelve las líneas del kit ordenadas por packet_number y orden de inserción.
func (r *KitMaterialRepo) ListByKit(kitID string) ([]*entity.KitMaterial, error) {
	query := `
		SELECT id, kit_id, material_type, material_id, quantity, packet_number, packet_name
		FROM kit_materials WHERE kit_id = $1
		ORDER BY packet_number, seq`
	rows, err := r.q.Query(context.Background(), query, kitID)
	if err != nil {
		return nil, fmt.Errorf("list kit materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.KitMaterial
	for rows.Next() {
		var line entity.KitMaterial
		if err := rows.Scan(&line.ID, &line.KitID, &line.MaterialType, &line.MaterialID,
			&line.Quantity, &line.PacketNumber, &line.PacketName); err != nil {
			return nil, fmt.Errorf("scan kit material: %w", err)
		}
		list = append(list, &line)
	}
	return list, rows.Err()
}

// Delete elimina una línea por ID.
func (r *KitMaterialRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM kit_materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete kit material: %w", err)
	}
	return nil
}
