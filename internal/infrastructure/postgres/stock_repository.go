package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/edukits/kittrack-api/internal/domain/entity"
	"github.com/edukits/kittrack-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
// El contador vive en la misma fila del ítem (raw_materials, preprocessed_goods
// o kits), así que bloquear el stock bloquea el ítem.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// stockTable mapea el tipo de ítem a su tabla. Conjunto cerrado: el nombre
// nunca proviene de entrada del usuario.
func stockTable(kind entity.ItemKind) (string, error) {
	switch kind {
	case entity.ItemKindRaw:
		return "raw_materials", nil
	case entity.ItemKindPreprocessed:
		return "preprocessed_goods", nil
	case entity.ItemKindKit:
		return "kits", nil
	}
	return "", fmt.Errorf("tipo de ítem desconocido: %s", kind)
}

// Get obtiene el contador actual de un ítem. Devuelve (nil, nil) si no existe.
func (r *StockRepo) Get(kind entity.ItemKind, id string) (*entity.StockRecord, error) {
	return r.get(kind, id, false)
}

// GetForUpdate obtiene el contador y bloquea la fila (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(kind entity.ItemKind, id string) (*entity.StockRecord, error) {
	return r.get(kind, id, true)
}

func (r *StockRepo) get(kind entity.ItemKind, id string, forUpdate bool) (*entity.StockRecord, error) {
	table, err := stockTable(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT id, name, stock_level, updated_at FROM %s WHERE id = $1`, table)
	if forUpdate {
		query += " FOR UPDATE"
	}
	var s entity.StockRecord
	s.Kind = kind
	err = r.q.QueryRow(context.Background(), query, id).Scan(&s.ID, &s.Name, &s.Level, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock %s: %w", table, err)
	}
	return &s, nil
}

// UpdateLevel fija el contador del ítem. El caso de uso ya validó que el valor
// no sea negativo; el CHECK de la tabla es la última línea de defensa.
func (r *StockRepo) UpdateLevel(kind entity.ItemKind, id string, level int) error {
	table, err := stockTable(kind)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`UPDATE %s SET stock_level = $2, updated_at = now() WHERE id = $1`, table)
	_, err = r.q.Exec(context.Background(), query, id, level)
	if err != nil {
		return fmt.Errorf("update stock %s: %w", table, err)
	}
	return nil
}
