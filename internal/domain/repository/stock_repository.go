package repository

import "github.com/edukits/kittrack-api/internal/domain/entity"

// StockRepository define el puerto del libro de stock: lectura y escritura del
// contador stock_level de cualquiera de los tres inventarios. Usado dentro de
// transacciones para garantizar consistencia (no hay otra ruta de mutación).
// Get/GetForUpdate devuelven (nil, nil) si el ítem no existe.
type StockRepository interface {
	Get(kind entity.ItemKind, id string) (*entity.StockRecord, error)
	// GetForUpdate bloquea la fila del ítem (SELECT FOR UPDATE) para el
	// check-and-adjust atómico.
	GetForUpdate(kind entity.ItemKind, id string) (*entity.StockRecord, error)
	UpdateLevel(kind entity.ItemKind, id string, level int) error
}
