package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawMaterial representa una materia prima del inventario (espuma, MDF, tornillería, etc.).
// StockLevel se modifica únicamente a través del libro de stock (StockLedger), nunca directo.
type RawMaterial struct {
	ID          string
	Name        string
	Category    string // categoría conocida o registrada en custom_categories
	StockLevel  int    // siempre >= 0
	Unit        string // "pieces", "meters", "kg", ...
	Description string
	Supplier    string
	UnitPrice   decimal.Decimal // precio de compra unitario (0 si no aplica)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
