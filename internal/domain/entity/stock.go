package entity

import "time"

// ItemKind identifica cuál de los tres inventarios posee el contador de stock.
type ItemKind string

const (
	ItemKindRaw          ItemKind = "raw"
	ItemKindPreprocessed ItemKind = "preprocessed"
	ItemKindKit          ItemKind = "kit"
)

// ValidItemKind verifica el tipo de ítem.
func ValidItemKind(k ItemKind) bool {
	return k == ItemKindRaw || k == ItemKindPreprocessed || k == ItemKindKit
}

// StockRecord es la vista del libro de stock sobre un ítem: su contador actual
// más el nombre para mensajes de error accionables ("solo quedan N de 'X'").
type StockRecord struct {
	Kind      ItemKind
	ID        string
	Name      string
	Level     int // siempre >= 0
	UpdatedAt time.Time
}
