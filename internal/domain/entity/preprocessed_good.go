package entity

import "time"

// PreprocessedGood representa un material ya procesado internamente
// (corte láser, impresión 3D, pintura, subensamble). Espacio de IDs
// independiente de RawMaterial.
type PreprocessedGood struct {
	ID              string
	Name            string
	Category        string
	StockLevel      int // siempre >= 0
	Unit            string
	Description     string
	ProcessingNotes string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
