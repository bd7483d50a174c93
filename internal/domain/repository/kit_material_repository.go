package repository

import "github.com/edukits/kittrack-api/internal/domain/entity"

// KitMaterialRepository define el puerto de persistencia para las líneas del
// plan de empaque (BOM) de un kit.
type KitMaterialRepository interface {
	Create(line *entity.KitMaterial) error
	GetByID(id string) (*entity.KitMaterial, error)
	// ListByKit devuelve las líneas ordenadas por packet_number y orden de inserción.
	ListByKit(kitID string) ([]*entity.KitMaterial, error)
	Delete(id string) error
}
