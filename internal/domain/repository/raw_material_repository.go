package repository

import "github.com/edukits/kittrack-api/internal/domain/entity"

// RawMaterialRepository define el puerto de persistencia para RawMaterial (DIP).
// El stock_level se muta solo vía StockRepository.
type RawMaterialRepository interface {
	Create(material *entity.RawMaterial) error
	GetByID(id string) (*entity.RawMaterial, error)
	List(limit, offset int) ([]*entity.RawMaterial, error)
	ListByCategory(category string) ([]*entity.RawMaterial, error)
}
