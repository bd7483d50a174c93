package repository

import "github.com/edukits/kittrack-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para las categorías
// registradas (extensión del conjunto conocido).
type CategoryRepository interface {
	Create(category *entity.CustomCategory) error
	ListByType(categoryType string) ([]*entity.CustomCategory, error)
	// GetByTypeAndName devuelve (nil, nil) si no existe.
	GetByTypeAndName(categoryType, name string) (*entity.CustomCategory, error)
}
