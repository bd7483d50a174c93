package repository

import "github.com/edukits/kittrack-api/internal/domain/entity"

// PreprocessedGoodRepository define el puerto de persistencia para PreprocessedGood (DIP).
// El stock_level se muta solo vía StockRepository.
type PreprocessedGoodRepository interface {
	Create(good *entity.PreprocessedGood) error
	GetByID(id string) (*entity.PreprocessedGood, error)
	List(limit, offset int) ([]*entity.PreprocessedGood, error)
	ListByCategory(category string) ([]*entity.PreprocessedGood, error)
}
