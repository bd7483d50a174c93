package repository

import "github.com/edukits/kittrack-api/internal/domain/entity"

// KitRepository define el puerto de persistencia para Kit (DIP).
type KitRepository interface {
	Create(kit *entity.Kit) error
	GetByID(id string) (*entity.Kit, error)
	GetBySerialNumber(serialNumber string) (*entity.Kit, error)
	List(limit, offset int) ([]*entity.Kit, error)
	ListByProgram(program string) ([]*entity.Kit, error)
	// Search filtra por nombre o número de serie (case-insensitive).
	Search(term string) ([]*entity.Kit, error)
}
