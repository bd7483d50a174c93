package repository

import "github.com/edukits/kittrack-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client (directorio de clientes).
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	List(limit, offset int) ([]*entity.Client, error)
	Update(client *entity.Client) error
	// Search filtra por nombre, persona de contacto o email (case-insensitive).
	Search(term string) ([]*entity.Client, error)
}
