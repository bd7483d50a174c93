package client

import (
	"time"

	"github.com/google/uuid"

	"github.com/edukits/kittrack-api/internal/application/dto"
	"github.com/edukits/kittrack-api/internal/domain"
	"github.com/edukits/kittrack-api/internal/domain/entity"
	"github.com/edukits/kittrack-api/internal/domain/repository"
)

// UseCase casos de uso del directorio de clientes (almacenamiento plano de
// contacto; el motor de asignaciones lo consume solo como destino de FK).
type UseCase struct {
	repo repository.ClientRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ClientRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create crea un cliente.
func (uc *UseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || in.ContactPerson == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Client{
		ID:            uuid.New().String(),
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		City:          in.City,
		State:         in.State,
		Pincode:       in.Pincode,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toClientResponse(c), nil
}

// GetByID obtiene un cliente por ID.
func (uc *UseCase) GetByID(id string) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(c), nil
}

// List lista clientes paginados.
func (uc *UseCase) List(limit, offset int) ([]dto.ClientResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toClientResponses(list), nil
}

// Update actualiza los campos presentes en la petición.
func (uc *UseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.ContactPerson != nil {
		c.ContactPerson = *in.ContactPerson
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.Address != nil {
		c.Address = *in.Address
	}
	if in.City != nil {
		c.City = *in.City
	}
	if in.State != nil {
		c.State = *in.State
	}
	if in.Pincode != nil {
		c.Pincode = *in.Pincode
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toClientResponse(c), nil
}

// Search busca clientes por nombre, contacto o email.
func (uc *UseCase) Search(term string) ([]dto.ClientResponse, error) {
	list, err := uc.repo.Search(term)
	if err != nil {
		return nil, err
	}
	return toClientResponses(list), nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:            c.ID,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		City:          c.City,
		State:         c.State,
		Pincode:       c.Pincode,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toClientResponses(list []*entity.Client) []dto.ClientResponse {
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toClientResponse(c))
	}
	return out
}
