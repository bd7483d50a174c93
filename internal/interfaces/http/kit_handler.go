package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edukits/kittrack-api/internal/application/dto"
	"github.com/edukits/kittrack-api/internal/application/kit"
)

// KitHandler maneja kits y su plan de empaque (protegido).
type KitHandler struct {
	uc *kit.UseCase
}

// NewKitHandler construye el handler.
func NewKitHandler(uc *kit.UseCase) *KitHandler {
	return &KitHandler{uc: uc}
}

// Create godoc
// @Summary      Crear kit
// @Tags         kits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateKitRequest  true  "name, serial_number, program"
// @Success      201   {object}  dto.KitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/kits [post]
func (h *KitHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateKitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener kit con plan de empaque
// @Tags         kits
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del kit"
// @Success      200  {object}  dto.KitDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/kits/{id} [get]
func (h *KitHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar kits
// @Tags         kits
// @Security     Bearer
// @Produce      json
// @Param        program  query  string  false  "robotics | cstem"
// @Param        q        query  string  false  "Buscar por nombre o número de serie"
// @Success      200  {array}   dto.KitResponse
// @Router       /api/kits [get]
func (h *KitHandler) List(c *fiber.Ctx) error {
	if term := c.Query("q"); term != "" {
		out, err := h.uc.Search(term)
		if err != nil {
			return mapDomainError(c, err)
		}
		return c.JSON(out)
	}
	if program := c.Query("program"); program != "" {
		out, err := h.uc.ListByProgram(program)
		if err != nil {
			return mapDomainError(c, err)
		}
		return c.JSON(out)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// AddMaterial godoc
// @Summary      Agregar línea al plan de empaque
// @Tags         kits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del kit"
// @Param        body  body  dto.AddKitMaterialRequest  true  "material_type, material_id, quantity, packet_number"
// @Success      201   {object}  dto.KitMaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/kits/{id}/materials [post]
func (h *KitHandler) AddMaterial(c *fiber.Ctx) error {
	var in dto.AddKitMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddLine(c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMaterials godoc
// @Summary      Listar el plan de empaque del kit
// @Tags         kits
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del kit"
// @Success      200  {array}   dto.KitMaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/kits/{id}/materials [get]
func (h *KitHandler) ListMaterials(c *fiber.Ctx) error {
	out, err := h.uc.ListLines(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// RemoveMaterial godoc
// @Summary      Quitar línea del plan de empaque
// @Tags         kits
// @Security     Bearer
// @Produce      json
// @Param        id       path  string  true  "ID del kit"
// @Param        line_id  path  string  true  "ID de la línea"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/kits/{id}/materials/{line_id} [delete]
func (h *KitHandler) RemoveMaterial(c *fiber.Ctx) error {
	if err := h.uc.RemoveLine(c.Params("line_id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "línea eliminada"})
}
