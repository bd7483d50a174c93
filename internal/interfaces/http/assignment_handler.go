package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edukits/kittrack-api/internal/application/assignment"
	"github.com/edukits/kittrack-api/internal/application/dto"
)

// AssignmentHandler maneja el ciclo de vida de asignaciones (protegido).
type AssignmentHandler struct {
	uc           *assignment.LifecycleUseCase
	deliveryNote *assignment.DeliveryNoteUseCase
}

// NewAssignmentHandler construye el handler.
func NewAssignmentHandler(uc *assignment.LifecycleUseCase, deliveryNote *assignment.DeliveryNoteUseCase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc, deliveryNote: deliveryNote}
}

// Create godoc
// @Summary      Crear asignación de kits
// @Description  Compromete stock del kit: el check de disponibilidad y el
//
//	descuento corren en la misma transacción que inserta el registro.
//
// @Tags         assignments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssignmentRequest  true  "client_id, kit_id, quantity, delivery_type, delivery_date"
// @Success      201   {object}  dto.AssignmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assignments [post]
func (h *AssignmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateStatus godoc
// @Summary      Transicionar el estado de una asignación
// @Description  pending→delivered solo cambia el estado; pending→cancelled
//
//	devuelve la cantidad comprometida al stock del kit.
//
// @Tags         assignments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la asignación"
// @Param        body  body  dto.UpdateAssignmentStatusRequest  true  "status: delivered | cancelled"
// @Success      200   {object}  dto.AssignmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assignments/{id}/status [patch]
func (h *AssignmentHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateAssignmentStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Transition(c.Context(), GetUserID(c), c.Params("id"), in.Status)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener asignación con referencias resueltas
// @Tags         assignments
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la asignación"
// @Success      200  {object}  dto.AssignmentDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assignments/{id} [get]
func (h *AssignmentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar asignaciones
// @Description  Con client_id lista las del cliente por fecha de entrega; con
//
//	start y end lista el rango [start, end] inclusivo; sin filtros,
//	todas paginadas.
//
// @Tags         assignments
// @Security     Bearer
// @Produce      json
// @Param        client_id  query  string  false  "Filtrar por cliente"
// @Param        start      query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        end        query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200  {array}   dto.AssignmentDetailResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/assignments [get]
func (h *AssignmentHandler) List(c *fiber.Ctx) error {
	if clientID := c.Query("client_id"); clientID != "" {
		out, err := h.uc.ListByClient(c.Context(), clientID)
		if err != nil {
			return mapDomainError(c, err)
		}
		return c.JSON(out)
	}
	start, end := c.Query("start"), c.Query("end")
	if start != "" || end != "" {
		out, err := h.uc.ListByDateRange(c.Context(), start, end)
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
	out, err := h.uc.ListAll(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// DeliveryNote godoc
// @Summary      Descargar el remito de entrega (PDF)
// @Tags         assignments
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la asignación"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assignments/{id}/delivery-note [get]
func (h *AssignmentHandler) DeliveryNote(c *fiber.Ctx) error {
	pdfBytes, err := h.deliveryNote.Generate(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="remito-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}
