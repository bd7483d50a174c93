package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/edukits/kittrack-api/internal/application/dto"
	"github.com/edukits/kittrack-api/internal/application/inventory"
	"github.com/edukits/kittrack-api/internal/application/stock"
	"github.com/edukits/kittrack-api/internal/domain"
	"github.com/edukits/kittrack-api/internal/domain/entity"
)

// InventoryHandler maneja materiales, categorías y el libro de stock (protegido).
type InventoryHandler struct {
	uc     *inventory.UseCase
	ledger *stock.LedgerUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase, ledger *stock.LedgerUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, ledger: ledger}
}

// CreateRawMaterial godoc
// @Summary      Crear materia prima
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRawMaterialRequest  true  "name, category, stock_level, unit"
// @Success      201   {object}  dto.RawMaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/materials/raw [post]
func (h *InventoryHandler) CreateRawMaterial(c *fiber.Ctx) error {
	var in dto.CreateRawMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateRawMaterial(in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListRawMaterials godoc
// @Summary      Listar materias primas
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "Filtrar por categoría"
// @Success      200  {array}   dto.RawMaterialResponse
// @Router       /api/materials/raw [get]
func (h *InventoryHandler) ListRawMaterials(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.ListRawMaterials(c.Query("category"), page.Limit, page.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// CreatePreprocessedGood godoc
// @Summary      Crear material procesado
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePreprocessedGoodRequest  true  "name, category, stock_level, unit"
// @Success      201   {object}  dto.PreprocessedGoodResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/materials/preprocessed [post]
func (h *InventoryHandler) CreatePreprocessedGood(c *fiber.Ctx) error {
	var in dto.CreatePreprocessedGoodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreatePreprocessedGood(in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPreprocessedGoods godoc
// @Summary      Listar materiales procesados
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "Filtrar por categoría"
// @Success      200  {array}   dto.PreprocessedGoodResponse
// @Router       /api/materials/preprocessed [get]
func (h *InventoryHandler) ListPreprocessedGoods(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.ListPreprocessedGoods(c.Query("category"), page.Limit, page.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// CreateCategory godoc
// @Summary      Registrar categoría custom
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "name, type (raw_material | preprocessed)"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *InventoryHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateCategory(GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCategories godoc
// @Summary      Listar categorías custom de un tipo
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        type  query  string  true  "raw_material | preprocessed"
// @Success      200  {array}   dto.CategoryResponse
// @Router       /api/categories [get]
func (h *InventoryHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories(c.Query("type"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// GetStock godoc
// @Summary      Consultar stock de un ítem
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        kind  path  string  true  "raw | preprocessed | kit"
// @Param        id    path  string  true  "ID del ítem"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{kind}/{id} [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	rec, err := h.ledger.GetStock(c.Context(), entity.ItemKind(c.Params("kind")), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(toStockResponse(rec))
}

// AdjustStock godoc
// @Summary      Ajustar stock (delta con signo)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        kind  path  string  true  "raw | preprocessed | kit"
// @Param        id    path  string  true  "ID del ítem"
// @Param        body  body  dto.AdjustStockRequest  true  "delta"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock/{kind}/{id}/adjust [post]
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rec, err := h.ledger.AdjustStock(c.Context(), entity.ItemKind(c.Params("kind")), c.Params("id"), in.Delta)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(toStockResponse(rec))
}

// SetStock godoc
// @Summary      Fijar stock en un valor absoluto
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        kind  path  string  true  "raw | preprocessed | kit"
// @Param        id    path  string  true  "ID del ítem"
// @Param        body  body  dto.SetStockRequest  true  "stock_level"
// @Success      200  {object}  dto.StockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{kind}/{id} [patch]
func (h *InventoryHandler) SetStock(c *fiber.Ctx) error {
	var in dto.SetStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rec, err := h.ledger.SetStock(c.Context(), entity.ItemKind(c.Params("kind")), c.Params("id"), in.StockLevel)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(toStockResponse(rec))
}

func toStockResponse(rec *entity.StockRecord) dto.StockResponse {
	return dto.StockResponse{
		Kind:       string(rec.Kind),
		ID:         rec.ID,
		Name:       rec.Name,
		StockLevel: rec.Level,
	}
}

// mapDomainError traduce errores de dominio (incluidos los envueltos con %w) a
// códigos HTTP. El mensaje conserva el detalle del error para stock insuficiente
// y transiciones inválidas; el resto usa mensajes fijos.
func mapDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el recurso ya existe"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
