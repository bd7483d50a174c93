package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edukits/kittrack-api/internal/application/assignment"
	"github.com/edukits/kittrack-api/internal/application/auth"
	"github.com/edukits/kittrack-api/internal/application/client"
	"github.com/edukits/kittrack-api/internal/application/inventory"
	"github.com/edukits/kittrack-api/internal/application/kit"
	"github.com/edukits/kittrack-api/internal/application/stock"
	"github.com/edukits/kittrack-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	InventoryUC  *inventory.UseCase
	LedgerUC     *stock.LedgerUseCase
	KitUC        *kit.UseCase
	ClientUC     *client.UseCase
	AssignmentUC *assignment.LifecycleUseCase
	DeliveryNote *assignment.DeliveryNoteUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Las lecturas exigen solo autenticación;
// las mutaciones de inventario y kits requieren rol de bodega y las de clientes
// y asignaciones rol de programa (admin pasa en ambos casos).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	warehouse := RequireRole(entity.RoleAdmin, entity.RoleInventoryManager)
	program := RequireRole(entity.RoleAdmin, entity.RoleProgramCoordinator)

	// Materials (protegido)
	materials := protected.Group("/materials")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.LedgerUC)
	materials.Post("/raw", warehouse, inventoryHandler.CreateRawMaterial)
	materials.Get("/raw", inventoryHandler.ListRawMaterials)
	materials.Post("/preprocessed", warehouse, inventoryHandler.CreatePreprocessedGood)
	materials.Get("/preprocessed", inventoryHandler.ListPreprocessedGoods)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categories.Post("/", warehouse, inventoryHandler.CreateCategory)
	categories.Get("/", inventoryHandler.ListCategories)

	// Stock ledger (protegido)
	stockGroup := protected.Group("/stock")
	stockGroup.Get("/:kind/:id", inventoryHandler.GetStock)
	stockGroup.Post("/:kind/:id/adjust", warehouse, inventoryHandler.AdjustStock)
	stockGroup.Patch("/:kind/:id", warehouse, inventoryHandler.SetStock)

	// Kits (protegido)
	kits := protected.Group("/kits")
	kitHandler := NewKitHandler(deps.KitUC)
	kits.Post("/", warehouse, kitHandler.Create)
	kits.Get("/", kitHandler.List)
	kits.Get("/:id", kitHandler.GetByID)
	kits.Post("/:id/materials", warehouse, kitHandler.AddMaterial)
	kits.Get("/:id/materials", kitHandler.ListMaterials)
	kits.Delete("/:id/materials/:line_id", warehouse, kitHandler.RemoveMaterial)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", program, clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", program, clientHandler.Update)

	// Assignments (protegido)
	assignments := protected.Group("/assignments")
	assignmentHandler := NewAssignmentHandler(deps.AssignmentUC, deps.DeliveryNote)
	assignments.Post("/", program, assignmentHandler.Create)
	assignments.Get("/", assignmentHandler.List)
	assignments.Get("/:id", assignmentHandler.GetByID)
	assignments.Patch("/:id/status", program, assignmentHandler.UpdateStatus)
	assignments.Get("/:id/delivery-note", assignmentHandler.DeliveryNote)
}
