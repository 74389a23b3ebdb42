package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoquepro/estoque-api/internal/application/auth"
	"github.com/estoquepro/estoque-api/internal/application/stock"
	"github.com/estoquepro/estoque-api/internal/application/usecase"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	StockUC          *stock.StockUseCase
	RegisterMovement *stock.RegisterMovementUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Products (protegido; escrita restrita a admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", adminOnly, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:sku", productHandler.GetBySKU)
	products.Put("/:sku", adminOnly, productHandler.Update)
	products.Delete("/:sku", adminOnly, productHandler.Delete)

	// Movements (protegido; qualquer papel autenticado registra)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.StockUC)
	movements.Post("/entries", movementHandler.RegisterEntry)
	movements.Get("/entries", movementHandler.ListEntries)
	movements.Delete("/entries/:id", adminOnly, movementHandler.DeleteEntry)
	movements.Post("/exits", movementHandler.RegisterExit)
	movements.Get("/exits", movementHandler.ListExits)
	movements.Delete("/exits/:id", adminOnly, movementHandler.DeleteExit)

	// Stock (protegido, somente leitura; sempre recalculado do log)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Get("/", stockHandler.List)
	stockGroup.Get("/:sku", stockHandler.GetBySKU)
	stockGroup.Get("/:sku/lots", stockHandler.GetLots)
}
