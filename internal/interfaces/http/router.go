package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ou-api/internal/application/auth"
	"github.com/jhoicas/stock-ou-api/internal/application/stockaccount"
	"github.com/jhoicas/stock-ou-api/internal/application/usecase"
	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	ActionDone      *stockaccount.ActionDoneUseCase
	PreviewLines    *stockaccount.PreviewLinesUseCase
	AccountMoveUC   *stockaccount.AccountMoveUseCase
	OperatingUnitUC *usecase.OperatingUnitUseCase
	WarehouseUC     *usecase.WarehouseUseCase
	LotUC           *usecase.LotUseCase
	ModuleService   *usecase.ModuleService
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	staff := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)
	accounting := RequireRole(entity.RoleAdmin, entity.RoleContador)
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleBodeguero, entity.RoleContador)
	ouAccounting := RequireModule(entity.ModuleStockAccountOperatingUnit, deps.ModuleService)

	// Movimientos de stock
	stock := protected.Group("/stock/moves")
	stockHandler := NewStockHandler(deps.ActionDone, deps.PreviewLines)
	stock.Post("/done", staff, stockHandler.ActionDone)
	stock.Post("/:id/valuation-lines", accounting, ouAccounting, stockHandler.PreviewLines)

	// Asientos contables
	accountMoves := protected.Group("/account-moves", accounting)
	accountMoveHandler := NewAccountMoveHandler(deps.AccountMoveUC)
	accountMoves.Get("/:id", accountMoveHandler.GetByID)
	accountMoves.Get("/:id/pdf", accountMoveHandler.PDF)

	// Unidades operativas
	ous := protected.Group("/operating-units")
	ouHandler := NewOperatingUnitHandler(deps.OperatingUnitUC)
	ous.Post("/", RequireRole(entity.RoleAdmin), ouHandler.Create)
	ous.Get("/", anyRole, ouHandler.List)
	ous.Get("/:id", anyRole, ouHandler.GetByID)

	// Bodegas
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", RequireRole(entity.RoleAdmin), warehouseHandler.Create)
	warehouses.Get("/", anyRole, warehouseHandler.List)
	warehouses.Get("/:id", anyRole, warehouseHandler.GetByID)
	warehouses.Put("/:id", RequireRole(entity.RoleAdmin), warehouseHandler.Update)
	warehouses.Delete("/:id", RequireRole(entity.RoleAdmin), warehouseHandler.Delete)

	// Dirección de bodega por tipo de operación (addon stock_warehouse_address)
	protected.Get("/picking-types/:id/address",
		anyRole,
		RequireModule(entity.ModuleStockWarehouseAddress, deps.ModuleService),
		warehouseHandler.PickingTypeAddress,
	)

	// Lotes con existencias (addon stock_filter_prodlot_qty)
	lotHandler := NewLotHandler(deps.LotUC)
	protected.Get("/lots",
		staff,
		RequireModule(entity.ModuleStockFilterProdlotQty, deps.ModuleService),
		lotHandler.List,
	)

	// Addons
	modules := protected.Group("/modules")
	moduleHandler := NewModuleHandler(deps.ModuleService)
	modules.Get("/", anyRole, moduleHandler.List)
	modules.Post("/:name/activate", RequireRole(entity.RoleAdmin), moduleHandler.Activate)
}
