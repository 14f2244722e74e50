package main

import (
	"os"
	"os/signal"
	"syscall"

	"agrostock-backend/internal/ai"
	"agrostock-backend/internal/handler"
	"agrostock-backend/internal/middleware"
	"agrostock-backend/internal/model"
	"agrostock-backend/internal/repository"
	"agrostock-backend/internal/service"
	"agrostock-backend/internal/ws"
	"agrostock-backend/pkg/database"
	"agrostock-backend/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env (.env is optional; production configures via environment)
	_ = godotenv.Load()

	log := logger.New()

	// 2. Setup in-memory database and schema
	db := database.ConnectDB()
	if err := db.AutoMigrate(
		&model.Product{}, &model.StockEntry{}, &model.Sale{},
		&model.AuditLog{}, &model.Supplier{}, &model.Warehouse{}, &model.User{},
	); err != nil {
		log.WithError(err).Fatal("failed to migrate schema")
	}

	// 3. Seed the demo dataset (state is ephemeral, so every boot reseeds)
	seedDemoData(db, log)

	// 4. WebSocket Hub
	wsHub := ws.NewHub(log)
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	entryRepo := repository.NewStockEntryRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	auditRepo := repository.NewAuditLogRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	warehouseRepo := repository.NewWarehouseRepo(db)
	userRepo := repository.NewUserRepo(db)

	store := service.NewStore(db)
	catalog := service.NewCatalog(productRepo)
	auditService := service.NewAuditService(auditRepo)

	analyst := ai.NewOpenAIAnalyst(os.Getenv("OPENAI_API_KEY"))
	insightService := service.NewInsightService(analyst, productRepo, saleRepo, log)
	insightService.Refresh()

	invService := service.NewInventoryService(store, entryRepo, catalog, auditService, wsHub, insightService, log)
	salesService := service.NewSalesService(store, saleRepo, catalog, auditService, wsHub, insightService, log)
	authService := service.NewAuthService(store, userRepo, auditService)
	dashService := service.NewDashboardService(productRepo, entryRepo, saleRepo, supplierRepo)

	invHandler := handler.NewInventoryHandler(invService)
	salesHandler := handler.NewSalesHandler(salesService)
	auditHandler := handler.NewAuditHandler(auditService)
	dashHandler := handler.NewDashboardHandler(dashService, insightService)
	authHandler := handler.NewAuthHandler(authService)
	supplierHandler := handler.NewSupplierHandler(supplierRepo, warehouseRepo)
	userHandler := handler.NewUserHandler(userRepo)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Agro Stock Manager v1.0",
	})

	app.Use(fiberlogger.New()) // Request logging
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New())        // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Dashboard (any authenticated role)
	protected.Get("/dashboard/stats", dashHandler.GetStats)
	protected.Get("/dashboard/stock-levels", dashHandler.GetStockLevels)
	protected.Get("/dashboard/summary", dashHandler.GetSummary)

	// Products
	protected.Get("/products", invHandler.GetProducts)
	protected.Post("/products", middleware.RequireCapability(model.CapManageProducts), invHandler.CreateProduct)

	// Stock intake; approval authorization is enforced in the service too
	protected.Get("/stock-entries", invHandler.GetStockEntries)
	protected.Post("/stock-entries", middleware.RequireCapability(model.CapRecordIntake), invHandler.CreateStockEntry)
	protected.Post("/stock-entries/:id/decision", invHandler.DecideStockEntry)

	// Sales
	protected.Get("/sales", salesHandler.GetSales)
	protected.Post("/sales", salesHandler.CreateSale)

	// Audit trail (read-only)
	protected.Get("/audit-logs", middleware.RequireCapability(model.CapViewAudit), auditHandler.GetAuditLogs)

	// Reference data
	protected.Get("/suppliers", supplierHandler.GetSuppliers)
	protected.Post("/suppliers", middleware.RequireCapability(model.CapManageSuppliers), supplierHandler.CreateSupplier)
	protected.Get("/warehouses", supplierHandler.GetWarehouses)

	// User management
	protected.Get("/users", middleware.RequireCapability(model.CapManageUsers), userHandler.GetUsers)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server exited")
}
