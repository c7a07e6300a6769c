package routes

import (
	"kcpos/handlers"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Sales ---
	sales := api.Group("/sales")
	sales.Get("/", handlers.HandleListSales)
	sales.Post("/", handlers.HandleCreateSale)
	sales.Delete("/:saleId", handlers.HandleDeleteSale)

	// --- Purchases ---
	purchases := api.Group("/purchases")
	purchases.Get("/", handlers.HandleListPurchases)
	purchases.Post("/", handlers.HandleCreatePurchase)
	purchases.Delete("/:purchaseId", handlers.HandleDeletePurchase)

	// --- Expenses ---
	expenses := api.Group("/expenses")
	expenses.Get("/", handlers.HandleListExpenses)
	expenses.Post("/", handlers.HandleCreateExpense)
	expenses.Delete("/:expenseId", handlers.HandleDeleteExpense)

	// --- Assets ---
	assets := api.Group("/assets")
	assets.Get("/", handlers.HandleListAssets)
	assets.Post("/", handlers.HandleCreateAsset)
	assets.Put("/:assetId", handlers.HandleUpdateAsset)
	assets.Delete("/:assetId", handlers.HandleDeleteAsset)

	// --- Products ---
	products := api.Group("/products")
	products.Get("/low-stock", handlers.HandleListLowStockProducts) // Must be before /:productId
	products.Get("/", handlers.HandleListProducts)
	products.Post("/", handlers.HandleCreateProduct)
	products.Put("/:productId", handlers.HandleUpdateProduct)
	products.Delete("/:productId", handlers.HandleDeleteProduct)

	// --- Reports & Dashboard ---
	api.Get("/reports/financial", handlers.HandleGetFinancialReport)
	api.Get("/dashboard/summary", handlers.HandleGetDashboardSummary)
}
