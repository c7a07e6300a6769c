package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"kcpos/models"
	"kcpos/store"
	"kcpos/utils"
)

// HandleListPurchases returns the purchases collection, paginated.
func HandleListPurchases(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", utils.DefaultPageSize)

	purchases := appStore.Purchases()
	start, end := utils.PageBounds(len(purchases), page, pageSize)

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"items":      purchases[start:end],
		"pagination": utils.CreatePagination(len(purchases), page, pageSize),
	}})
}

// HandleCreatePurchase records a stock purchase. TotalCost is derived from
// quantity and unit cost when the client omits it.
func HandleCreatePurchase(c *fiber.Ctx) error {
	var req models.CreatePurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	purchaseDate, ok := utils.ParseDateOrNow(req.PurchaseDate)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid purchase_date format"})
	}

	totalCost := req.TotalCost
	if totalCost == 0 {
		totalCost = float64(req.Quantity) * req.UnitCost
	}

	purchase := appStore.AddPurchase(models.Purchase{
		PurchaseDate: purchaseDate,
		ProductName:  req.ProductName,
		Quantity:     req.Quantity,
		UnitCost:     req.UnitCost,
		TotalCost:    totalCost,
		Supplier:     req.Supplier,
	})
	persist("purchase insert", func(ctx context.Context, db *pgxpool.Pool) error {
		return store.InsertPurchase(ctx, db, purchase)
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": purchase})
}

// HandleDeletePurchase removes a purchase record.
func HandleDeletePurchase(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "purchaseId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid purchase id"})
	}
	if !appStore.DeletePurchase(id) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Purchase not found"})
	}
	persist("purchase delete", func(ctx context.Context, db *pgxpool.Pool) error {
		return store.DeletePurchase(ctx, db, id)
	})
	return c.JSON(fiber.Map{"success": true})
}
