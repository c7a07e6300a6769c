package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"kcpos/models"
	"kcpos/store"
	"kcpos/utils"
)

// HandleListSales returns the sales collection, paginated.
func HandleListSales(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", utils.DefaultPageSize)

	sales := appStore.Sales()
	start, end := utils.PageBounds(len(sales), page, pageSize)

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"items":      sales[start:end],
		"pagination": utils.CreatePagination(len(sales), page, pageSize),
	}})
}

// HandleCreateSale records a completed sale.
func HandleCreateSale(c *fiber.Ctx) error {
	var req models.CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	saleDate, ok := utils.ParseDateOrNow(req.SaleDate)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid sale_date format"})
	}

	sale := models.Sale{
		SaleDate:      saleDate,
		TotalAmount:   req.TotalAmount,
		PaymentMethod: req.PaymentMethod,
		Cashier:       req.Cashier,
	}
	for _, item := range req.Items {
		sale.Items = append(sale.Items, models.SaleItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  float64(item.Quantity) * item.UnitPrice,
		})
	}

	sale = appStore.AddSale(sale)
	persist("sale insert", func(ctx context.Context, db *pgxpool.Pool) error {
		return store.InsertSale(ctx, db, sale)
	})

	log.Printf("💰 [SALES] Recorded sale %d (%.2f via %s)", sale.ID, sale.TotalAmount, sale.PaymentMethod)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": sale})
}

// HandleDeleteSale removes a sale record.
func HandleDeleteSale(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "saleId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid sale id"})
	}
	if !appStore.DeleteSale(id) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Sale not found"})
	}
	persist("sale delete", func(ctx context.Context, db *pgxpool.Pool) error {
		return store.DeleteSale(ctx, db, id)
	})
	return c.JSON(fiber.Map{"success": true})
}
