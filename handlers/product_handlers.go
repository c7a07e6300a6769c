package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"kcpos/finance"
	"kcpos/models"
	"kcpos/store"
	"kcpos/utils"
)

// HandleListProducts returns the product catalog, paginated.
func HandleListProducts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", utils.DefaultPageSize)

	products := appStore.Products()
	start, end := utils.PageBounds(len(products), page, pageSize)

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"items":      products[start:end],
		"pagination": utils.CreatePagination(len(products), page, pageSize),
	}})
}

// HandleListLowStockProducts returns only the products flagged as low on
// stock (stock strictly below the per-product or default threshold).
func HandleListLowStockProducts(c *fiber.Ctx) error {
	flagged := finance.LowStockProducts(appStore.Products())
	return c.JSON(fiber.Map{"success": true, "data": flagged})
}

// HandleCreateProduct adds a product to the catalog.
func HandleCreateProduct(c *fiber.Ctx) error {
	var req models.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	product := appStore.AddProduct(models.Product{
		Name:          req.Name,
		SKU:           req.SKU,
		Price:         req.Price,
		Stock:         req.Stock,
		MinStockLevel: req.MinStockLevel,
	})
	persist("product insert", func(ctx context.Context, db *pgxpool.Pool) error {
		return store.InsertProduct(ctx, db, product)
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": product})
}

// HandleUpdateProduct updates a product's price, stock, and threshold.
func HandleUpdateProduct(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid product id"})
	}

	var req models.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	product, found := appStore.UpdateProduct(id, req.Price, req.Stock, req.MinStockLevel)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Product not found"})
	}
	persist("product update", func(ctx context.Context, db *pgxpool.Pool) error {
		return store.UpdateProduct(ctx, db, product)
	})

	return c.JSON(fiber.Map{"success": true, "data": product})
}

// HandleDeleteProduct removes a product from the catalog.
func HandleDeleteProduct(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid product id"})
	}
	if !appStore.DeleteProduct(id) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Product not found"})
	}
	persist("product delete", func(ctx context.Context, db *pgxpool.Pool) error {
		return store.DeleteProduct(ctx, db, id)
	})
	return c.JSON(fiber.Map{"success": true})
}
