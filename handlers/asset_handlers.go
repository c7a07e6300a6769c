package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"kcpos/models"
	"kcpos/store"
	"kcpos/utils"
)

// HandleListAssets returns the assets collection, paginated.
func HandleListAssets(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", utils.DefaultPageSize)

	assets := appStore.Assets()
	start, end := utils.PageBounds(len(assets), page, pageSize)

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"items":      assets[start:end],
		"pagination": utils.CreatePagination(len(assets), page, pageSize),
	}})
}

// HandleCreateAsset registers a fixed asset.
func HandleCreateAsset(c *fiber.Ctx) error {
	var req models.CreateAssetRequest
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

	asset := appStore.AddAsset(models.Asset{
		Name:          req.Name,
		PurchaseValue: req.PurchaseValue,
		CurrentValue:  req.CurrentValue,
		PurchaseDate:  purchaseDate,
		Condition:     req.Condition,
	})
	persist("asset insert", func(ctx context.Context, db *pgxpool.Pool) error {
		return store.InsertAsset(ctx, db, asset)
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": asset})
}

// HandleUpdateAsset revalues an asset (current value and condition).
func HandleUpdateAsset(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "assetId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid asset id"})
	}

	var req models.UpdateAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	asset, found := appStore.UpdateAsset(id, req.CurrentValue, req.Condition)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Asset not found"})
	}
	persist("asset update", func(ctx context.Context, db *pgxpool.Pool) error {
		return store.UpdateAsset(ctx, db, asset)
	})

	return c.JSON(fiber.Map{"success": true, "data": asset})
}

// HandleDeleteAsset removes an asset record.
func HandleDeleteAsset(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "assetId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid asset id"})
	}
	if !appStore.DeleteAsset(id) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Asset not found"})
	}
	persist("asset delete", func(ctx context.Context, db *pgxpool.Pool) error {
		return store.DeleteAsset(ctx, db, id)
	})
	return c.JSON(fiber.Map{"success": true})
}
