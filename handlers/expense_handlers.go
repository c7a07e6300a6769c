package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"kcpos/models"
	"kcpos/store"
	"kcpos/utils"
)

// HandleListExpenses returns the expenses collection, paginated.
func HandleListExpenses(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", utils.DefaultPageSize)

	expenses := appStore.Expenses()
	start, end := utils.PageBounds(len(expenses), page, pageSize)

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"items":      expenses[start:end],
		"pagination": utils.CreatePagination(len(expenses), page, pageSize),
	}})
}

// HandleCreateExpense records an operating expense.
func HandleCreateExpense(c *fiber.Ctx) error {
	var req models.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	expenseDate, ok := utils.ParseDateOrNow(req.ExpenseDate)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid expense_date format"})
	}

	expense := appStore.AddExpense(models.Expense{
		ExpenseDate: expenseDate,
		Category:    req.Category,
		Amount:      req.Amount,
		Notes:       req.Notes,
	})
	persist("expense insert", func(ctx context.Context, db *pgxpool.Pool) error {
		return store.InsertExpense(ctx, db, expense)
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": expense})
}

// HandleDeleteExpense removes an expense record.
func HandleDeleteExpense(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "expenseId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid expense id"})
	}
	if !appStore.DeleteExpense(id) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Expense not found"})
	}
	persist("expense delete", func(ctx context.Context, db *pgxpool.Pool) error {
		return store.DeleteExpense(ctx, db, id)
	})
	return c.JSON(fiber.Map{"success": true})
}
