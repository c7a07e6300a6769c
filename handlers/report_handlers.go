package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"kcpos/finance"
)

// HandleGetFinancialReport computes the full financial report from a fresh
// snapshot of the store. No caching; every request recomputes.
func HandleGetFinancialReport(c *fiber.Ctx) error {
	report := finance.BuildReport(appStore.Snapshot())
	return c.JSON(fiber.Map{"success": true, "data": report})
}

// HandleGetDashboardSummary computes the today-scoped dashboard figures:
// today's revenue and transaction count plus low-stock alerts.
func HandleGetDashboardSummary(c *fiber.Ctx) error {
	summary := finance.BuildDailySummary(appStore.Snapshot(), time.Now())
	return c.JSON(fiber.Map{"success": true, "data": summary})
}
