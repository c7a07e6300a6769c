package handlers_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"kcpos/handlers"
	"kcpos/models"
	"kcpos/routes"
	"kcpos/store"
)

// newTestApp wires a fresh app against the given store.
func newTestApp(st *store.Store) *fiber.App {
	handlers.SetStore(st)
	app := fiber.New()
	routes.SetupRoutes(app)
	return app
}

func decodeData(t *testing.T, resp io.Reader, out interface{}) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode response envelope: %v", err)
	}
	if !envelope.Success {
		t.Fatalf("expected success envelope")
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
}

func TestGetFinancialReport(t *testing.T) {
	st := store.New()
	st.AddSale(models.Sale{SaleDate: time.Now(), TotalAmount: 300, PaymentMethod: "cash"})
	st.AddPurchase(models.Purchase{PurchaseDate: time.Now(), ProductName: "Stock", Quantity: 10, UnitCost: 12, TotalCost: 120})
	st.AddExpense(models.Expense{ExpenseDate: time.Now(), Category: "rent", Amount: 30})
	app := newTestApp(st)

	req := httptest.NewRequest("GET", "/api/v1/reports/financial", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report models.FinancialReport
	decodeData(t, resp.Body, &report)

	assert.Equal(t, 300.0, report.Income.TotalRevenue)
	assert.Equal(t, 120.0, report.Income.TotalCost)
	assert.Equal(t, 180.0, report.Income.GrossProfit)
	assert.Equal(t, 150.0, report.Income.NetProfit)
	assert.Equal(t, 50.0, report.Income.ProfitMargin)
	assert.Equal(t, 1, report.Performance.TransactionCount)
}

func TestGetFinancialReportEmptyStore(t *testing.T) {
	app := newTestApp(store.New())

	req := httptest.NewRequest("GET", "/api/v1/reports/financial", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report models.FinancialReport
	decodeData(t, resp.Body, &report)

	// All-zero inputs still produce a complete, finite report.
	assert.Equal(t, 0.0, report.Income.ProfitMargin)
	assert.Equal(t, 0.0, report.Ratios.AssetTurnover)
	assert.Equal(t, 0.0, report.Balance.CurrentRatio)
}

func TestGetDashboardSummary(t *testing.T) {
	st := store.New()
	st.AddSale(models.Sale{SaleDate: time.Now(), TotalAmount: 40, PaymentMethod: "cash"})
	st.AddSale(models.Sale{SaleDate: time.Now(), TotalAmount: 60, PaymentMethod: "card"})
	st.AddSale(models.Sale{SaleDate: time.Now().AddDate(0, 0, -2), TotalAmount: 500, PaymentMethod: "cash"})
	st.AddProduct(models.Product{Name: "Low", Price: 2, Stock: 3})
	st.AddProduct(models.Product{Name: "Fine", Price: 2, Stock: 30})
	app := newTestApp(st)

	req := httptest.NewRequest("GET", "/api/v1/dashboard/summary", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var summary models.DashboardSummary
	decodeData(t, resp.Body, &summary)

	assert.Equal(t, 100.0, summary.SalesToday)
	assert.Equal(t, 2, summary.TransactionsToday)
	assert.Equal(t, 50.0, summary.AverageSaleValue)
	assert.Equal(t, 2, summary.TotalProducts)
	assert.Equal(t, 1, summary.LowStockCount)
}

func TestLowStockEndpoint(t *testing.T) {
	st := store.New()
	min := 10
	st.AddProduct(models.Product{Name: "boundary", Price: 1, Stock: 10, MinStockLevel: &min})
	st.AddProduct(models.Product{Name: "under", Price: 1, Stock: 9, MinStockLevel: &min})
	app := newTestApp(st)

	req := httptest.NewRequest("GET", "/api/v1/products/low-stock", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var flagged []models.Product
	decodeData(t, resp.Body, &flagged)

	assert.Len(t, flagged, 1)
	assert.Equal(t, "under", flagged[0].Name)
}
