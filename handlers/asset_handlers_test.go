package handlers_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kcpos/models"
	"kcpos/store"
)

func TestCreateAsset(t *testing.T) {
	st := store.New()
	app := newTestApp(st)

	body := `{"name": "Display Fridge", "purchase_value": 1200, "current_value": 900,
		"purchase_date": "2025-02-01", "condition": "good"}`
	req := httptest.NewRequest("POST", "/api/v1/assets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	var asset models.Asset
	decodeData(t, resp.Body, &asset)
	assert.Equal(t, 1, asset.ID)
	assert.Equal(t, "good", asset.Condition)
}

func TestCreateAssetRejectsUnknownCondition(t *testing.T) {
	app := newTestApp(store.New())

	body := `{"name": "Fridge", "purchase_value": 100, "current_value": 90, "condition": "broken"}`
	req := httptest.NewRequest("POST", "/api/v1/assets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestUpdateAssetRevaluation(t *testing.T) {
	st := store.New()
	st.AddAsset(models.Asset{Name: "Shelving", PurchaseValue: 500, CurrentValue: 400, PurchaseDate: time.Now(), Condition: "good"})
	app := newTestApp(st)

	body := `{"current_value": 300, "condition": "fair"}`
	req := httptest.NewRequest("PUT", "/api/v1/assets/1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var asset models.Asset
	decodeData(t, resp.Body, &asset)
	assert.Equal(t, 300.0, asset.CurrentValue)
	assert.Equal(t, "fair", asset.Condition)
	assert.Equal(t, 500.0, asset.PurchaseValue)
}

func TestUpdateAssetNotFound(t *testing.T) {
	app := newTestApp(store.New())

	body := `{"current_value": 300, "condition": "fair"}`
	req := httptest.NewRequest("PUT", "/api/v1/assets/42", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestCreateExpenseAndReportReflectsIt(t *testing.T) {
	st := store.New()
	st.AddSale(models.Sale{SaleDate: time.Now(), TotalAmount: 200, PaymentMethod: "cash"})
	app := newTestApp(st)

	body := `{"category": "rent", "amount": 50}`
	req := httptest.NewRequest("POST", "/api/v1/expenses", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	// The next report recomputes from the updated snapshot.
	req = httptest.NewRequest("GET", "/api/v1/reports/financial", nil)
	resp, err = app.Test(req)
	assert.NoError(t, err)

	var report models.FinancialReport
	decodeData(t, resp.Body, &report)
	assert.Equal(t, 50.0, report.Income.TotalExpenses)
	assert.Equal(t, 150.0, report.Income.NetProfit)
}

func TestCreatePurchaseDerivesTotal(t *testing.T) {
	st := store.New()
	app := newTestApp(st)

	body := `{"product_name": "Cooking Oil 2L", "quantity": 24, "unit_cost": 3.5, "supplier": "Wilmar"}`
	req := httptest.NewRequest("POST", "/api/v1/purchases", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	var purchase models.Purchase
	decodeData(t, resp.Body, &purchase)
	assert.Equal(t, 84.0, purchase.TotalCost)
}
