package store

import (
	"time"

	"kcpos/models"
)

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func daysAgo(n int) time.Time { return time.Now().AddDate(0, 0, -n) }

func monthsAgo(n int) time.Time { return time.Now().AddDate(0, -n, 0) }

// NewSeeded returns a store preloaded with a small demo dataset. Used when
// no DATABASE_URL is configured, so the API and reports work out of the box.
func NewSeeded() *Store {
	s := New()

	for _, p := range []models.Product{
		{Name: "Mealie Meal 10kg", SKU: strPtr("GRO-001"), Price: 8.50, Stock: 42},
		{Name: "Cooking Oil 2L", SKU: strPtr("GRO-002"), Price: 5.20, Stock: 8},
		{Name: "Sugar 2kg", SKU: strPtr("GRO-003"), Price: 3.10, Stock: 25},
		{Name: "Bread Flour 5kg", SKU: strPtr("GRO-004"), Price: 6.75, Stock: 4, MinStockLevel: intPtr(6)},
		{Name: "Laundry Soap Bar", SKU: strPtr("HSE-001"), Price: 1.40, Stock: 60},
		{Name: "Candles (pack of 6)", SKU: strPtr("HSE-002"), Price: 2.00, Stock: 12, MinStockLevel: intPtr(15)},
	} {
		s.AddProduct(p)
	}

	for _, sale := range []models.Sale{
		{SaleDate: daysAgo(2), TotalAmount: 24.60, PaymentMethod: "cash", Cashier: "Tariro"},
		{SaleDate: daysAgo(1), TotalAmount: 13.90, PaymentMethod: "ecocash", Cashier: "Tariro"},
		{SaleDate: daysAgo(1), TotalAmount: 41.20, PaymentMethod: "cash", Cashier: "Blessing",
			Items: []models.SaleItem{
				{ProductID: 1, Name: "Mealie Meal 10kg", Quantity: 2, UnitPrice: 8.50, Subtotal: 17.00},
				{ProductID: 2, Name: "Cooking Oil 2L", Quantity: 3, UnitPrice: 5.20, Subtotal: 15.60},
				{ProductID: 3, Name: "Sugar 2kg", Quantity: 2, UnitPrice: 3.10, Subtotal: 6.20},
			}},
		{SaleDate: time.Now(), TotalAmount: 9.30, PaymentMethod: "card", Cashier: "Blessing"},
	} {
		s.AddSale(sale)
	}

	for _, p := range []models.Purchase{
		{PurchaseDate: daysAgo(7), ProductName: "Mealie Meal 10kg", Quantity: 50, UnitCost: 6.00, TotalCost: 300.00, Supplier: "National Foods"},
		{PurchaseDate: daysAgo(5), ProductName: "Cooking Oil 2L", Quantity: 24, UnitCost: 3.80, TotalCost: 91.20, Supplier: "Surface Wilmar"},
	} {
		s.AddPurchase(p)
	}

	for _, e := range []models.Expense{
		{ExpenseDate: daysAgo(10), Category: "rent", Amount: 150.00},
		{ExpenseDate: daysAgo(3), Category: "electricity", Amount: 35.50},
		{ExpenseDate: daysAgo(1), Category: "transport", Amount: 12.00, Notes: strPtr("stock collection")},
	} {
		s.AddExpense(e)
	}

	for _, a := range []models.Asset{
		{Name: "Display Fridge", PurchaseValue: 1200.00, CurrentValue: 900.00, PurchaseDate: monthsAgo(18), Condition: "good"},
		{Name: "POS Terminal", PurchaseValue: 350.00, CurrentValue: 280.00, PurchaseDate: monthsAgo(8), Condition: "excellent"},
		{Name: "Shelving Units", PurchaseValue: 500.00, CurrentValue: 300.00, PurchaseDate: monthsAgo(30), Condition: "fair"},
	} {
		s.AddAsset(a)
	}

	return s
}
