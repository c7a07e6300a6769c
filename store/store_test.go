package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kcpos/models"
)

func TestAddAssignsSequentialIDs(t *testing.T) {
	s := New()

	first := s.AddSale(models.Sale{TotalAmount: 10})
	second := s.AddSale(models.Sale{TotalAmount: 20})

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	// Counters are per collection.
	expense := s.AddExpense(models.Expense{Amount: 5})
	assert.Equal(t, 1, expense.ID)
}

func TestDeleteReportsExistence(t *testing.T) {
	s := New()
	sale := s.AddSale(models.Sale{TotalAmount: 10})

	assert.True(t, s.DeleteSale(sale.ID))
	assert.False(t, s.DeleteSale(sale.ID))
	assert.False(t, s.DeleteSale(999))
	assert.Len(t, s.Sales(), 0)
}

func TestIDsNotReusedAfterDelete(t *testing.T) {
	s := New()
	first := s.AddPurchase(models.Purchase{TotalCost: 1})
	s.DeletePurchase(first.ID)

	second := s.AddPurchase(models.Purchase{TotalCost: 2})
	assert.Equal(t, 2, second.ID)
}

func TestSnapshotIsolation(t *testing.T) {
	s := New()
	s.AddSale(models.Sale{
		TotalAmount: 30,
		Items:       []models.SaleItem{{ProductID: 1, Quantity: 3, UnitPrice: 10, Subtotal: 30}},
	})
	s.AddProduct(models.Product{Name: "Sugar", Price: 3, Stock: 5})

	snap := s.Snapshot()
	snap.Sales[0].TotalAmount = 9999
	snap.Sales[0].Items[0].Quantity = 9999
	snap.Products[0].Stock = 0

	fresh := s.Snapshot()
	assert.Equal(t, 30.0, fresh.Sales[0].TotalAmount)
	assert.Equal(t, 3, fresh.Sales[0].Items[0].Quantity)
	assert.Equal(t, 5, fresh.Products[0].Stock)
}

func TestUpdateAsset(t *testing.T) {
	s := New()
	asset := s.AddAsset(models.Asset{Name: "Fridge", PurchaseValue: 1000, CurrentValue: 900, Condition: "good"})

	updated, found := s.UpdateAsset(asset.ID, 700, "fair")
	assert.True(t, found)
	assert.Equal(t, 700.0, updated.CurrentValue)
	assert.Equal(t, "fair", updated.Condition)
	assert.Equal(t, 1000.0, updated.PurchaseValue)

	_, found = s.UpdateAsset(999, 1, "poor")
	assert.False(t, found)
}

func TestUpdateProduct(t *testing.T) {
	s := New()
	min := 5
	product := s.AddProduct(models.Product{Name: "Oil", Price: 5.2, Stock: 10})

	updated, found := s.UpdateProduct(product.ID, 5.5, 8, &min)
	assert.True(t, found)
	assert.Equal(t, 5.5, updated.Price)
	assert.Equal(t, 8, updated.Stock)
	assert.Equal(t, 5, *updated.MinStockLevel)
}

func TestLoadAdvancesIDCounters(t *testing.T) {
	s := New()
	s.Load(models.Snapshot{
		Sales:    []models.Sale{{ID: 7, TotalAmount: 10}},
		Products: []models.Product{{ID: 3, Name: "A"}},
	})

	sale := s.AddSale(models.Sale{TotalAmount: 20})
	assert.Equal(t, 8, sale.ID)

	product := s.AddProduct(models.Product{Name: "B"})
	assert.Equal(t, 4, product.ID)
}

func TestNewSeededProducesUsableData(t *testing.T) {
	s := NewSeeded()
	snap := s.Snapshot()

	assert.NotEmpty(t, snap.Sales)
	assert.NotEmpty(t, snap.Purchases)
	assert.NotEmpty(t, snap.Expenses)
	assert.NotEmpty(t, snap.Assets)
	assert.NotEmpty(t, snap.Products)

	for _, sale := range snap.Sales {
		assert.GreaterOrEqual(t, sale.TotalAmount, 0.0)
	}
	for _, a := range snap.Assets {
		assert.Contains(t, []string{"excellent", "good", "fair", "poor"}, a.Condition)
	}
}
