// Package store owns the in-memory record collections. The store is the
// single mutable state container; the reporting layer only ever works on
// snapshots taken from it. When a database is configured the collections
// are hydrated from Postgres at startup and writes go through, but the
// in-memory state stays the source of truth for reports.
package store

import (
	"sync"

	"kcpos/models"
)

// Store holds all record collections behind a single RWMutex. Ids are
// synthetic integers assigned per collection, monotonically increasing.
type Store struct {
	mu        sync.RWMutex
	sales     []models.Sale
	purchases []models.Purchase
	expenses  []models.Expense
	assets    []models.Asset
	products  []models.Product

	nextSaleID     int
	nextPurchaseID int
	nextExpenseID  int
	nextAssetID    int
	nextProductID  int
}

// New returns an empty store.
func New() *Store {
	return &Store{
		nextSaleID:     1,
		nextPurchaseID: 1,
		nextExpenseID:  1,
		nextAssetID:    1,
		nextProductID:  1,
	}
}

// Snapshot returns deep copies of every collection. Mutating the returned
// slices never affects the store.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := models.Snapshot{
		Sales:     make([]models.Sale, len(s.sales)),
		Purchases: make([]models.Purchase, len(s.purchases)),
		Expenses:  make([]models.Expense, len(s.expenses)),
		Assets:    make([]models.Asset, len(s.assets)),
		Products:  make([]models.Product, len(s.products)),
	}
	for i, sale := range s.sales {
		snap.Sales[i] = copySale(sale)
	}
	copy(snap.Purchases, s.purchases)
	copy(snap.Expenses, s.expenses)
	copy(snap.Assets, s.assets)
	copy(snap.Products, s.products)
	return snap
}

func copySale(sale models.Sale) models.Sale {
	if sale.Items != nil {
		items := make([]models.SaleItem, len(sale.Items))
		copy(items, sale.Items)
		sale.Items = items
	}
	return sale
}

// Load replaces every collection with the given records, keeping their
// ids, and advances the id counters past the highest id seen. Used when
// hydrating from the database.
func (s *Store) Load(snap models.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sales = make([]models.Sale, len(snap.Sales))
	for i, sale := range snap.Sales {
		s.sales[i] = copySale(sale)
		if sale.ID >= s.nextSaleID {
			s.nextSaleID = sale.ID + 1
		}
	}
	s.purchases = append([]models.Purchase(nil), snap.Purchases...)
	for _, p := range snap.Purchases {
		if p.ID >= s.nextPurchaseID {
			s.nextPurchaseID = p.ID + 1
		}
	}
	s.expenses = append([]models.Expense(nil), snap.Expenses...)
	for _, e := range snap.Expenses {
		if e.ID >= s.nextExpenseID {
			s.nextExpenseID = e.ID + 1
		}
	}
	s.assets = append([]models.Asset(nil), snap.Assets...)
	for _, a := range snap.Assets {
		if a.ID >= s.nextAssetID {
			s.nextAssetID = a.ID + 1
		}
	}
	s.products = append([]models.Product(nil), snap.Products...)
	for _, p := range snap.Products {
		if p.ID >= s.nextProductID {
			s.nextProductID = p.ID + 1
		}
	}
}

// --- Sales ---

// AddSale assigns an id and appends the sale. The stored record is
// returned with its id set.
func (s *Store) AddSale(sale models.Sale) models.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	sale.ID = s.nextSaleID
	s.nextSaleID++
	s.sales = append(s.sales, copySale(sale))
	return sale
}

// Sales returns a copy of the sales collection.
func (s *Store) Sales() []models.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Sale, len(s.sales))
	for i, sale := range s.sales {
		out[i] = copySale(sale)
	}
	return out
}

// DeleteSale removes the sale with the given id, reporting whether it
// existed.
func (s *Store) DeleteSale(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sale := range s.sales {
		if sale.ID == id {
			s.sales = append(s.sales[:i], s.sales[i+1:]...)
			return true
		}
	}
	return false
}

// --- Purchases ---

func (s *Store) AddPurchase(p models.Purchase) models.Purchase {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextPurchaseID
	s.nextPurchaseID++
	s.purchases = append(s.purchases, p)
	return p
}

func (s *Store) Purchases() []models.Purchase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Purchase, len(s.purchases))
	copy(out, s.purchases)
	return out
}

func (s *Store) DeletePurchase(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.purchases {
		if p.ID == id {
			s.purchases = append(s.purchases[:i], s.purchases[i+1:]...)
			return true
		}
	}
	return false
}

// --- Expenses ---

func (s *Store) AddExpense(e models.Expense) models.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.nextExpenseID
	s.nextExpenseID++
	s.expenses = append(s.expenses, e)
	return e
}

func (s *Store) Expenses() []models.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

func (s *Store) DeleteExpense(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.expenses {
		if e.ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return true
		}
	}
	return false
}

// --- Assets ---

func (s *Store) AddAsset(a models.Asset) models.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.nextAssetID
	s.nextAssetID++
	s.assets = append(s.assets, a)
	return a
}

func (s *Store) Assets() []models.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Asset, len(s.assets))
	copy(out, s.assets)
	return out
}

// UpdateAsset revalues an asset, reporting whether the id existed.
func (s *Store) UpdateAsset(id int, currentValue float64, condition string) (models.Asset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.assets {
		if a.ID == id {
			s.assets[i].CurrentValue = currentValue
			s.assets[i].Condition = condition
			return s.assets[i], true
		}
	}
	return models.Asset{}, false
}

func (s *Store) DeleteAsset(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.assets {
		if a.ID == id {
			s.assets = append(s.assets[:i], s.assets[i+1:]...)
			return true
		}
	}
	return false
}

// --- Products ---

func (s *Store) AddProduct(p models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextProductID
	s.nextProductID++
	s.products = append(s.products, p)
	return p
}

func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// UpdateProduct updates price, stock, and threshold, reporting whether the
// id existed.
func (s *Store) UpdateProduct(id int, price float64, stock int, minStockLevel *int) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == id {
			s.products[i].Price = price
			s.products[i].Stock = stock
			s.products[i].MinStockLevel = minStockLevel
			return s.products[i], true
		}
	}
	return models.Product{}, false
}

func (s *Store) DeleteProduct(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true
		}
	}
	return false
}
