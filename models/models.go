package models

import "time"

// --- Core Records ---

// Sale represents a completed checkout transaction.
type Sale struct {
	ID            int        `json:"id"`
	SaleDate      time.Time  `json:"sale_date"`
	TotalAmount   float64    `json:"total_amount"`
	PaymentMethod string     `json:"payment_method"`
	Cashier       string     `json:"cashier"`
	Items         []SaleItem `json:"items,omitempty"`
}

// SaleItem is an individual line within a Sale.
type SaleItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// Purchase represents a stock purchase from a supplier.
type Purchase struct {
	ID           int       `json:"id"`
	PurchaseDate time.Time `json:"purchase_date"`
	ProductName  string    `json:"product_name"`
	Quantity     int       `json:"quantity"`
	UnitCost     float64   `json:"unit_cost"`
	TotalCost    float64   `json:"total_cost"`
	Supplier     string    `json:"supplier"`
}

// Expense represents an operating expense entry.
type Expense struct {
	ID          int       `json:"id"`
	ExpenseDate time.Time `json:"expense_date"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Notes       *string   `json:"notes,omitempty"`
}

// Asset represents a fixed asset owned by the shop.
// Condition is one of: excellent, good, fair, poor.
type Asset struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	PurchaseValue float64   `json:"purchase_value"`
	CurrentValue  float64   `json:"current_value"`
	PurchaseDate  time.Time `json:"purchase_date"`
	Condition     string    `json:"condition"`
}

// Product represents a sellable item and its current stock level.
type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	SKU           *string `json:"sku,omitempty"`
	Price         float64 `json:"price"`
	Stock         int     `json:"stock"`
	MinStockLevel *int    `json:"min_stock_level,omitempty"`
}

// Snapshot is an immutable view of all record collections, taken from the
// store on every recomputation. The reporting layer only ever reads it.
type Snapshot struct {
	Sales     []Sale     `json:"sales"`
	Purchases []Purchase `json:"purchases"`
	Expenses  []Expense  `json:"expenses"`
	Assets    []Asset    `json:"assets"`
	Products  []Product  `json:"products"`
}

// --- API Request Structs ---

// CreateSaleRequest defines the body for recording a sale.
// SaleDate is optional and accepts the same formats as the report filters;
// it defaults to the current time.
type CreateSaleRequest struct {
	SaleDate      string            `json:"sale_date"`
	TotalAmount   float64           `json:"total_amount" validate:"gte=0"`
	PaymentMethod string            `json:"payment_method" validate:"required"`
	Cashier       string            `json:"cashier"`
	Items         []SaleItemRequest `json:"items" validate:"dive"`
}

// SaleItemRequest is a line item within CreateSaleRequest.
type SaleItemRequest struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity" validate:"gt=0"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

// CreatePurchaseRequest defines the body for recording a stock purchase.
// TotalCost may be omitted; it is derived as quantity * unit_cost.
type CreatePurchaseRequest struct {
	PurchaseDate string  `json:"purchase_date"`
	ProductName  string  `json:"product_name" validate:"required"`
	Quantity     int     `json:"quantity" validate:"gt=0"`
	UnitCost     float64 `json:"unit_cost" validate:"gte=0"`
	TotalCost    float64 `json:"total_cost" validate:"gte=0"`
	Supplier     string  `json:"supplier"`
}

// CreateExpenseRequest defines the body for recording an expense.
type CreateExpenseRequest struct {
	ExpenseDate string  `json:"expense_date"`
	Category    string  `json:"category" validate:"required"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	Notes       *string `json:"notes,omitempty"`
}

// CreateAssetRequest defines the body for registering an asset.
type CreateAssetRequest struct {
	Name          string  `json:"name" validate:"required"`
	PurchaseValue float64 `json:"purchase_value" validate:"gte=0"`
	CurrentValue  float64 `json:"current_value" validate:"gte=0"`
	PurchaseDate  string  `json:"purchase_date"`
	Condition     string  `json:"condition" validate:"required,oneof=excellent good fair poor"`
}

// UpdateAssetRequest defines the body for revaluing an asset.
type UpdateAssetRequest struct {
	CurrentValue float64 `json:"current_value" validate:"gte=0"`
	Condition    string  `json:"condition" validate:"required,oneof=excellent good fair poor"`
}

// CreateProductRequest defines the body for adding a product.
type CreateProductRequest struct {
	Name          string  `json:"name" validate:"required"`
	SKU           *string `json:"sku,omitempty"`
	Price         float64 `json:"price" validate:"gte=0"`
	Stock         int     `json:"stock" validate:"gte=0"`
	MinStockLevel *int    `json:"min_stock_level,omitempty" validate:"omitempty,gte=0"`
}

// UpdateProductRequest defines the body for updating a product's price,
// stock level, or low-stock threshold.
type UpdateProductRequest struct {
	Price         float64 `json:"price" validate:"gte=0"`
	Stock         int     `json:"stock" validate:"gte=0"`
	MinStockLevel *int    `json:"min_stock_level,omitempty" validate:"omitempty,gte=0"`
}

// --- Paginated Responses ---

// Pagination details for paginated responses.
type Pagination struct {
	TotalItems  int `json:"total_items"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
}
