package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"kcpos/models"
)

// schema creates the record tables. Ids are assigned by the store, not the
// database, so the columns are plain integers.
const schema = `
CREATE TABLE IF NOT EXISTS sales (
    id INTEGER PRIMARY KEY,
    sale_date TIMESTAMPTZ NOT NULL,
    total_amount DOUBLE PRECISION NOT NULL,
    payment_method TEXT NOT NULL,
    cashier TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS sale_items (
    sale_id INTEGER NOT NULL REFERENCES sales(id) ON DELETE CASCADE,
    product_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    quantity INTEGER NOT NULL,
    unit_price DOUBLE PRECISION NOT NULL,
    subtotal DOUBLE PRECISION NOT NULL
);
CREATE TABLE IF NOT EXISTS purchases (
    id INTEGER PRIMARY KEY,
    purchase_date TIMESTAMPTZ NOT NULL,
    product_name TEXT NOT NULL,
    quantity INTEGER NOT NULL,
    unit_cost DOUBLE PRECISION NOT NULL,
    total_cost DOUBLE PRECISION NOT NULL,
    supplier TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS expenses (
    id INTEGER PRIMARY KEY,
    expense_date TIMESTAMPTZ NOT NULL,
    category TEXT NOT NULL,
    amount DOUBLE PRECISION NOT NULL,
    notes TEXT
);
CREATE TABLE IF NOT EXISTS assets (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    purchase_value DOUBLE PRECISION NOT NULL,
    current_value DOUBLE PRECISION NOT NULL,
    purchase_date TIMESTAMPTZ NOT NULL,
    condition TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS products (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    sku TEXT,
    price DOUBLE PRECISION NOT NULL,
    stock INTEGER NOT NULL,
    min_stock_level INTEGER
);
`

// EnsureSchema creates the tables if they do not exist.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Hydrate loads every collection from the database into the store.
func Hydrate(ctx context.Context, db *pgxpool.Pool, s *Store) error {
	var snap models.Snapshot

	rows, err := db.Query(ctx, `SELECT id, sale_date, total_amount, payment_method, cashier FROM sales ORDER BY id`)
	if err != nil {
		return fmt.Errorf("failed to load sales: %w", err)
	}
	for rows.Next() {
		var sale models.Sale
		if err := rows.Scan(&sale.ID, &sale.SaleDate, &sale.TotalAmount, &sale.PaymentMethod, &sale.Cashier); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan sale: %w", err)
		}
		snap.Sales = append(snap.Sales, sale)
	}
	rows.Close()

	itemRows, err := db.Query(ctx, `SELECT sale_id, product_id, name, quantity, unit_price, subtotal FROM sale_items`)
	if err != nil {
		return fmt.Errorf("failed to load sale items: %w", err)
	}
	itemsBySale := make(map[int][]models.SaleItem)
	for itemRows.Next() {
		var saleID int
		var item models.SaleItem
		if err := itemRows.Scan(&saleID, &item.ProductID, &item.Name, &item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			itemRows.Close()
			return fmt.Errorf("failed to scan sale item: %w", err)
		}
		itemsBySale[saleID] = append(itemsBySale[saleID], item)
	}
	itemRows.Close()
	for i := range snap.Sales {
		snap.Sales[i].Items = itemsBySale[snap.Sales[i].ID]
	}

	rows, err = db.Query(ctx, `SELECT id, purchase_date, product_name, quantity, unit_cost, total_cost, supplier FROM purchases ORDER BY id`)
	if err != nil {
		return fmt.Errorf("failed to load purchases: %w", err)
	}
	for rows.Next() {
		var p models.Purchase
		if err := rows.Scan(&p.ID, &p.PurchaseDate, &p.ProductName, &p.Quantity, &p.UnitCost, &p.TotalCost, &p.Supplier); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan purchase: %w", err)
		}
		snap.Purchases = append(snap.Purchases, p)
	}
	rows.Close()

	rows, err = db.Query(ctx, `SELECT id, expense_date, category, amount, notes FROM expenses ORDER BY id`)
	if err != nil {
		return fmt.Errorf("failed to load expenses: %w", err)
	}
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.ExpenseDate, &e.Category, &e.Amount, &e.Notes); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan expense: %w", err)
		}
		snap.Expenses = append(snap.Expenses, e)
	}
	rows.Close()

	rows, err = db.Query(ctx, `SELECT id, name, purchase_value, current_value, purchase_date, condition FROM assets ORDER BY id`)
	if err != nil {
		return fmt.Errorf("failed to load assets: %w", err)
	}
	for rows.Next() {
		var a models.Asset
		if err := rows.Scan(&a.ID, &a.Name, &a.PurchaseValue, &a.CurrentValue, &a.PurchaseDate, &a.Condition); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan asset: %w", err)
		}
		snap.Assets = append(snap.Assets, a)
	}
	rows.Close()

	rows, err = db.Query(ctx, `SELECT id, name, sku, price, stock, min_stock_level FROM products ORDER BY id`)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Price, &p.Stock, &p.MinStockLevel); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan product: %w", err)
		}
		snap.Products = append(snap.Products, p)
	}
	rows.Close()

	s.Load(snap)
	return nil
}

// --- Write-through helpers ---

// InsertSale persists a sale and its line items.
func InsertSale(ctx context.Context, db *pgxpool.Pool, sale models.Sale) error {
	_, err := db.Exec(ctx,
		`INSERT INTO sales (id, sale_date, total_amount, payment_method, cashier) VALUES ($1, $2, $3, $4, $5)`,
		sale.ID, sale.SaleDate, sale.TotalAmount, sale.PaymentMethod, sale.Cashier)
	if err != nil {
		return err
	}
	for _, item := range sale.Items {
		_, err := db.Exec(ctx,
			`INSERT INTO sale_items (sale_id, product_id, name, quantity, unit_price, subtotal) VALUES ($1, $2, $3, $4, $5, $6)`,
			sale.ID, item.ProductID, item.Name, item.Quantity, item.UnitPrice, item.Subtotal)
		if err != nil {
			return err
		}
	}
	return nil
}

func DeleteSale(ctx context.Context, db *pgxpool.Pool, id int) error {
	_, err := db.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	return err
}

func InsertPurchase(ctx context.Context, db *pgxpool.Pool, p models.Purchase) error {
	_, err := db.Exec(ctx,
		`INSERT INTO purchases (id, purchase_date, product_name, quantity, unit_cost, total_cost, supplier) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.PurchaseDate, p.ProductName, p.Quantity, p.UnitCost, p.TotalCost, p.Supplier)
	return err
}

func DeletePurchase(ctx context.Context, db *pgxpool.Pool, id int) error {
	_, err := db.Exec(ctx, `DELETE FROM purchases WHERE id = $1`, id)
	return err
}

func InsertExpense(ctx context.Context, db *pgxpool.Pool, e models.Expense) error {
	_, err := db.Exec(ctx,
		`INSERT INTO expenses (id, expense_date, category, amount, notes) VALUES ($1, $2, $3, $4, $5)`,
		e.ID, e.ExpenseDate, e.Category, e.Amount, e.Notes)
	return err
}

func DeleteExpense(ctx context.Context, db *pgxpool.Pool, id int) error {
	_, err := db.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	return err
}

func InsertAsset(ctx context.Context, db *pgxpool.Pool, a models.Asset) error {
	_, err := db.Exec(ctx,
		`INSERT INTO assets (id, name, purchase_value, current_value, purchase_date, condition) VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.Name, a.PurchaseValue, a.CurrentValue, a.PurchaseDate, a.Condition)
	return err
}

func UpdateAsset(ctx context.Context, db *pgxpool.Pool, a models.Asset) error {
	_, err := db.Exec(ctx,
		`UPDATE assets SET current_value = $2, condition = $3 WHERE id = $1`,
		a.ID, a.CurrentValue, a.Condition)
	return err
}

func DeleteAsset(ctx context.Context, db *pgxpool.Pool, id int) error {
	_, err := db.Exec(ctx, `DELETE FROM assets WHERE id = $1`, id)
	return err
}

func InsertProduct(ctx context.Context, db *pgxpool.Pool, p models.Product) error {
	_, err := db.Exec(ctx,
		`INSERT INTO products (id, name, sku, price, stock, min_stock_level) VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.Name, p.SKU, p.Price, p.Stock, p.MinStockLevel)
	return err
}

func UpdateProduct(ctx context.Context, db *pgxpool.Pool, p models.Product) error {
	_, err := db.Exec(ctx,
		`UPDATE products SET price = $2, stock = $3, min_stock_level = $4 WHERE id = $1`,
		p.ID, p.Price, p.Stock, p.MinStockLevel)
	return err
}

func DeleteProduct(ctx context.Context, db *pgxpool.Pool, id int) error {
	_, err := db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}
