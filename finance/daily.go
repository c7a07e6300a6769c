package finance

import (
	"time"

	"kcpos/models"
)

// DefaultLowStockThreshold flags products with fewer than this many units
// when no per-product MinStockLevel is set.
const DefaultLowStockThreshold = 10

// sameLocalDay reports whether t falls on the same calendar day as ref,
// evaluated in ref's location. This is a calendar-day comparison, not a
// rolling 24h window.
func sameLocalDay(t, ref time.Time) bool {
	ty, tm, td := t.In(ref.Location()).Date()
	ry, rm, rd := ref.Date()
	return ty == ry && tm == rm && td == rd
}

// SalesOn returns the sales whose date falls on ref's calendar day.
func SalesOn(sales []models.Sale, ref time.Time) []models.Sale {
	matched := make([]models.Sale, 0)
	for _, sale := range sales {
		if sameLocalDay(sale.SaleDate, ref) {
			matched = append(matched, sale)
		}
	}
	return matched
}

// LowStockProducts returns the products whose stock is strictly below
// their threshold. The boundary matters: stock equal to the threshold is
// not flagged.
func LowStockProducts(products []models.Product) []models.Product {
	flagged := make([]models.Product, 0)
	for _, p := range products {
		threshold := DefaultLowStockThreshold
		if p.MinStockLevel != nil {
			threshold = *p.MinStockLevel
		}
		if p.Stock < threshold {
			flagged = append(flagged, p)
		}
	}
	return flagged
}

// BuildDailySummary computes the dashboard figures for ref's calendar day.
// Pure like BuildReport; the caller supplies the reference time.
func BuildDailySummary(snap models.Snapshot, ref time.Time) models.DashboardSummary {
	today := SalesOn(snap.Sales, ref)

	var revenue float64
	for _, sale := range today {
		revenue += sale.TotalAmount
	}

	avg := 0.0
	if len(today) > 0 {
		avg = revenue / float64(len(today))
	}

	lowStock := LowStockProducts(snap.Products)

	return models.DashboardSummary{
		SalesToday:        revenue,
		TransactionsToday: len(today),
		AverageSaleValue:  avg,
		TotalProducts:     len(snap.Products),
		LowStockCount:     len(lowStock),
		LowStockItems:     lowStock,
	}
}
