// Package finance derives reporting figures from snapshots of the record
// collections. Everything here is a pure reduction: no state, no I/O, and
// no error paths. Degenerate input (zero or negative denominators) resolves
// ratios and percentages to 0, so the output is always finite.
package finance

import "kcpos/models"

// Totals holds the per-category sums that every composite metric is
// derived from.
type Totals struct {
	Revenue             float64
	Cost                float64
	Expenses            float64
	AssetsValue         float64
	AssetsPurchaseValue float64
	InventoryValue      float64
	TransactionCount    int
}

// SumTotals folds each collection into its category total. Results are
// order-independent sums; the input is never mutated.
func SumTotals(snap models.Snapshot) Totals {
	var t Totals
	for _, sale := range snap.Sales {
		t.Revenue += sale.TotalAmount
	}
	t.TransactionCount = len(snap.Sales)
	for _, purchase := range snap.Purchases {
		t.Cost += purchase.TotalCost
	}
	for _, expense := range snap.Expenses {
		t.Expenses += expense.Amount
	}
	for _, asset := range snap.Assets {
		t.AssetsValue += asset.CurrentValue
		t.AssetsPurchaseValue += asset.PurchaseValue
	}
	for _, product := range snap.Products {
		t.InventoryValue += product.Price * float64(product.Stock)
	}
	return t
}

// percentOf returns part/whole as a percentage, or 0 when whole is not
// positive.
func percentOf(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}

// ratioOf returns num/den, or 0 when den is not positive.
func ratioOf(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

// BuildReport computes the full financial report from a snapshot.
// Idempotent: the same snapshot always yields the same report.
func BuildReport(snap models.Snapshot) models.FinancialReport {
	t := SumTotals(snap)

	grossProfit := t.Revenue - t.Cost
	netProfit := grossProfit - t.Expenses
	// Same formula as netProfit; kept as a separate line item because the
	// model has no non-operating income or tax lines to split them.
	operatingIncome := grossProfit - t.Expenses

	depreciation := t.AssetsPurchaseValue - t.AssetsValue
	currentAssets := t.AssetsValue + t.InventoryValue
	// Approximation: cumulative expenses stand in for a liabilities ledger.
	currentLiabilities := t.Expenses

	avgTransaction := 0.0
	if t.TransactionCount > 0 {
		avgTransaction = t.Revenue / float64(t.TransactionCount)
	}

	return models.FinancialReport{
		Income: models.IncomeStatement{
			TotalRevenue:  t.Revenue,
			TotalCost:     t.Cost,
			GrossProfit:   grossProfit,
			TotalExpenses: t.Expenses,
			NetProfit:     netProfit,
			ProfitMargin:  percentOf(netProfit, t.Revenue),
		},
		Balance: models.BalanceSheet{
			TotalAssetsValue:      t.AssetsValue,
			TotalInventoryValue:   t.InventoryValue,
			CurrentAssets:         currentAssets,
			CurrentLiabilities:    currentLiabilities,
			CurrentRatio:          ratioOf(currentAssets, currentLiabilities),
			AssetDepreciation:     depreciation,
			AssetDepreciationRate: percentOf(depreciation, t.AssetsPurchaseValue),
		},
		Performance: models.PerformanceMetrics{
			TransactionCount:        t.TransactionCount,
			AverageTransactionValue: avgTransaction,
			InventoryTurnover:       ratioOf(t.Cost, t.InventoryValue),
			ReturnOnAssets:          percentOf(netProfit, t.AssetsValue),
			GrossProfitMargin:       percentOf(grossProfit, t.Revenue),
			OperatingIncome:         operatingIncome,
			OperatingMargin:         percentOf(operatingIncome, t.Revenue),
		},
		Ratios: models.FinancialRatios{
			CurrentRatio:  ratioOf(currentAssets, currentLiabilities),
			QuickRatio:    ratioOf(currentAssets-t.InventoryValue, currentLiabilities),
			ProfitMargin:  percentOf(netProfit, t.Revenue),
			COGSRatio:     percentOf(t.Cost, t.Revenue),
			ExpenseRatio:  percentOf(t.Expenses, t.Revenue),
			AssetTurnover: ratioOf(t.Revenue, t.AssetsValue),
		},
	}
}
