package models

// IncomeStatement summarises revenue, cost, and profit for all recorded
// activity. ProfitMargin is a percentage of revenue.
type IncomeStatement struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalCost     float64 `json:"total_cost"`
	GrossProfit   float64 `json:"gross_profit"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`
	ProfitMargin  float64 `json:"profit_margin"`
}

// BalanceSheet summarises asset and inventory positions.
// CurrentLiabilities is modeled as cumulative expenses; there is no real
// liabilities ledger behind it, so treat the liquidity figures as
// approximations.
type BalanceSheet struct {
	TotalAssetsValue      float64 `json:"total_assets_value"`
	TotalInventoryValue   float64 `json:"total_inventory_value"`
	CurrentAssets         float64 `json:"current_assets"`
	CurrentLiabilities    float64 `json:"current_liabilities"`
	CurrentRatio          float64 `json:"current_ratio"`
	AssetDepreciation     float64 `json:"asset_depreciation"`
	AssetDepreciationRate float64 `json:"asset_depreciation_rate"`
}

// PerformanceMetrics holds activity and efficiency figures.
// OperatingIncome collapses to the same value as NetProfit under this model
// (there are no non-operating income or tax lines); both are reported.
type PerformanceMetrics struct {
	TransactionCount        int     `json:"transaction_count"`
	AverageTransactionValue float64 `json:"average_transaction_value"`
	InventoryTurnover       float64 `json:"inventory_turnover"`
	ReturnOnAssets          float64 `json:"return_on_assets"`
	GrossProfitMargin       float64 `json:"gross_profit_margin"`
	OperatingIncome         float64 `json:"operating_income"`
	OperatingMargin         float64 `json:"operating_margin"`
}

// FinancialRatios holds the ratio view of the report. Every ratio resolves
// to 0 when its denominator is not positive.
type FinancialRatios struct {
	CurrentRatio  float64 `json:"current_ratio"`
	QuickRatio    float64 `json:"quick_ratio"`
	ProfitMargin  float64 `json:"profit_margin"`
	COGSRatio     float64 `json:"cogs_ratio"`
	ExpenseRatio  float64 `json:"expense_ratio"`
	AssetTurnover float64 `json:"asset_turnover"`
}

// FinancialReport is the complete derived report. It is recomputed on
// demand from a Snapshot and never persisted.
type FinancialReport struct {
	Income      IncomeStatement    `json:"income_statement"`
	Balance     BalanceSheet       `json:"balance_sheet"`
	Performance PerformanceMetrics `json:"performance"`
	Ratios      FinancialRatios    `json:"ratios"`
}

// DashboardSummary holds the today-scoped figures shown on the dashboard.
type DashboardSummary struct {
	SalesToday        float64   `json:"sales_today"`
	TransactionsToday int       `json:"transactions_today"`
	AverageSaleValue  float64   `json:"average_sale_value"`
	TotalProducts     int       `json:"total_products"`
	LowStockCount     int       `json:"low_stock_count"`
	LowStockItems     []Product `json:"low_stock_items"`
}
