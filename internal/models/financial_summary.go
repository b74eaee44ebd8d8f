package models

// FinancialSummary is the aggregate over one read of the ledger.
type FinancialSummary struct {
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpenses    float64 `json:"totalExpenses"`
	NetAmount        float64 `json:"netAmount"`
	TransactionCount int     `json:"transactionCount"`
}
