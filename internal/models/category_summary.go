package models

// CategorySummary contains aggregated transaction data by category and type
type CategorySummary struct {
	Category         string  `json:"category"`
	Type             string  `json:"type"`
	TransactionCount int     `json:"transactionCount"`
	TotalAmount      float64 `json:"totalAmount"`
}
