package dto

import "time"

// CreateTransactionRequest records a manual ledger entry
type CreateTransactionRequest struct {
	CommunityID *string    `json:"communityId" validate:"omitempty,uuid"`
	Type        string     `json:"type" validate:"required,transaction_type"`
	Amount      string     `json:"amount" validate:"required,decimal_amount"`
	Category    string     `json:"category" validate:"max=50"`
	Description string     `json:"description" validate:"max=2000"`
	Reference   string     `json:"reference" validate:"max=100"`
	OccurredAt  *time.Time `json:"occurredAt"`
}

type UpdateTransactionRequest struct {
	Type        *string    `json:"type" validate:"omitempty,transaction_type"`
	Amount      *string    `json:"amount" validate:"omitempty,decimal_amount"`
	Category    *string    `json:"category" validate:"omitempty,max=50"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	OccurredAt  *time.Time `json:"occurredAt"`
}
