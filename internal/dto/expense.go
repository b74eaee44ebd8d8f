package dto

import "time"

type CreateExpenseRequest struct {
	CommunityID string     `json:"communityId" validate:"required,uuid"`
	Category    string     `json:"category" validate:"omitempty,expense_category"`
	Vendor      string     `json:"vendor" validate:"max=200"`
	Description string     `json:"description" validate:"required,min=1,max=2000"`
	Amount      string     `json:"amount" validate:"required,decimal_amount"`
	IncurredAt  *time.Time `json:"incurredAt"`
}

type UpdateExpenseRequest struct {
	Category    *string    `json:"category" validate:"omitempty,expense_category"`
	Vendor      *string    `json:"vendor" validate:"omitempty,max=200"`
	Description *string    `json:"description" validate:"omitempty,min=1,max=2000"`
	Amount      *string    `json:"amount" validate:"omitempty,decimal_amount"`
	IncurredAt  *time.Time `json:"incurredAt"`
}
