package dto

import "time"

type CreateDonationRequest struct {
	CommunityID   string     `json:"communityId" validate:"required,uuid"`
	MemberID      *string    `json:"memberId" validate:"omitempty,uuid"`
	DonorName     string     `json:"donorName" validate:"required,min=1,max=200"`
	DonorEmail    string     `json:"donorEmail" validate:"omitempty,email"`
	Amount        string     `json:"amount" validate:"required,decimal_amount"`
	Purpose       string     `json:"purpose" validate:"omitempty,donation_purpose"`
	PaymentMethod string     `json:"paymentMethod" validate:"required,payment_method"`
	Notes         string     `json:"notes" validate:"max=2000"`
	DonatedAt     *time.Time `json:"donatedAt"`
}

// UpdateDonationRequest edits donation metadata. The amount is fixed once the
// receipt has been issued.
type UpdateDonationRequest struct {
	DonorName     *string `json:"donorName" validate:"omitempty,min=1,max=200"`
	DonorEmail    *string `json:"donorEmail" validate:"omitempty,email"`
	Purpose       *string `json:"purpose" validate:"omitempty,donation_purpose"`
	PaymentMethod *string `json:"paymentMethod" validate:"omitempty,payment_method"`
	Notes         *string `json:"notes" validate:"omitempty,max=2000"`
}
