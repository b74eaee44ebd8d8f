package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DonationPurposeGeneral      = "general"
	DonationPurposePuja         = "puja"
	DonationPurposeBuildingFund = "building_fund"
	DonationPurposeAnnadanam    = "annadanam"
	DonationPurposeFestival     = "festival"

	PaymentMethodCash         = "cash"
	PaymentMethodCard         = "card"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodUPI          = "upi"
	PaymentMethodCheque       = "cheque"
)

var DonationPurposes = []string{
	DonationPurposeGeneral,
	DonationPurposePuja,
	DonationPurposeBuildingFund,
	DonationPurposeAnnadanam,
	DonationPurposeFestival,
}

type Donation struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CommunityID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"communityId"`
	MemberID      *uuid.UUID      `gorm:"type:uuid;index" json:"memberId,omitempty"`
	DonorName     string          `gorm:"type:varchar(200);not null" json:"donorName"`
	DonorEmail    string          `gorm:"type:varchar(255)" json:"donorEmail,omitempty"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Purpose       string          `gorm:"type:varchar(30);not null;default:'general'" json:"purpose"`
	PaymentMethod string          `gorm:"type:varchar(30);not null" json:"paymentMethod"`
	ReceiptNumber string          `gorm:"type:varchar(40);uniqueIndex;not null" json:"receiptNumber"`
	Notes         string          `gorm:"type:text" json:"notes,omitempty"`
	DonatedAt     time.Time       `gorm:"not null;index" json:"donatedAt"`
	TransactionID *uuid.UUID      `gorm:"type:uuid" json:"transactionId,omitempty"`
	CreatedAt     time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updatedAt"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (d *Donation) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.Purpose == "" {
		d.Purpose = DonationPurposeGeneral
	}
	if d.DonatedAt.IsZero() {
		d.DonatedAt = time.Now().UTC()
	}
	if d.ReceiptNumber == "" {
		d.ReceiptNumber = GenerateReceiptNumber(d.DonatedAt)
	}
	return d.Validate()
}

func (d *Donation) BeforeUpdate(tx *gorm.DB) error {
	return d.Validate()
}

func (d *Donation) Validate() error {
	if d.CommunityID == uuid.Nil {
		return errors.New("community ID is required")
	}
	if strings.TrimSpace(d.DonorName) == "" {
		return errors.New("donor name is required")
	}
	if !d.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !IsValidDonationPurpose(d.Purpose) {
		return fmt.Errorf("invalid donation purpose: %s", d.Purpose)
	}
	if !IsValidPaymentMethod(d.PaymentMethod) {
		return fmt.Errorf("invalid payment method: %s", d.PaymentMethod)
	}
	return nil
}

// LedgerEntry builds the income transaction that mirrors the donation.
func (d *Donation) LedgerEntry() *Transaction {
	communityID := d.CommunityID
	donationID := d.ID
	return &Transaction{
		ID:          uuid.New(),
		CommunityID: &communityID,
		Type:        TransactionTypeIncome,
		Amount:      d.Amount.StringFixed(MaxAmountScale),
		Category:    "donation:" + d.Purpose,
		Description: fmt.Sprintf("Donation %s from %s", d.ReceiptNumber, d.DonorName),
		Reference:   d.ReceiptNumber,
		Source:      TransactionSourceDonation,
		SourceID:    &donationID,
		OccurredAt:  d.DonatedAt,
	}
}

func (d *Donation) TableName() string {
	return "donations"
}

func IsValidDonationPurpose(purpose string) bool {
	for _, p := range DonationPurposes {
		if p == purpose {
			return true
		}
	}
	return false
}

func IsValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodBankTransfer, PaymentMethodUPI, PaymentMethodCheque:
		return true
	default:
		return false
	}
}

// GenerateReceiptNumber returns a receipt number of the form DON-YYYYMMDD-XXXXXX.
func GenerateReceiptNumber(at time.Time) string {
	return "DON-" + at.UTC().Format("20060102") + "-" + strings.ToUpper(uuid.New().String()[:6])
}
