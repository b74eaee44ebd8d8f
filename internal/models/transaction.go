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
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"

	TransactionSourceManual   = "manual"
	TransactionSourceDonation = "donation"
	TransactionSourceExpense  = "expense"

	// MaxAmountScale is the number of fractional digits an amount may carry.
	MaxAmountScale = 2
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("amount must be a positive number with at most two decimal places")
)

// Transaction is a ledger row. Amount is kept as numeric text because the
// hosted store also receives rows written directly by other clients.
type Transaction struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CommunityID *uuid.UUID     `gorm:"type:uuid;index" json:"communityId,omitempty"`
	Type        string         `gorm:"type:varchar(20);not null;index" json:"type"`
	Amount      string         `gorm:"type:text;not null" json:"amount"`
	Category    string         `gorm:"type:varchar(50)" json:"category,omitempty"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Reference   string         `gorm:"type:varchar(100);index" json:"reference"`
	Source      string         `gorm:"type:varchar(20);not null;default:'manual'" json:"source"`
	SourceID    *uuid.UUID     `gorm:"type:uuid;index" json:"sourceId,omitempty"`
	OccurredAt  time.Time      `gorm:"not null;index" json:"occurredAt"`
	CreatedAt   time.Time      `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Source == "" {
		t.Source = TransactionSourceManual
	}
	if t.Reference == "" {
		t.Reference = GenerateTransactionReference()
	}
	if t.OccurredAt.IsZero() {
		t.OccurredAt = time.Now().UTC()
	}
	return t.Validate()
}

func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	return t.Validate()
}

func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	amount, err := ParseAmount(t.Amount)
	if err != nil {
		return err
	}
	t.Amount = amount.StringFixed(MaxAmountScale)

	if len(t.Category) > 50 {
		return errors.New("category code too long")
	}

	switch t.Source {
	case TransactionSourceManual, TransactionSourceDonation, TransactionSourceExpense:
	default:
		return fmt.Errorf("invalid transaction source: %s", t.Source)
	}

	return nil
}

// IsManual reports whether the row was entered directly rather than derived
// from a donation or expense.
func (t *Transaction) IsManual() bool {
	return t.Source == TransactionSourceManual
}

func (t *Transaction) TableName() string {
	return "transactions"
}

// TransactionAmount is the {type, amount} projection the financial summary reads.
type TransactionAmount struct {
	ID       uuid.UUID `json:"id"`
	Type     string    `json:"type"`
	Amount   string    `json:"amount"`
	Category string    `json:"category"`
}

func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// ParseAmount parses a positive money amount with at most two decimal places.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	if -amount.Exponent() > MaxAmountScale && !amount.Equal(amount.Truncate(MaxAmountScale)) {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

// GenerateTransactionReference generates a unique transaction reference
func GenerateTransactionReference() string {
	return "TXN-" + time.Now().UTC().Format("20060102") + "-" + strings.ToUpper(uuid.New().String()[:8])
}
