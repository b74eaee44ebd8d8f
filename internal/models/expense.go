package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ExpenseCategoryUtilities    = "utilities"
	ExpenseCategoryMaintenance  = "maintenance"
	ExpenseCategoryPujaSupplies = "puja_supplies"
	ExpenseCategorySalaries     = "salaries"
	ExpenseCategoryEvents       = "events"
	ExpenseCategoryOther        = "other"
)

type Expense struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CommunityID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"communityId"`
	Category      string          `gorm:"type:varchar(30);not null;default:'other'" json:"category"`
	Vendor        string          `gorm:"type:varchar(200)" json:"vendor,omitempty"`
	Description   string          `gorm:"type:text;not null" json:"description"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	IncurredAt    time.Time       `gorm:"not null;index" json:"incurredAt"`
	ApprovedBy    *uuid.UUID      `gorm:"type:uuid" json:"approvedBy,omitempty"`
	TransactionID *uuid.UUID      `gorm:"type:uuid" json:"transactionId,omitempty"`
	CreatedAt     time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updatedAt"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Category == "" {
		e.Category = ExpenseCategoryOther
	}
	if e.IncurredAt.IsZero() {
		e.IncurredAt = time.Now().UTC()
	}
	return e.Validate()
}

func (e *Expense) BeforeUpdate(tx *gorm.DB) error {
	return e.Validate()
}

func (e *Expense) Validate() error {
	if e.CommunityID == uuid.Nil {
		return errors.New("community ID is required")
	}
	if e.Description == "" {
		return errors.New("expense description is required")
	}
	if !e.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !IsValidExpenseCategory(e.Category) {
		return fmt.Errorf("invalid expense category: %s", e.Category)
	}
	return nil
}

// LedgerEntry builds the expense transaction that mirrors the expense.
func (e *Expense) LedgerEntry() *Transaction {
	communityID := e.CommunityID
	expenseID := e.ID
	return &Transaction{
		ID:          uuid.New(),
		CommunityID: &communityID,
		Type:        TransactionTypeExpense,
		Amount:      e.Amount.StringFixed(MaxAmountScale),
		Category:    "expense:" + e.Category,
		Description: e.Description,
		Source:      TransactionSourceExpense,
		SourceID:    &expenseID,
		OccurredAt:  e.IncurredAt,
	}
}

func (e *Expense) TableName() string {
	return "expenses"
}

func IsValidExpenseCategory(category string) bool {
	switch category {
	case ExpenseCategoryUtilities, ExpenseCategoryMaintenance, ExpenseCategoryPujaSupplies,
		ExpenseCategorySalaries, ExpenseCategoryEvents, ExpenseCategoryOther:
		return true
	default:
		return false
	}
}
