package services

import (
	"errors"
	"fmt"

	"temple-admin/internal/models"
	"temple-admin/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	ErrCommunityNotFound      = repositories.ErrCommunityNotFound
	ErrCommunityAlreadyExists = repositories.ErrCommunityAlreadyExists
	ErrMemberNotFound         = repositories.ErrMemberNotFound
	ErrMemberAlreadyExists    = repositories.ErrMemberAlreadyExists
	ErrApplicationNotFound    = repositories.ErrApplicationNotFound
	ErrApplicationReviewed    = models.ErrApplicationReviewed
	ErrDonationNotFound       = repositories.ErrDonationNotFound
	ErrExpenseNotFound        = repositories.ErrExpenseNotFound
	ErrVolunteerNotFound      = repositories.ErrVolunteerNotFound
	ErrPujaNotFound           = repositories.ErrPujaNotFound
	ErrPujaClosed             = models.ErrPujaClosed
	ErrScheduleConflict       = errors.New("puja overlaps another scheduled puja at the same location")
	ErrTemplateNotFound       = repositories.ErrTemplateNotFound
	ErrTemplateAlreadyExists  = repositories.ErrTemplateAlreadyExists
	ErrTransactionNotFound    = repositories.ErrTransactionNotFound
	ErrTransactionReadOnly    = errors.New("transaction is managed by its donation or expense")
	ErrInvalidAmount          = models.ErrInvalidAmount
	ErrUserNotFound           = repositories.ErrUserNotFound

	// ErrSummaryRetrieval wraps data store failures while reading the ledger
	ErrSummaryRetrieval = errors.New("failed to retrieve transactions")
	// ErrMalformedAmount is returned when a stored amount is not a number
	ErrMalformedAmount = errors.New("transaction amount is not a number")
)

// MalformedAmountError names the ledger row whose amount could not be parsed
type MalformedAmountError struct {
	TransactionID uuid.UUID
	Amount        string
}

func (e *MalformedAmountError) Error() string {
	return fmt.Sprintf("transaction %s has malformed amount %q", e.TransactionID, e.Amount)
}

func (e *MalformedAmountError) Unwrap() error {
	return ErrMalformedAmount
}

func invalidInput(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

func parseOptionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, invalidInput(err)
	}
	return &id, nil
}
