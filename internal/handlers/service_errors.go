package handlers

import (
	stderrors "errors"
	"strings"

	"temple-admin/internal/errors"
	"temple-admin/internal/models"
	"temple-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// sentinelCodes maps service sentinels to API error codes
var sentinelCodes = []struct {
	err  error
	code errors.ErrorCode
}{
	{services.ErrCommunityNotFound, errors.CommunityNotFound},
	{services.ErrCommunityAlreadyExists, errors.CommunityAlreadyExists},
	{services.ErrMemberNotFound, errors.MemberNotFound},
	{services.ErrMemberAlreadyExists, errors.MemberAlreadyExists},
	{services.ErrApplicationNotFound, errors.ApplicationNotFound},
	{services.ErrApplicationReviewed, errors.ApplicationAlreadyReviewed},
	{services.ErrDonationNotFound, errors.DonationNotFound},
	{services.ErrExpenseNotFound, errors.ExpenseNotFound},
	{services.ErrVolunteerNotFound, errors.VolunteerNotFound},
	{services.ErrPujaNotFound, errors.PujaNotFound},
	{services.ErrPujaClosed, errors.PujaInvalidState},
	{services.ErrScheduleConflict, errors.PujaScheduleConflict},
	{services.ErrTemplateNotFound, errors.TemplateNotFound},
	{services.ErrTemplateAlreadyExists, errors.TemplateAlreadyExists},
	{services.ErrTransactionNotFound, errors.TransactionNotFound},
	{services.ErrTransactionReadOnly, errors.TransactionReadOnly},
	{services.ErrInvalidAmount, errors.TransactionInvalidAmount},
	{services.ErrUserNotFound, errors.UserNotFound},
	{services.ErrUserAlreadyExists, errors.AuthUserExists},
	{services.ErrInvalidCredentials, errors.AuthInvalidCredentials},
}

// sendServiceError writes the envelope for an error returned by a service
func sendServiceError(c echo.Context, err error) error {
	if stderrors.Is(err, services.ErrInvalidInput) {
		detail := strings.TrimPrefix(err.Error(), services.ErrInvalidInput.Error()+": ")
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(detail))
	}

	var missing *models.MissingVariablesError
	if stderrors.As(err, &missing) {
		return SendError(c, errors.TemplateMissingVariable, errors.WithDetails(missing.Names...))
	}

	for _, s := range sentinelCodes {
		if stderrors.Is(err, s.err) {
			if s.err == services.ErrScheduleConflict {
				return SendError(c, s.code, errors.WithDetails(err.Error()))
			}
			return SendError(c, s.code)
		}
	}

	return SendSystemError(c, errors.SystemInternalError, err)
}
