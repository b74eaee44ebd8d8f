package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{name: "Auth Invalid Credentials", code: AuthInvalidCredentials, expected: "Invalid email or password"},
		{name: "Validation General", code: ValidationGeneral, expected: "Validation failed"},
		{name: "Summary Retrieval", code: SummaryRetrievalFailed, expected: "Failed to fetch financial summary"},
		{name: "Puja Conflict", code: PujaScheduleConflict, expected: "Another puja is already scheduled at this location and time"},
		{name: "System Internal Error", code: SystemInternalError, expected: "An unexpected error occurred"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_UnknownCode() {
	s.Equal("An error occurred", GetErrorMessage(ErrorCode("NOPE_999")))
	s.False(IsValidErrorCode(ErrorCode("NOPE_999")))
}

func (s *CodesTestSuite) TestEveryCodeHasAMessage() {
	codes := []ErrorCode{
		AuthInvalidCredentials, AuthMissingToken, AuthExpiredToken, AuthInvalidTokenFormat,
		AuthInsufficientPermission, AuthUserExists,
		ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat, ValidationInvalidID, ValidationInvalidDate,
		SummaryRetrievalFailed, SummaryComputationFailed,
		CommunityNotFound, CommunityAlreadyExists, MemberNotFound, MemberAlreadyExists,
		ApplicationNotFound, ApplicationAlreadyReviewed, DonationNotFound, ExpenseNotFound,
		VolunteerNotFound, PujaNotFound, PujaScheduleConflict, PujaInvalidState,
		TemplateNotFound, TemplateAlreadyExists, TemplateMissingVariable,
		TransactionNotFound, TransactionReadOnly, TransactionInvalidAmount, UserNotFound,
		SystemInternalError, SystemDatabaseError, SystemServiceUnavailable, SystemUnexpectedError,
		SystemRateLimitExceeded, SystemRouteNotFound,
	}

	for _, code := range codes {
		s.True(IsValidErrorCode(code), "missing message for %s", code)
	}
}

func (s *CodesTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{TransactionInvalidAmount, http.StatusBadRequest},
		{AuthMissingToken, http.StatusUnauthorized},
		{AuthInsufficientPermission, http.StatusForbidden},
		{MemberNotFound, http.StatusNotFound},
		{PujaScheduleConflict, http.StatusConflict},
		{ApplicationAlreadyReviewed, http.StatusConflict},
		{TemplateMissingVariable, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SummaryRetrievalFailed, http.StatusInternalServerError},
		{SummaryComputationFailed, http.StatusInternalServerError},
		{ErrorCode("UNKNOWN"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}
