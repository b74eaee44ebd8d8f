package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
	AuthUserExists             ErrorCode = "AUTH_006"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidID     ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Financial summary error codes (SUMMARY_*)
const (
	SummaryRetrievalFailed   ErrorCode = "SUMMARY_001"
	SummaryComputationFailed ErrorCode = "SUMMARY_002"
)

// Resource error codes
const (
	CommunityNotFound      ErrorCode = "COMMUNITY_001"
	CommunityAlreadyExists ErrorCode = "COMMUNITY_002"

	MemberNotFound      ErrorCode = "MEMBER_001"
	MemberAlreadyExists ErrorCode = "MEMBER_002"

	ApplicationNotFound        ErrorCode = "APPLICATION_001"
	ApplicationAlreadyReviewed ErrorCode = "APPLICATION_002"

	DonationNotFound ErrorCode = "DONATION_001"

	ExpenseNotFound ErrorCode = "EXPENSE_001"

	VolunteerNotFound ErrorCode = "VOLUNTEER_001"

	PujaNotFound         ErrorCode = "PUJA_001"
	PujaScheduleConflict ErrorCode = "PUJA_002"
	PujaInvalidState     ErrorCode = "PUJA_003"

	TemplateNotFound        ErrorCode = "TEMPLATE_001"
	TemplateAlreadyExists   ErrorCode = "TEMPLATE_002"
	TemplateMissingVariable ErrorCode = "TEMPLATE_003"

	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionReadOnly      ErrorCode = "TRANSACTION_002"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_003"

	UserNotFound ErrorCode = "USER_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
	SystemRouteNotFound      ErrorCode = "SYSTEM_006"
)

var errorMessages = map[ErrorCode]string{
	AuthInvalidCredentials:     "Invalid email or password",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",
	AuthUserExists:             "A user with this email already exists",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidID:     "Invalid resource ID format",
	ValidationInvalidDate:   "Invalid date format or range",

	SummaryRetrievalFailed:   "Failed to fetch financial summary",
	SummaryComputationFailed: "Failed to compute financial summary",

	CommunityNotFound:      "Community not found",
	CommunityAlreadyExists: "A community with this name already exists",

	MemberNotFound:      "Member not found",
	MemberAlreadyExists: "A member with this email already exists in the community",

	ApplicationNotFound:        "Application not found",
	ApplicationAlreadyReviewed: "Application has already been reviewed",

	DonationNotFound: "Donation not found",

	ExpenseNotFound: "Expense not found",

	VolunteerNotFound: "Volunteer not found",

	PujaNotFound:         "Puja not found",
	PujaScheduleConflict: "Another puja is already scheduled at this location and time",
	PujaInvalidState:     "Puja cannot be changed in its current state",

	TemplateNotFound:        "Communication template not found",
	TemplateAlreadyExists:   "A template with this name already exists",
	TemplateMissingVariable: "Template variables are missing",

	TransactionNotFound:      "Transaction not found",
	TransactionReadOnly:      "Transaction is managed by its donation or expense",
	TransactionInvalidAmount: "Invalid transaction amount",

	UserNotFound: "User not found",

	SystemInternalError:      "An unexpected error occurred",
	SystemDatabaseError:      "Database error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Route not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
