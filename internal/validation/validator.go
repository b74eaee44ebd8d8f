package validation

import (
	"reflect"
	"strings"
	"sync"

	"temple-admin/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("puja_status", validatePujaStatus)
	_ = v.RegisterValidation("template_channel", validateTemplateChannel)
	_ = v.RegisterValidation("donation_purpose", validateDonationPurpose)
	_ = v.RegisterValidation("payment_method", validatePaymentMethod)
	_ = v.RegisterValidation("expense_category", validateExpenseCategory)
	_ = v.RegisterValidation("member_role", validateMemberRole)
	_ = v.RegisterValidation("record_status", validateRecordStatus)
	_ = v.RegisterValidation("user_role", validateUserRole)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using the registered rules
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateDecimalAmount accepts numeric text that is positive with at most two
// decimal places. Non-numeric amounts never reach the ledger.
func validateDecimalAmount(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, err := models.ParseAmount(fl.Field().String())
	return err == nil
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

func validatePujaStatus(fl validator.FieldLevel) bool {
	return models.IsValidPujaStatus(fl.Field().String())
}

func validateTemplateChannel(fl validator.FieldLevel) bool {
	return models.IsValidChannel(fl.Field().String())
}

func validateDonationPurpose(fl validator.FieldLevel) bool {
	return models.IsValidDonationPurpose(fl.Field().String())
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	return models.IsValidPaymentMethod(fl.Field().String())
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return models.IsValidExpenseCategory(fl.Field().String())
}

func validateMemberRole(fl validator.FieldLevel) bool {
	return models.IsValidMemberRole(fl.Field().String())
}

func validateRecordStatus(fl validator.FieldLevel) bool {
	return models.IsValidStatus(fl.Field().String())
}

func validateUserRole(fl validator.FieldLevel) bool {
	return models.IsValidRole(fl.Field().String())
}
