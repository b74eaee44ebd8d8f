package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type amountRequest struct {
	Amount string `json:"amount" validate:"required,decimal_amount"`
	Type   string `json:"type" validate:"required,transaction_type"`
}

func TestDecimalAmount(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		amount string
		valid  bool
	}{
		{"500", true},
		{"200.25", true},
		{"0.01", true},
		{"abc", false},
		{"-10", false},
		{"0", false},
		{"10.001", false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			err := v.Struct(amountRequest{Amount: tt.amount, Type: "income"})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFieldNamesUseJSONTags(t *testing.T) {
	err := NewValidator().Struct(amountRequest{Amount: "12", Type: "transfer"})
	require.Error(t, err)

	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	require.Len(t, validationErrors, 1)
	assert.Equal(t, "type", validationErrors[0].Field())
	assert.Equal(t, "transaction_type", validationErrors[0].Tag())
}

func TestDomainTags(t *testing.T) {
	type request struct {
		Status   string `json:"status" validate:"omitempty,puja_status"`
		Channel  string `json:"channel" validate:"omitempty,template_channel"`
		Purpose  string `json:"purpose" validate:"omitempty,donation_purpose"`
		Method   string `json:"method" validate:"omitempty,payment_method"`
		Category string `json:"category" validate:"omitempty,expense_category"`
		Role     string `json:"role" validate:"omitempty,member_role"`
		State    string `json:"state" validate:"omitempty,record_status"`
		UserRole string `json:"userRole" validate:"omitempty,user_role"`
	}
	v := GetValidator()

	assert.NoError(t, v.Struct(request{
		Status: "scheduled", Channel: "sms", Purpose: "festival", Method: "upi",
		Category: "utilities", Role: "priest", State: "inactive", UserRole: "staff",
	}))
	assert.NoError(t, v.Struct(request{}))

	assert.Error(t, v.Struct(request{Status: "postponed"}))
	assert.Error(t, v.Struct(request{Channel: "fax"}))
	assert.Error(t, v.Struct(request{Purpose: "lottery"}))
	assert.Error(t, v.Struct(request{Method: "barter"}))
	assert.Error(t, v.Struct(request{Category: "travel"}))
	assert.Error(t, v.Struct(request{Role: "king"}))
	assert.Error(t, v.Struct(request{State: "deleted"}))
	assert.Error(t, v.Struct(request{UserRole: "customer"}))
	assert.Same(t, v, GetValidator())
}
