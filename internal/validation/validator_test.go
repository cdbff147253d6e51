package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churchconnect/internal/models"
)

type form struct {
	Name   string  `json:"name" validate:"required"`
	Email  string  `json:"email" validate:"omitempty,email"`
	Date   string  `json:"date" validate:"omitempty,calendar_date"`
	Month  string  `json:"month" validate:"omitempty,calendar_month"`
	Amount float64 `json:"amount" validate:"omitempty,transaction_amount"`
	Type   string  `json:"type" validate:"omitempty,transaction_type"`
	Status string  `json:"status" validate:"omitempty,member_status"`
	Theme  string  `json:"theme" validate:"omitempty,theme"`
}

// TestStruct_Valid tests that a fully valid form passes
func TestStruct_Valid(t *testing.T) {
	err := GetValidator().Struct(form{
		Name:   "John Smith",
		Email:  "john.smith@email.com",
		Date:   "2024-01-15",
		Month:  "2024-01",
		Amount: 150.25,
		Type:   models.TransactionTypeIncome,
		Status: "Active",
		Theme:  models.ThemeDark,
	})
	assert.NoError(t, err)
}

// TestStruct_FieldErrors tests that failures are keyed by JSON field name
func TestStruct_FieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   form
		field   string
		message string
	}{
		{"missing name", form{}, "name", "is required"},
		{"bad email", form{Name: "a", Email: "nope"}, "email", "must be a valid email address"},
		{"bad date", form{Name: "a", Date: "15/01/2024"}, "date", "must be a date formatted YYYY-MM-DD"},
		{"bad month", form{Name: "a", Month: "2024-13"}, "month", "must be a month formatted YYYY-MM"},
		{"negative amount", form{Name: "a", Amount: -5}, "amount", "must be positive with at most two decimal places"},
		{"too many decimals", form{Name: "a", Amount: 1.005}, "amount", "must be positive with at most two decimal places"},
		{"bad type", form{Name: "a", Type: "Transfer"}, "type", "must be Income or Expense"},
		{"bad status", form{Name: "a", Status: "Lapsed"}, "status", "must be Active or Inactive"},
		{"bad theme", form{Name: "a", Theme: "blue"}, "theme", "must be light or dark"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GetValidator().Struct(tt.input)
			require.Error(t, err)

			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields[tt.field], tt.message)
		})
	}
}

// TestGetValidator_Shared tests that the package validator is built once
func TestGetValidator_Shared(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
	assert.NotNil(t, GetValidator().GetValidate())
}
