package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	date := time.Date(2023, time.December, 22, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		transaction Transaction
		wantField   string
	}{
		{
			name: "valid income",
			transaction: Transaction{
				Type:        TransactionTypeIncome,
				Category:    "Donations",
				Amount:      decimal.NewFromInt(1200),
				Date:        date,
				Description: "Building Fund Donation",
			},
		},
		{
			name: "valid expense",
			transaction: Transaction{
				Type:        TransactionTypeExpense,
				Category:    "Utilities",
				Amount:      decimal.NewFromInt(-320),
				Date:        date,
				Description: "Electric Bill - December",
			},
		},
		{
			name: "zero amount",
			transaction: Transaction{
				Type:        TransactionTypeIncome,
				Category:    "Donations",
				Amount:      decimal.Zero,
				Date:        date,
				Description: "Nothing",
			},
			wantField: "amount",
		},
		{
			name: "positive expense",
			transaction: Transaction{
				Type:        TransactionTypeExpense,
				Category:    "Utilities",
				Amount:      decimal.NewFromInt(320),
				Date:        date,
				Description: "Electric Bill",
			},
			wantField: "amount",
		},
		{
			name: "invalid type",
			transaction: Transaction{
				Type:        "Transfer",
				Category:    "Utilities",
				Amount:      decimal.NewFromInt(10),
				Date:        date,
				Description: "Electric Bill",
			},
			wantField: "type",
		},
		{
			name: "missing description",
			transaction: Transaction{
				Type:     TransactionTypeIncome,
				Category: "Donations",
				Amount:   decimal.NewFromInt(10),
				Date:     date,
			},
			wantField: "description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.wantField)
		})
	}
}

func TestSignedAmount(t *testing.T) {
	assert.True(t, decimal.NewFromInt(-50).Equal(SignedAmount(TransactionTypeExpense, decimal.NewFromInt(50))))
	assert.True(t, decimal.NewFromInt(50).Equal(SignedAmount(TransactionTypeIncome, decimal.NewFromInt(50))))
	assert.True(t, decimal.NewFromInt(50).Equal(SignedAmount(TransactionTypeIncome, decimal.NewFromInt(-50))))
}

func TestTransaction_DerivedMonthAndYear(t *testing.T) {
	tx := Transaction{Date: time.Date(2023, time.December, 22, 0, 0, 0, 0, time.UTC)}

	assert.Equal(t, "December 2023", tx.Month())
	assert.Equal(t, "2023", tx.Year())
}
