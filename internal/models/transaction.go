package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeIncome  = "Income"
	TransactionTypeExpense = "Expense"

	// MonthLayout renders the derived month filter value, e.g. "December 2023".
	MonthLayout = "January 2006"
)

// Transaction is a ledger entry. Amount is signed: expenses are negative.
type Transaction struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Type        string          `gorm:"type:varchar(20);not null;index" json:"type"`
	Category    string          `gorm:"type:varchar(50);not null;index" json:"category"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Description string          `gorm:"type:text" json:"description"`
	Method      string          `gorm:"type:varchar(50)" json:"method"`
}

func (t Transaction) EntityID() int64 { return t.ID }

func (t Transaction) WithEntityID(id int64) Transaction {
	t.ID = id
	return t
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

func (t Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

func (t Transaction) Month() string {
	return t.Date.Format(MonthLayout)
}

func (t Transaction) Year() string {
	return strconv.Itoa(t.Date.Year())
}

// SignedAmount converts a form amount (always positive) into the stored sign.
func SignedAmount(transactionType string, amount decimal.Decimal) decimal.Decimal {
	if transactionType == TransactionTypeExpense {
		return amount.Abs().Neg()
	}
	return amount.Abs()
}

// Validate checks a stored transaction.
func (t Transaction) Validate() error {
	verr := NewValidationError()
	if !IsValidTransactionType(t.Type) {
		verr.Add("type", "must be Income or Expense")
	}
	if strings.TrimSpace(t.Category) == "" {
		verr.Add("category", "is required")
	}
	if strings.TrimSpace(t.Description) == "" {
		verr.Add("description", "is required")
	}
	if t.Amount.IsZero() {
		verr.Add("amount", "must be greater than 0")
	}
	if t.Type == TransactionTypeExpense && t.Amount.IsPositive() {
		verr.Add("amount", "must be negative for an expense")
	}
	if t.Type == TransactionTypeIncome && t.Amount.IsNegative() {
		verr.Add("amount", "must be positive for income")
	}
	if t.Date.IsZero() {
		verr.Add("date", "is required")
	}
	return verr.OrNil()
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// TransactionCategories are the categories offered by the add transaction form.
var TransactionCategories = []string{
	"Tithes & Offerings",
	"Donations",
	"Special Events",
	"Utilities",
	"Maintenance",
	"Staff Salaries",
	"Ministry Programs",
	"Missions",
}

// PaymentMethods are the methods offered by the add transaction form.
var PaymentMethods = []string{
	"Cash",
	"Check",
	"Credit Card",
	"Bank Transfer",
	"Online",
	"Mixed",
}
