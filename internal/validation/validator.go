package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"churchconnect/internal/models"
)

// Validator wraps the go-playground validator with the dashboard's custom rules
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

	_ = v.RegisterValidation("calendar_date", validateCalendarDate)
	_ = v.RegisterValidation("calendar_month", validateCalendarMonth)
	_ = v.RegisterValidation("transaction_amount", validateTransactionAmount)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("member_status", validateMemberStatus)
	_ = v.RegisterValidation("event_status", validateEventStatus)
	_ = v.RegisterValidation("attendee_status", validateAttendeeStatus)
	_ = v.RegisterValidation("theme", validateTheme)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and converts rule failures into a *models.ValidationError
// keyed by JSON field name.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := models.NewValidationError()
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), describe(fe))
	}
	return verr.OrNil()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gte":
		return "must be at least " + fe.Param()
	case "calendar_date":
		return "must be a date formatted YYYY-MM-DD"
	case "calendar_month":
		return "must be a month formatted YYYY-MM"
	case "transaction_amount":
		return "must be positive with at most two decimal places"
	case "transaction_type":
		return "must be Income or Expense"
	case "member_status":
		return "must be Active or Inactive"
	case "event_status":
		return "must be Open, Completed or Cancelled"
	case "attendee_status":
		return "must be confirmed, pending or waitlist"
	case "theme":
		return "must be light or dark"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// Custom validation functions

func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.DateLayout, fl.Field().String())
	return err == nil
}

func validateCalendarMonth(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01", fl.Field().String())
	return err == nil
}

// validateTransactionAmount validates that a transaction amount is positive and has at most 2 decimal places
func validateTransactionAmount(fl validator.FieldLevel) bool {
	amount := fl.Field().Float()

	if amount <= 0 {
		return false
	}

	amountStr := fmt.Sprintf("%.10f", amount)
	parts := strings.Split(amountStr, ".")
	if len(parts) > 1 {
		decimals := strings.TrimRight(parts[1], "0")
		if len(decimals) > 2 {
			return false
		}
	}

	return true
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

func validateMemberStatus(fl validator.FieldLevel) bool {
	return models.IsValidMemberStatus(fl.Field().String())
}

func validateEventStatus(fl validator.FieldLevel) bool {
	return models.IsValidEventStatus(fl.Field().String())
}

func validateAttendeeStatus(fl validator.FieldLevel) bool {
	return models.IsValidAttendeeStatus(fl.Field().String())
}

func validateTheme(fl validator.FieldLevel) bool {
	theme := fl.Field().String()
	return theme == models.ThemeLight || theme == models.ThemeDark
}
