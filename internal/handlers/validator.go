package handlers

import (
	"github.com/labstack/echo/v4"

	"churchconnect/internal/validation"
)

// CustomValidator implements echo.Validator with the dashboard rules. Failures
// come back as *models.ValidationError.
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator creates a new custom validator
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
