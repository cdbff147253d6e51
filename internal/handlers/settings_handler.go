package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"churchconnect/internal/dto"
	"churchconnect/internal/errors"
	"churchconnect/internal/services"
)

// SettingsHandler serves the dashboard settings
type SettingsHandler struct {
	settings services.SettingsServiceInterface
}

func NewSettingsHandler(settings services.SettingsServiceInterface) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetSettings returns the current settings
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: h.settings.Get()})
}

// UpdateSettings applies the fields present in the body. The change is
// auto-saved once edits pause; screens mounted afterwards see the new theme.
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var patch dto.SettingsPatch
	if err := c.Bind(&patch); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&patch); err != nil {
		return SendScreenError(c, err)
	}

	updated, err := h.settings.Update(c.Request().Context(), patch.Apply)
	if err != nil {
		return SendScreenError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: updated, Message: "Settings updated"})
}
