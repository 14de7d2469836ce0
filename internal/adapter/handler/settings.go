package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	settingsDTO "github.com/johnquangdev/insight-stream/internal/adapter/dto/settings"
	settingsUsecase "github.com/johnquangdev/insight-stream/internal/usecase/settings"
)

// Settings handles runtime configuration requests
type Settings struct {
	settingsService settingsUsecase.Service
	logger          *zap.Logger
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService settingsUsecase.Service, logger *zap.Logger) *Settings {
	return &Settings{settingsService: settingsService, logger: logger}
}

// GetConfig handles GET /config
// @Summary      Runtime settings
// @Description  Available models, current defaults and whether provider keys are set
// @Tags         Config
// @Produce      json
// @Success      200  {object}  settings.View
// @Router       /config [get]
func (h *Settings) GetConfig(c echo.Context) error {
	return HandleSuccess(h.logger, c, h.settingsService.Get())
}

// UpdateConfig handles POST /config
// @Summary      Update runtime settings
// @Tags         Config
// @Accept       json
// @Produce      json
// @Param        request  body  settings.UpdateConfigRequest  true  "Settings to change"
// @Success      200  {object}  settings.View
// @Failure      400  {object}  map[string]interface{}  "Invalid settings"
// @Router       /config [post]
func (h *Settings) UpdateConfig(c echo.Context) error {
	var req settingsDTO.UpdateConfigRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	view, err := h.settingsService.Update(req.Patch())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, view)
}
