package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/alfahim/currency_display_app/internal/apperrors"
	portssvc "github.com/alfahim/currency_display_app/internal/core/ports/services"
	"github.com/alfahim/currency_display_app/internal/dto"
	"github.com/alfahim/currency_display_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// displayHandler handles HTTP requests for amount formatting and the global
// display currency selection.
type displayHandler struct {
	formatterService portssvc.AmountFormatterSvc
	settingsService  portssvc.SettingsSvcFacade
}

// newDisplayHandler creates a new displayHandler.
func newDisplayHandler(fs portssvc.AmountFormatterSvc, ss portssvc.SettingsSvcFacade) *displayHandler {
	return &displayHandler{
		formatterService: fs,
		settingsService:  ss,
	}
}

// registerDisplayRoutes registers the display formatting and settings routes.
func registerDisplayRoutes(rg *gin.RouterGroup, formatterService portssvc.AmountFormatterSvc, settingsService portssvc.SettingsSvcFacade, rateLimit gin.HandlerFunc) {
	h := newDisplayHandler(formatterService, settingsService)

	display := rg.Group("/display", rateLimit)
	{
		display.GET("/format", h.formatAmount)
		display.GET("/currency", h.getDisplayCurrency)
		display.PUT("/currency", h.updateDisplayCurrency)
	}
}

// formatAmount godoc
// @Summary Format an amount for display
// @Description Renders the amount as a localized currency string. Formatting failures degrade through simpler strategies; the endpoint always returns a rendered text.
// @Tags display
// @Produce  json
// @Param   amount query number true "Amount to format"
// @Param   currency query string false "Explicit currency code override (3 letters)"
// @Param   locale query string false "BCP 47 locale tag (default from server config)"
// @Param   symbolOnly query boolean false "Render with zero fraction digits"
// @Param   fallback query boolean false "Attempt fallback strategies on failure (default true)"
// @Param   useGlobalCurrency query boolean false "Resolve the currency from the global selection when no override is given (default true)"
// @Success 200 {object} dto.FormattedAmountResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /display/format [get]
func (h *displayHandler) formatAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.FormatQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for FormatAmount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	formatted := h.formatterService.Format(c.Request.Context(), query.ToFormatRequest())

	c.JSON(http.StatusOK, dto.ToFormattedAmountResponse(formatted))
}

// getDisplayCurrency godoc
// @Summary Get the global display currency
// @Description Retrieves the currently selected display currency
// @Tags display
// @Produce  json
// @Success 200 {object} dto.DisplaySettingsResponse
// @Failure 500 {object} map[string]string "Failed to read display settings"
// @Router /display/currency [get]
func (h *displayHandler) getDisplayCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.settingsService.GetDisplaySettings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get display settings from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read display settings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDisplaySettingsResponse(settings))
}

// updateDisplayCurrency godoc
// @Summary Select the global display currency
// @Description Updates the globally selected display currency. The code must be registered.
// @Tags display
// @Accept  json
// @Produce  json
// @Param   selection body dto.UpdateDisplayCurrencyRequest true "Currency selection"
// @Success 200 {object} dto.DisplaySettingsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Currency not registered"
// @Failure 500 {object} map[string]string "Failed to update display settings"
// @Router /display/currency [put]
func (h *displayHandler) updateDisplayCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateDisplayCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDisplayCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("currency_code", req.CurrencyCode))
	logger.Info("Received request to update display currency")

	settings, err := h.settingsService.UpdateCurrentCurrency(c.Request.Context(), req.CurrencyCode, req.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Selected currency is not registered")
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not registered"})
		} else {
			logger.Error("Failed to update display settings", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update display settings"})
		}
		return
	}

	logger.Info("Display currency updated successfully")
	c.JSON(http.StatusOK, dto.ToDisplaySettingsResponse(settings))
}
