package services

import (
	"context"

	"github.com/alfahim/currency_display_app/internal/core/domain"
	"github.com/alfahim/currency_display_app/internal/dto"
)

// CurrentCurrencyProvider is the read-only accessor to the globally selected
// display currency. The formatter depends on this capability alone, never on
// the full settings service.
type CurrentCurrencyProvider interface {
	// CurrentCurrency returns the selected code, or the configured default
	// when nothing has been selected. It never fails.
	CurrentCurrency(ctx context.Context) string
}

// SettingsReaderSvc defines read operations for display settings.
type SettingsReaderSvc interface {
	CurrentCurrencyProvider

	// GetDisplaySettings retrieves the stored settings with audit information.
	GetDisplaySettings(ctx context.Context) (*domain.DisplaySettings, error)
}

// SettingsWriterSvc defines write operations for display settings.
type SettingsWriterSvc interface {
	// UpdateCurrentCurrency selects the global display currency. The code must
	// be registered in the currency registry.
	UpdateCurrentCurrency(ctx context.Context, currencyCode string, updaterUserID string) (*domain.DisplaySettings, error)
}

// SettingsSvcFacade combines the settings service interfaces.
type SettingsSvcFacade interface {
	SettingsReaderSvc
	SettingsWriterSvc
}

// AmountFormatterSvc renders amounts as display strings. Format never returns
// an error: every failure degrades to a simpler strategy and the worst case is
// the raw "{amount} {code}" rendering.
type AmountFormatterSvc interface {
	Format(ctx context.Context, req dto.FormatRequest) domain.FormattedAmount
}
