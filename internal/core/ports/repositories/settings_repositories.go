package repositories

import (
	"context"

	"github.com/alfahim/currency_display_app/internal/core/domain"
)

// SettingsReader defines read operations for the display settings row.
type SettingsReader interface {
	// GetDisplaySettings retrieves the stored settings, or ErrNotFound when
	// nothing has been selected yet.
	GetDisplaySettings(ctx context.Context) (*domain.DisplaySettings, error)
}

// SettingsWriter defines write operations for the display settings row.
type SettingsWriter interface {
	// SaveDisplaySettings persists the settings (insert or update of the single row).
	SaveDisplaySettings(ctx context.Context, settings domain.DisplaySettings) error
}

// SettingsRepositoryFacade combines the settings repository interfaces.
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}

// RepositoryProvider bundles the repositories handed to the service layer.
type RepositoryProvider struct {
	CurrencyRepo CurrencyRepositoryFacade
	SettingsRepo SettingsRepositoryFacade
}
