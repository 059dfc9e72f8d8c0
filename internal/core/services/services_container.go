package services

import (
	portsrepo "github.com/alfahim/currency_display_app/internal/core/ports/repositories"
	portssvc "github.com/alfahim/currency_display_app/internal/core/ports/services"
	"github.com/alfahim/currency_display_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The registry first: settings validation and the formatter both depend on it.
	container.Currency = NewCurrencyService(repos.CurrencyRepo)

	container.Settings = NewSettingsService(repos.SettingsRepo, container.Currency, cfg.DefaultCurrency)

	// The formatter only receives the capabilities it needs: the total config
	// lookup and the read-only current-currency accessor.
	container.Formatter = NewFormatterService(container.Currency, container.Settings, cfg.DefaultCurrency, cfg.DefaultLocale)

	return container
}
