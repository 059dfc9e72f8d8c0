package repositories

import (
	"context"

	"github.com/alfahim/currency_display_app/internal/core/domain"
)

// CurrencyReader defines read operations for currency configuration data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency configuration by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all registered currency configurations.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency configuration data
type CurrencyWriter interface {
	// SaveCurrency persists a currency configuration (insert or update).
	SaveCurrency(ctx context.Context, currency domain.Currency) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
