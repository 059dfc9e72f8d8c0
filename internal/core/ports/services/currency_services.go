package services

import (
	"context"

	"github.com/alfahim/currency_display_app/internal/core/domain"
	"github.com/alfahim/currency_display_app/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency configuration data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency configuration by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all registered currency configurations.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyResolverSvc is the total-lookup view of the registry consumed by the
// formatter: it never fails, unknown codes degrade to a default configuration.
type CurrencyResolverSvc interface {
	ResolveConfig(ctx context.Context, currencyCode string) domain.Currency
}

// CurrencyWriterSvc defines write operations for currency configuration data
type CurrencyWriterSvc interface {
	// CreateCurrency registers a new currency configuration.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error)

	// UpdateCurrency adjusts symbol, name, decimals or position of an existing configuration.
	UpdateCurrency(ctx context.Context, currencyCode string, req dto.UpdateCurrencyRequest, updaterUserID string) (*domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyResolverSvc
	CurrencyWriterSvc
}
