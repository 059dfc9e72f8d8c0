package mapping

import (
	"github.com/alfahim/currency_display_app/internal/core/domain"
	"github.com/alfahim/currency_display_app/internal/models"
	"github.com/samber/lo"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyCode: d.CurrencyCode,
		Symbol:       d.Symbol,
		Name:         d.Name,
		Decimals:     d.Decimals,
		Position:     string(d.Position),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyCode: m.CurrencyCode,
		Symbol:       m.Symbol,
		Name:         m.Name,
		Decimals:     m.Decimals,
		Position:     domain.SymbolPosition(m.Position),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	return lo.Map(ms, func(m models.Currency, _ int) domain.Currency {
		return ToDomainCurrency(m)
	})
}
