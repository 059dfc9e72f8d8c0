package dto

import (
	"time"

	"github.com/alfahim/currency_display_app/internal/core/domain"
	"github.com/samber/lo"
)

// CreateCurrencyRequest defines the data needed to register a new currency configuration.
type CreateCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,uppercase,len=3"`
	Symbol       string `json:"symbol" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Decimals     int    `json:"decimals" binding:"min=0,max=18"`
	Position     string `json:"position" binding:"required,symbolposition"`
	UserID       string `json:"userID" binding:"required"`
}

// UpdateCurrencyRequest defines the adjustable fields of an existing configuration.
// Nil fields are left unchanged.
type UpdateCurrencyRequest struct {
	Symbol   *string `json:"symbol,omitempty"`
	Name     *string `json:"name,omitempty"`
	Decimals *int    `json:"decimals,omitempty" binding:"omitempty,min=0,max=18"`
	Position *string `json:"position,omitempty" binding:"omitempty,symbolposition"`
	UserID   string  `json:"userID" binding:"required"`
}

// CurrencyResponse defines the data returned for a currency configuration.
type CurrencyResponse struct {
	CurrencyCode  string    `json:"currencyCode"`
	Symbol        string    `json:"symbol"`
	Name          string    `json:"name"`
	Decimals      int       `json:"decimals"`
	Position      string    `json:"position"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode:  curr.CurrencyCode,
		Symbol:        curr.Symbol,
		Name:          curr.Name,
		Decimals:      curr.Decimals,
		Position:      string(curr.Position),
		CreatedAt:     curr.CreatedAt,
		CreatedBy:     curr.CreatedBy,
		LastUpdatedAt: curr.LastUpdatedAt,
		LastUpdatedBy: curr.LastUpdatedBy,
	}
}

// ToListCurrencyResponse converts a slice of domain Currencies to response DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	return lo.Map(currencies, func(curr domain.Currency, _ int) CurrencyResponse {
		return ToCurrencyResponse(&curr)
	})
}
