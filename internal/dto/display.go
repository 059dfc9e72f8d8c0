package dto

import (
	"time"

	"github.com/alfahim/currency_display_app/internal/core/domain"
)

// FormatQuery is the query-string shape of a formatting request. Optional
// booleans are pointers so their defaults survive binding.
type FormatQuery struct {
	Amount            *float64 `form:"amount" binding:"required"`
	Currency          string   `form:"currency" binding:"omitempty,uppercase,len=3"`
	Locale            string   `form:"locale"`
	ShowSymbolOnly    bool     `form:"symbolOnly"`
	FallbackFormat    *bool    `form:"fallback"`          // default true
	UseGlobalCurrency *bool    `form:"useGlobalCurrency"` // default true
}

// ToFormatRequest applies the documented defaults and produces the service request.
func (q FormatQuery) ToFormatRequest() FormatRequest {
	req := FormatRequest{
		Amount:            *q.Amount,
		Currency:          q.Currency,
		Locale:            q.Locale,
		ShowSymbolOnly:    q.ShowSymbolOnly,
		FallbackFormat:    true,
		UseGlobalCurrency: true,
	}
	if q.FallbackFormat != nil {
		req.FallbackFormat = *q.FallbackFormat
	}
	if q.UseGlobalCurrency != nil {
		req.UseGlobalCurrency = *q.UseGlobalCurrency
	}
	return req
}

// FormatRequest is what the formatter service consumes.
type FormatRequest struct {
	Amount            float64
	Currency          string // optional explicit override
	Locale            string // optional BCP 47 tag, e.g. "en", "ar-SA"
	ShowSymbolOnly    bool
	FallbackFormat    bool
	UseGlobalCurrency bool
}

// FormattedAmountResponse is the rendered display text plus the tier and
// effective currency that produced it.
type FormattedAmountResponse struct {
	Text     string `json:"text"`
	Currency string `json:"currency"`
	Tier     string `json:"tier"`
}

// ToFormattedAmountResponse converts a domain.FormattedAmount to its DTO.
func ToFormattedAmountResponse(fa domain.FormattedAmount) FormattedAmountResponse {
	return FormattedAmountResponse{
		Text:     fa.Text,
		Currency: fa.Currency,
		Tier:     string(fa.Tier),
	}
}

// UpdateDisplayCurrencyRequest selects the global display currency.
type UpdateDisplayCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,uppercase,len=3"`
	UserID       string `json:"userID" binding:"required"`
}

// DisplaySettingsResponse defines the data returned for the display settings.
type DisplaySettingsResponse struct {
	CurrentCurrency string    `json:"currentCurrency"`
	LastUpdatedAt   time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy   string    `json:"lastUpdatedBy"`
}

// ToDisplaySettingsResponse converts domain.DisplaySettings to its DTO.
func ToDisplaySettingsResponse(s *domain.DisplaySettings) DisplaySettingsResponse {
	return DisplaySettingsResponse{
		CurrentCurrency: s.CurrentCurrency,
		LastUpdatedAt:   s.LastUpdatedAt,
		LastUpdatedBy:   s.LastUpdatedBy,
	}
}
