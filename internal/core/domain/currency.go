package domain

// SymbolPosition says on which side of the formatted number a currency symbol is placed.
type SymbolPosition string

const (
	SymbolBefore SymbolPosition = "before"
	SymbolAfter  SymbolPosition = "after"
)

// IsValid reports whether p is one of the two supported placements.
func (p SymbolPosition) IsValid() bool {
	return p == SymbolBefore || p == SymbolAfter
}

// Currency is the display configuration for a single currency code.
type Currency struct {
	CurrencyCode string         `json:"currencyCode"` // Primary Key (e.g., "SAR")
	Symbol       string         `json:"symbol"`       // e.g., "﷼"
	Name         string         `json:"name"`         // e.g., "Saudi Riyal"
	Decimals     int            `json:"decimals"`     // fraction digits shown, >= 0
	Position     SymbolPosition `json:"position"`
	AuditFields
}

// DefaultCurrencyConfig returns the configuration used when a code has no
// registered entry. The registry lookup is total: callers always get a
// composable configuration back.
func DefaultCurrencyConfig(code string) Currency {
	return Currency{
		CurrencyCode: code,
		Symbol:       code,
		Name:         code,
		Decimals:     2,
		Position:     SymbolAfter,
	}
}
