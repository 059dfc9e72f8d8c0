package models

// Currency represents a row of the currencies table.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "SAR")
	Symbol       string `json:"symbol"`       // e.g., "﷼"
	Name         string `json:"name"`         // e.g., "Saudi Riyal"
	Decimals     int    `json:"decimals"`     // fraction digits shown
	Position     string `json:"position"`     // "before" | "after"
	AuditFields
}
