package models

// DisplaySettings represents the single row of the display_settings table.
type DisplaySettings struct {
	CurrentCurrency string `json:"currentCurrency"`
	AuditFields
}
