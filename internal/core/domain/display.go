package domain

// DisplaySettings holds the globally selected display currency. A single row
// owned by the settings service; the formatter only ever reads it.
type DisplaySettings struct {
	CurrentCurrency string `json:"currentCurrency"`
	AuditFields
}

// FormatTier names the strategy that produced a formatted amount. The tiers
// form an ordered chain; each is tried only after the previous one failed.
type FormatTier string

const (
	// TierPrimary is the CLDR-backed formatter (localized symbol and digits).
	TierPrimary FormatTier = "primary"
	// TierLocalized is the locale-aware number formatter combined with the
	// registered currency configuration.
	TierLocalized FormatTier = "localized"
	// TierPlain is fixed-decimal composing without locale machinery.
	TierPlain FormatTier = "plain"
	// TierRaw is the terminal "{amount} {code}" rendering. It cannot fail.
	TierRaw FormatTier = "raw"
)

// FormattedAmount is the outcome of a display formatting request.
type FormattedAmount struct {
	Text     string     `json:"text"`
	Currency string     `json:"currency"` // effective currency code used
	Tier     FormatTier `json:"tier"`
}
