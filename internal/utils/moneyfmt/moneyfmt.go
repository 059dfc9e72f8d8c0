// Package moneyfmt holds the low-level formatting primitives used by the
// display formatter: CLDR-backed symbol formatting, locale-aware number
// rendering and the plain fixed-decimal fallbacks.
package moneyfmt

import (
	"fmt"
	"math"

	"github.com/alfahim/currency_display_app/internal/apperrors"
	"github.com/alfahim/currency_display_app/internal/core/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// IsFinite reports whether amount is representable as a decimal number.
// NaN and the infinities must never reach the decimal-based tiers.
func IsFinite(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0)
}

// FormatAmount renders amount with its localized currency symbol and the
// currency's standard fraction digits, e.g. "$12.35" for USD under "en".
// It fails for codes that are not valid ISO 4217 currencies.
func FormatAmount(amount float64, code string, tag language.Tag) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: unsupported currency %q: %v", apperrors.ErrFormatFailed, code, err)
	}
	p := message.NewPrinter(tag)
	return p.Sprint(currency.Symbol(unit.Amount(amount))), nil
}

// FormatAmountSymbol is the symbol-only variant: the localized symbol plus the
// amount rounded to zero fraction digits.
func FormatAmountSymbol(amount float64, code string, tag language.Tag) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: unsupported currency %q: %v", apperrors.ErrFormatFailed, code, err)
	}
	p := message.NewPrinter(tag)
	return p.Sprintf("%v %v", currency.Symbol(unit), number.Decimal(amount,
		number.MaxFractionDigits(0))), nil
}

// LocalizedNumber renders amount with locale-aware grouping and exactly the
// given number of fraction digits.
func LocalizedNumber(amount float64, digits int, tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(amount,
		number.MinFractionDigits(digits),
		number.MaxFractionDigits(digits)))
}

// PlainNumber renders amount as a fixed-decimal string without any locale
// machinery. The amount must be finite.
func PlainNumber(amount float64, digits int) string {
	return decimal.NewFromFloat(amount).StringFixed(int32(digits))
}

// Compose places the currency symbol on the configured side of the number.
func Compose(symbol, num string, pos domain.SymbolPosition) string {
	return lo.Ternary(pos == domain.SymbolBefore, symbol+" "+num, num+" "+symbol)
}

// Raw is the terminal rendering: the unmodified amount and currency code,
// space joined. It accepts any float64, including NaN and the infinities.
func Raw(amount float64, code string) string {
	return fmt.Sprintf("%v %s", amount, code)
}
