package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/alfahim/currency_display_app/internal/core/domain"
	portssvc "github.com/alfahim/currency_display_app/internal/core/ports/services"
	"github.com/alfahim/currency_display_app/internal/dto"
	"github.com/alfahim/currency_display_app/internal/middleware"
	"github.com/alfahim/currency_display_app/internal/utils/moneyfmt"
	"github.com/samber/lo"
	"golang.org/x/text/language"
)

type formatterService struct {
	registry        portssvc.CurrencyResolverSvc
	current         portssvc.CurrentCurrencyProvider
	defaultCurrency string
	defaultLocale   string
}

// NewFormatterService creates the amount formatter. registry must be a total
// lookup (ResolveConfig never fails) and current is the read-only accessor to
// the globally selected display currency.
func NewFormatterService(registry portssvc.CurrencyResolverSvc, current portssvc.CurrentCurrencyProvider, defaultCurrency, defaultLocale string) portssvc.AmountFormatterSvc {
	return &formatterService{
		registry:        registry,
		current:         current,
		defaultCurrency: defaultCurrency,
		defaultLocale:   defaultLocale,
	}
}

var _ portssvc.AmountFormatterSvc = (*formatterService)(nil)

// formatAttempt is one strategy in the ordered fallback chain. run returns the
// display text or an explicit failure; failures move the chain to the next tier.
type formatAttempt struct {
	tier domain.FormatTier
	run  func() (string, error)
}

// Format renders the amount for the resolved effective currency. It walks the
// tier chain until a strategy succeeds and never returns an error: the
// terminal rendering is the raw "{amount} {code}" string.
func (s *formatterService) Format(ctx context.Context, req dto.FormatRequest) domain.FormattedAmount {
	logger := middleware.GetLoggerFromCtx(ctx)
	code := s.effectiveCurrency(ctx, req)

	// NaN and the infinities cannot flow through the numeric tiers; render the
	// raw terminal string immediately.
	if !moneyfmt.IsFinite(req.Amount) {
		logger.Warn("Non-finite amount, rendering raw",
			slog.Float64("amount", req.Amount), slog.String("currency", code))
		return domain.FormattedAmount{Text: moneyfmt.Raw(req.Amount, code), Currency: code, Tier: domain.TierRaw}
	}

	locale := req.Locale
	if locale == "" {
		locale = s.defaultLocale
	}
	tag, tagErr := language.Parse(locale)

	// Lazy config lookup: the primary tier must not pay for a registry read.
	var config *domain.Currency
	resolveConfig := func() domain.Currency {
		if config == nil {
			c := s.registry.ResolveConfig(ctx, code)
			config = &c
		}
		return *config
	}

	attempts := []formatAttempt{
		{
			tier: domain.TierPrimary,
			run: func() (string, error) {
				if tagErr != nil {
					return "", tagErr
				}
				if req.ShowSymbolOnly {
					return moneyfmt.FormatAmountSymbol(req.Amount, code, tag)
				}
				return moneyfmt.FormatAmount(req.Amount, code, tag)
			},
		},
		{
			tier: domain.TierLocalized,
			run: func() (string, error) {
				if tagErr != nil {
					return "", tagErr
				}
				cfg := resolveConfig()
				digits := lo.Ternary(req.ShowSymbolOnly, 0, cfg.Decimals)
				return moneyfmt.Compose(cfg.Symbol, moneyfmt.LocalizedNumber(req.Amount, digits, tag), cfg.Position), nil
			},
		},
		{
			tier: domain.TierPlain,
			run: func() (string, error) {
				cfg := resolveConfig()
				digits := lo.Ternary(req.ShowSymbolOnly, 0, cfg.Decimals)
				return moneyfmt.Compose(cfg.Symbol, moneyfmt.PlainNumber(req.Amount, digits), cfg.Position), nil
			},
		},
	}
	if !req.FallbackFormat {
		// Only the primary strategy is attempted; its failure goes straight to raw.
		attempts = attempts[:1]
	}

	for _, attempt := range attempts {
		text, err := attempt.run()
		if err == nil {
			return domain.FormattedAmount{Text: text, Currency: code, Tier: attempt.tier}
		}
		logger.Warn("Formatting tier failed",
			slog.String("tier", string(attempt.tier)),
			slog.String("currency", code),
			slog.Float64("amount", req.Amount),
			slog.String("error", err.Error()),
		)
	}

	return domain.FormattedAmount{Text: moneyfmt.Raw(req.Amount, code), Currency: code, Tier: domain.TierRaw}
}

// effectiveCurrency resolves the code to format with: the explicit override
// always wins, then the global selection when requested, then the default.
func (s *formatterService) effectiveCurrency(ctx context.Context, req dto.FormatRequest) string {
	code := strings.ToUpper(strings.TrimSpace(req.Currency))
	if code != "" {
		return code
	}
	if req.UseGlobalCurrency {
		if current := s.current.CurrentCurrency(ctx); current != "" {
			return current
		}
	}
	return s.defaultCurrency
}
