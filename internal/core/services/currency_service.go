package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alfahim/currency_display_app/internal/apperrors"
	"github.com/alfahim/currency_display_app/internal/core/domain"
	portsrepo "github.com/alfahim/currency_display_app/internal/core/ports/repositories"
	portssvc "github.com/alfahim/currency_display_app/internal/core/ports/services"
	"github.com/alfahim/currency_display_app/internal/dto"
	"github.com/alfahim/currency_display_app/internal/middleware"
)

type currencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates the currency configuration registry service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	existing, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check currency %s: %w", req.CurrencyCode, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("currency %s: %w", req.CurrencyCode, apperrors.ErrDuplicate)
	}

	now := time.Now()
	currency := domain.Currency{
		CurrencyCode: req.CurrencyCode,
		Symbol:       req.Symbol,
		Name:         req.Name,
		Decimals:     req.Decimals,
		Position:     domain.SymbolPosition(req.Position),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	return &currency, nil
}

func (s *currencyService) UpdateCurrency(ctx context.Context, currencyCode string, req dto.UpdateCurrencyRequest, updaterUserID string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load currency %s for update: %w", currencyCode, err)
	}

	if req.Symbol != nil {
		currency.Symbol = *req.Symbol
	}
	if req.Name != nil {
		currency.Name = *req.Name
	}
	if req.Decimals != nil {
		currency.Decimals = *req.Decimals
	}
	if req.Position != nil {
		pos := domain.SymbolPosition(*req.Position)
		if !pos.IsValid() {
			return nil, fmt.Errorf("invalid symbol position %q: %w", *req.Position, apperrors.ErrValidation)
		}
		currency.Position = pos
	}
	currency.LastUpdatedAt = time.Now()
	currency.LastUpdatedBy = updaterUserID

	if err := s.currencyRepo.SaveCurrency(ctx, *currency); err != nil {
		return nil, fmt.Errorf("failed to update currency %s: %w", currencyCode, err)
	}

	return currency, nil
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// ResolveConfig is the total lookup the formatter relies on: unknown or
// unreadable codes degrade to the default configuration instead of failing.
func (s *currencyService) ResolveConfig(ctx context.Context, currencyCode string) domain.Currency {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Warn("Currency lookup failed, using default config",
				slog.String("currency_code", currencyCode), slog.String("error", err.Error()))
		}
		return domain.DefaultCurrencyConfig(currencyCode)
	}
	return *currency
}
