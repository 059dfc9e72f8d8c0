package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/alfahim/currency_display_app/internal/apperrors"
	"github.com/alfahim/currency_display_app/internal/core/domain"
	portsrepo "github.com/alfahim/currency_display_app/internal/core/ports/repositories"
	portssvc "github.com/alfahim/currency_display_app/internal/core/ports/services"
	"github.com/alfahim/currency_display_app/internal/middleware"
)

type settingsService struct {
	settingsRepo    portsrepo.SettingsRepositoryFacade
	currencySvc     portssvc.CurrencyReaderSvc
	defaultCurrency string

	mu     sync.RWMutex
	cached string // last known selection, "" until first read
}

// NewSettingsService creates the display settings service. defaultCurrency is
// returned whenever no selection has been stored yet.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade, currencySvc portssvc.CurrencyReaderSvc, defaultCurrency string) portssvc.SettingsSvcFacade {
	return &settingsService{
		settingsRepo:    settingsRepo,
		currencySvc:     currencySvc,
		defaultCurrency: defaultCurrency,
	}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// CurrentCurrency returns the globally selected display currency. It never
// fails: repository errors and the not-yet-selected case both fall back to the
// configured default.
func (s *settingsService) CurrentCurrency(ctx context.Context) string {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()
	if cached != "" {
		return cached
	}

	settings, err := s.settingsRepo.GetDisplaySettings(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Warn("Failed to read display settings, using default currency",
				slog.String("default_currency", s.defaultCurrency), slog.String("error", err.Error()))
		}
		return s.defaultCurrency
	}

	s.mu.Lock()
	s.cached = settings.CurrentCurrency
	s.mu.Unlock()
	return settings.CurrentCurrency
}

func (s *settingsService) GetDisplaySettings(ctx context.Context) (*domain.DisplaySettings, error) {
	settings, err := s.settingsRepo.GetDisplaySettings(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Nothing selected yet: expose the default without audit fields.
			return &domain.DisplaySettings{CurrentCurrency: s.defaultCurrency}, nil
		}
		return nil, fmt.Errorf("failed to get display settings in service: %w", err)
	}
	return settings, nil
}

func (s *settingsService) UpdateCurrentCurrency(ctx context.Context, currencyCode string, updaterUserID string) (*domain.DisplaySettings, error) {
	// The selection must reference a registered currency configuration.
	if _, err := s.currencySvc.GetCurrencyByCode(ctx, currencyCode); err != nil {
		return nil, fmt.Errorf("cannot select currency %s: %w", currencyCode, err)
	}

	now := time.Now()
	settings := domain.DisplaySettings{
		CurrentCurrency: currencyCode,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     updaterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: updaterUserID,
		},
	}

	if err := s.settingsRepo.SaveDisplaySettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save display settings: %w", err)
	}

	s.mu.Lock()
	s.cached = currencyCode
	s.mu.Unlock()

	return &settings, nil
}
