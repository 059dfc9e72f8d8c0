// Package seed applies the embedded currency catalogue at startup so the
// registry is never empty on a fresh database.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/alfahim/currency_display_app/internal/core/domain"
	portsrepo "github.com/alfahim/currency_display_app/internal/core/ports/repositories"
	"gopkg.in/yaml.v3"
)

//go:embed currencies.yaml
var currenciesYAML []byte

// seedUserID is recorded in the audit fields of seeded rows.
const seedUserID = "system"

type catalogue struct {
	Currencies []seedCurrency `yaml:"currencies"`
}

type seedCurrency struct {
	Code     string `yaml:"code"`
	Symbol   string `yaml:"symbol"`
	Name     string `yaml:"name"`
	Decimals int    `yaml:"decimals"`
	Position string `yaml:"position"`
}

// Load parses the embedded catalogue into domain currencies.
func Load() ([]domain.Currency, error) {
	var cat catalogue
	if err := yaml.Unmarshal(currenciesYAML, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse embedded currency catalogue: %w", err)
	}

	now := time.Now()
	currencies := make([]domain.Currency, 0, len(cat.Currencies))
	for _, c := range cat.Currencies {
		pos := domain.SymbolPosition(c.Position)
		if len(c.Code) != 3 || c.Symbol == "" || c.Decimals < 0 || !pos.IsValid() {
			return nil, fmt.Errorf("invalid catalogue entry %q", c.Code)
		}
		currencies = append(currencies, domain.Currency{
			CurrencyCode: c.Code,
			Symbol:       c.Symbol,
			Name:         c.Name,
			Decimals:     c.Decimals,
			Position:     pos,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     seedUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: seedUserID,
			},
		})
	}
	return currencies, nil
}

// Apply upserts the catalogue into the currency repository.
func Apply(ctx context.Context, repo portsrepo.CurrencyWriter, logger *slog.Logger) error {
	currencies, err := Load()
	if err != nil {
		return err
	}
	for _, currency := range currencies {
		if err := repo.SaveCurrency(ctx, currency); err != nil {
			return fmt.Errorf("failed to seed currency %s: %w", currency.CurrencyCode, err)
		}
	}
	logger.Info("Currency catalogue seeded", slog.Int("count", len(currencies)))
	return nil
}
