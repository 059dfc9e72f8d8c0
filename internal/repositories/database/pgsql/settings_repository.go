package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/alfahim/currency_display_app/internal/apperrors"
	"github.com/alfahim/currency_display_app/internal/core/domain"
	portsrepo "github.com/alfahim/currency_display_app/internal/core/ports/repositories"
	"github.com/alfahim/currency_display_app/internal/models"
	"github.com/alfahim/currency_display_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates a new repository for the display settings row.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

// GetDisplaySettings retrieves the single display settings row.
func (r *PgxSettingsRepository) GetDisplaySettings(ctx context.Context) (*domain.DisplaySettings, error) {
	query := `
		SELECT current_currency, created_at, created_by, last_updated_at, last_updated_by
		FROM display_settings
		WHERE id = 1;
	`
	var modelSettings models.DisplaySettings
	err := r.Pool.QueryRow(ctx, query).Scan(
		&modelSettings.CurrentCurrency,
		&modelSettings.CreatedAt,
		&modelSettings.CreatedBy,
		&modelSettings.LastUpdatedAt,
		&modelSettings.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read display settings: %w", err)
	}

	domainSettings := mapping.ToDomainDisplaySettings(modelSettings)
	return &domainSettings, nil
}

// SaveDisplaySettings inserts or updates the single display settings row.
func (r *PgxSettingsRepository) SaveDisplaySettings(ctx context.Context, settings domain.DisplaySettings) error {
	modelSettings := mapping.ToModelDisplaySettings(settings)

	query := `
		INSERT INTO display_settings (id, current_currency, created_at, created_by, last_updated_at, last_updated_by)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			current_currency = EXCLUDED.current_currency,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.Pool.Exec(ctx, query,
		modelSettings.CurrentCurrency,
		modelSettings.CreatedAt,
		modelSettings.CreatedBy,
		modelSettings.LastUpdatedAt,
		modelSettings.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save display settings: %w", err)
	}
	return nil
}
