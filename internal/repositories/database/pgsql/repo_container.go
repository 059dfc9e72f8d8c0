package pgsql

import (
	portsrepo "github.com/alfahim/currency_display_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo: newPgxCurrencyRepository(dbPool),
		SettingsRepo: newPgxSettingsRepository(dbPool),
	}
}
