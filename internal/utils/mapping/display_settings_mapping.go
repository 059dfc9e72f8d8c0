package mapping

import (
	"github.com/alfahim/currency_display_app/internal/core/domain"
	"github.com/alfahim/currency_display_app/internal/models"
)

// ToModelDisplaySettings converts domain display settings to their model counterpart.
func ToModelDisplaySettings(d domain.DisplaySettings) models.DisplaySettings {
	return models.DisplaySettings{
		CurrentCurrency: d.CurrentCurrency,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDisplaySettings converts model display settings to their domain counterpart.
func ToDomainDisplaySettings(m models.DisplaySettings) domain.DisplaySettings {
	return domain.DisplaySettings{
		CurrentCurrency: m.CurrentCurrency,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
