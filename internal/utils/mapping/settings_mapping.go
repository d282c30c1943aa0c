package mapping

import (
	"github.com/lavaresto/menu_backend/internal/core/domain"
	"github.com/lavaresto/menu_backend/internal/models"
)

// SettingsRowID is the primary key of the singleton settings row.
const SettingsRowID = 1

// ToModelSettings converts domain Settings to the singleton settings row
func ToModelSettings(d domain.Settings) models.Settings {
	return models.Settings{
		SettingsID:     SettingsRowID,
		RestaurantName: d.RestaurantName,
		CurrencySymbol: d.CurrencySymbol,
		LBPRate:        d.LBPRate,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSettings converts the settings row to domain Settings
func ToDomainSettings(m models.Settings) domain.Settings {
	return domain.Settings{
		RestaurantName: m.RestaurantName,
		CurrencySymbol: m.CurrencySymbol,
		LBPRate:        m.LBPRate,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
