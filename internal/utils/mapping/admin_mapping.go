package mapping

import (
	"github.com/lavaresto/menu_backend/internal/core/domain"
	"github.com/lavaresto/menu_backend/internal/models"
)

// ToModelAdmin converts a domain Admin to a model Admin
func ToModelAdmin(d domain.Admin) models.Admin {
	return models.Admin{
		AdminID:     d.AdminID,
		Username:    d.Username,
		Password:    d.Password,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAdmin converts a model Admin to a domain Admin
func ToDomainAdmin(m models.Admin) domain.Admin {
	return domain.Admin{
		AdminID:     m.AdminID,
		Username:    m.Username,
		Password:    m.Password,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
