package mapping

import (
	"github.com/lavaresto/menu_backend/internal/core/domain"
	"github.com/lavaresto/menu_backend/internal/models"
)

// ToModelMenuItem converts a domain MenuItem to a model MenuItem
func ToModelMenuItem(d domain.MenuItem) models.MenuItem {
	return models.MenuItem{
		ItemID:        d.ItemID,
		CategoryID:    d.CategoryID,
		Name:          d.Name,
		NameAr:        d.NameAr,
		Description:   d.Description,
		DescriptionAr: d.DescriptionAr,
		Price:         d.Price,
		PriceCurrency: string(d.PriceCurrency),
		ImageURL:      d.ImageURL,
		IsAvailable:   d.IsAvailable,
		SortOrder:     d.Order,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMenuItem converts a model MenuItem to a domain MenuItem
func ToDomainMenuItem(m models.MenuItem) domain.MenuItem {
	return domain.MenuItem{
		ItemID:        m.ItemID,
		CategoryID:    m.CategoryID,
		Name:          m.Name,
		NameAr:        m.NameAr,
		Description:   m.Description,
		DescriptionAr: m.DescriptionAr,
		Price:         m.Price,
		PriceCurrency: domain.Currency(m.PriceCurrency),
		ImageURL:      m.ImageURL,
		IsAvailable:   m.IsAvailable,
		Order:         m.SortOrder,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMenuItemSlice converts a slice of model MenuItems to domain MenuItems
func ToDomainMenuItemSlice(ms []models.MenuItem) []domain.MenuItem {
	ds := make([]domain.MenuItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMenuItem(m)
	}
	return ds
}
