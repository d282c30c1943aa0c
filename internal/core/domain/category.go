package domain

// Category groups menu items; categories are listed by Order ascending.
type Category struct {
	CategoryID string `json:"id"`
	Name       string `json:"name"`
	NameAr     string `json:"nameAr"`
	Order      int    `json:"order"`
	AuditFields
}
