package models

// Category is the row shape of the categories table.
type Category struct {
	CategoryID string `db:"category_id"`
	Name       string `db:"name"`
	NameAr     string `db:"name_ar"`
	SortOrder  int    `db:"sort_order"`
	AuditFields
}
