package models

// Admin is the row shape of the admins table.
type Admin struct {
	AdminID  string `db:"admin_id"`
	Username string `db:"username"`
	Password string `db:"password"`
	AuditFields
}
