package domain

// Admin is a stored admin login. Password is plaintext.
type Admin struct {
	AdminID  string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	AuditFields
}

// AdminPrincipal identifies who passed the admin gate and which credential source accepted them.
type AdminPrincipal struct {
	Username string
	Source   string
}
