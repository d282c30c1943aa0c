package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/lavaresto/menu_backend/internal/core/domain"
)

// adminKey is the key used to store the authenticated admin in the request context.
const adminKey = contextKey("admin")

// GetAdminFromContext retrieves the admin that passed RequireAdmin.
// It returns the principal and a boolean indicating if it was found.
func GetAdminFromContext(c *gin.Context) (domain.AdminPrincipal, bool) {
	return AdminFromCtx(c.Request.Context())
}

// AdminFromCtx retrieves the authenticated admin from a standard context.
func AdminFromCtx(ctx context.Context) (domain.AdminPrincipal, bool) {
	principal, ok := ctx.Value(adminKey).(domain.AdminPrincipal)
	return principal, ok
}
