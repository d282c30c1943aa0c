package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lavaresto/menu_backend/internal/apperrors"
	portssvc "github.com/lavaresto/menu_backend/internal/core/ports/services"
)

// Header names carrying the admin credentials on every mutating request.
const (
	AdminUsernameHeader = "X-Admin-Username"
	AdminPasswordHeader = "X-Admin-Password"
)

// RequireAdmin creates a Gin middleware that verifies the admin credential headers
// on every request. There is no session: each request must carry both headers.
func RequireAdmin(verifier portssvc.CredentialVerifierSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		username := c.GetHeader(AdminUsernameHeader)
		password := c.GetHeader(AdminPasswordHeader)

		principal, err := verifier.Verify(c.Request.Context(), username, password)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrMissingCredentials):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Missing credentials"})
			case errors.Is(err, apperrors.ErrInvalidCredentials):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid credentials"})
			default:
				logger.Error("Admin authentication could not complete", slog.String("error", err.Error()))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server error during authentication"})
			}
			return
		}

		enrichedLogger := logger.With(slog.String("admin", principal.Username))
		ctx := context.WithValue(c.Request.Context(), adminKey, *principal)
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))

		c.Next()
	}
}
