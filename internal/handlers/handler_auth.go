package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/lavaresto/menu_backend/internal/core/ports/services"
	"github.com/lavaresto/menu_backend/internal/dto"
	"github.com/lavaresto/menu_backend/internal/middleware"
)

// authHandler exposes the admin credential check and rotation.
type authHandler struct {
	authService portssvc.CredentialRotatorSvc
}

func newAuthHandler(as portssvc.CredentialRotatorSvc) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes registers the auth routes. Both sit behind the admin gate.
func registerAuthRoutes(admin *gin.RouterGroup, authService portssvc.CredentialRotatorSvc) {
	h := newAuthHandler(authService)

	auth := admin.Group("/auth")
	{
		auth.GET("/verify", h.verify)
		auth.PUT("/update", h.updateCredentials)
	}
}

// verify godoc
// @Summary Verify admin credentials
// @Description Succeeds when the X-Admin-Username and X-Admin-Password headers are accepted
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security AdminUsername
// @Security AdminPassword
// @Router /auth/verify [get]
func (h *authHandler) verify(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Authenticated"})
}

// updateCredentials godoc
// @Summary Rotate the stored admin login
// @Description Changes username and/or password of the stored admin named in X-Admin-Username
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.UpdateCredentialsRequest true "New username and/or password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security AdminUsername
// @Security AdminPassword
// @Router /auth/update [put]
func (h *authHandler) updateCredentials(c *gin.Context) {
	var req dto.UpdateCredentialsRequest
	if !bindJSON(c, &req, "UpdateCredentials") {
		return
	}

	admin, ok := middleware.GetAdminFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Missing credentials"})
		return
	}

	if err := h.authService.UpdateCredentials(c.Request.Context(), admin.Username, req); err != nil {
		respondServiceError(c, err, "Admin not found", "Failed to update credentials")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Credentials updated successfully"})
}
