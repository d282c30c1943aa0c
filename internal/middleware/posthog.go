package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lavaresto/menu_backend/internal/utils"
)

// AdminAuditMiddleware records successful admin mutations as audit events.
// The distinct id is the admin username; credentials never leave the request.
func AdminAuditMiddleware(auditClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if auditClient == nil || !auditClient.IsInitialized() || c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		admin, exists := GetAdminFromContext(c)
		if !exists {
			return
		}

		eventName := AuditEventName(c.Request.Method, c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
			"source":      string(admin.Source),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string)
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		auditClient.Enqueue(admin.Username, eventName, props)
	}
}

// AuditEventName builds an event name such as "delete_api_v1_items_id" from a route.
func AuditEventName(method, fullPath string) string {
	path := strings.Trim(fullPath, "/")
	if path == "" {
		return ""
	}
	path = strings.ReplaceAll(path, ":", "")
	path = strings.ReplaceAll(path, "/", "_")
	return strings.ToLower(method) + "_" + path
}
