package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/cashflow_ledger/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health":        true,
	"/api/v1/health": true,
}

// PosthogMiddleware creates a Gin middleware handler that tracks successful
// API calls with PostHog, one event per route.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		eventName := routeEventName(c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		if companyID := c.Query("companyId"); companyID != "" {
			props["company_id"] = companyID
		}
		if period := c.Query("period"); period != "" {
			props["period"] = period
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}

// routeEventName turns "/api/v1/cashflow/summary" into "api_v1_cashflow_summary".
// Path parameters are dropped so events group by route.
func routeEventName(fullPath string) string {
	segments := strings.Split(strings.Trim(fullPath, "/"), "/")
	kept := segments[:0]
	for _, s := range segments {
		if s == "" || strings.HasPrefix(s, ":") || strings.HasPrefix(s, "*") {
			continue
		}
		kept = append(kept, strings.ReplaceAll(s, "-", "_"))
	}
	return strings.Join(kept, "_")
}
