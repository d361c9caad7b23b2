package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/goalfield/field-scheduler/internal/httperr"
	"github.com/goalfield/field-scheduler/internal/policy"
)

// Require gates a route on a policy action. Must run after
// AuthMiddleware.
func Require(action policy.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !policy.Allows(CurrentUser(c), action) {
			httperr.Forbidden(c, "admin_only", "Admin access required.")
			c.Abort()
			return
		}
		c.Next()
	}
}
