package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/srs-portal/internal/models"
	"github.com/noah-isme/srs-portal/internal/session"
)

// RequireRoles enforces role-based access for routes. It composes after
// RequireSession; membership is case-insensitive and carries no hierarchy, an
// admin is not implicitly staff. Rejections land on the dashboard with an
// "Access denied." flash.
func RequireRoles(sessions *session.Manager, allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFromContext(c)
		if sess == nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		for _, role := range allowed {
			if role.Matches(string(sess.Role)) {
				c.Next()
				return
			}
		}

		sessions.Flash(c, sess, models.FlashError, "Access denied.")
		c.Redirect(http.StatusSeeOther, "/dashboard")
		c.Abort()
	}
}
