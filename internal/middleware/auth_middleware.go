package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/eventhub/internal/authz"
	"github.com/farellandr/eventhub/internal/helpers"
	"github.com/farellandr/eventhub/internal/models"
	"github.com/farellandr/eventhub/internal/session"
)

// SessionMiddleware restores the session named by the bearer token and
// rejects the request unless it is signed in.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		deps := GetDeps(c)
		if deps == nil {
			helpers.AbortWithError(c, http.StatusInternalServerError, "Session manager not found.")
			return
		}

		tokenString, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || tokenString == "" {
			helpers.AbortWithError(c, http.StatusUnauthorized, "Authorization token required.")
			return
		}

		claims, err := session.ParseToken(deps.JWTSecret, tokenString)
		if err != nil {
			helpers.AbortWithError(c, http.StatusUnauthorized, "Invalid or expired token.")
			return
		}

		sess, err := deps.Sessions.Open(c.Request.Context(), claims.SessionID)
		if err != nil {
			slog.Error("can't restore session", "session_id", claims.SessionID, "error", err)
			helpers.AbortWithError(c, http.StatusInternalServerError, "Failed to restore session.")
			return
		}
		if sess.State() != session.StateAuthenticated {
			helpers.AbortWithError(c, http.StatusUnauthorized, "Session has ended. Please log in again.")
			return
		}

		c.Set(sessionKey, sess)
		c.Set(userIDKey, sess.User().ID)
		c.Next()
	}
}

// RequireRoles lets the request through only when the signed in user holds
// one of roles.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authz.CanAccess(CurrentUser(c), roles...) {
			helpers.AbortWithError(c, http.StatusForbidden, "You don't have permission to access this resource.")
			return
		}
		c.Next()
	}
}
