package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/alnas-hms/ovr-system/internal/identity"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const sessionContextKey = "session"

// SessionAuthMiddleware - middleware для аутентификации по сессионному токену
func SessionAuthMiddleware(sessions identity.Store, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Warn("Session token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session token required"})
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		session, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, identity.ErrSessionNotFound) {
				log.Warn("Unknown or expired session token provided")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
				return
			}
			log.WithError(err).Error("Failed to look up session")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// sessionFromContext достает сессию, положенную middleware
func sessionFromContext(c *gin.Context) *identity.Session {
	val, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	session, ok := val.(*identity.Session)
	if !ok {
		return nil
	}
	return session
}
