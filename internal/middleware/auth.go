package middleware

import (
	"github.com/Lucassfers/My-task-back-end/internal/constants"
	apierrors "github.com/Lucassfers/My-task-back-end/internal/errors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequireAuth checks if a user is authenticated via session
func RequireAuth() gin.HandlerFunc {
	return requireSession(constants.ContextKeyUserID)
}

// RequireAdmin checks if an admin is authenticated via session
func RequireAdmin() gin.HandlerFunc {
	return requireSession(constants.ContextKeyAdminID)
}

func requireSession(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		raw, ok := session.Get(key).(string)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid session")
			c.Abort()
			return
		}

		// Store the ID in context for easy access in handlers
		c.Set(key, id)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	return contextID(c, constants.ContextKeyUserID)
}

// GetAdminID retrieves the current admin ID from context
func GetAdminID(c *gin.Context) (uuid.UUID, bool) {
	return contextID(c, constants.ContextKeyAdminID)
}

func contextID(c *gin.Context, key string) (uuid.UUID, bool) {
	value, exists := c.Get(key)
	if !exists {
		return uuid.Nil, false
	}

	switch v := value.(type) {
	case uuid.UUID:
		return v, v != uuid.Nil
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return uuid.Nil, false
		}
		return id, true
	default:
		return uuid.Nil, false
	}
}
