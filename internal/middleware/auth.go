package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sixcities/internal/client"
	jwtsvc "sixcities/internal/pkg/jwt"
	"sixcities/internal/repository"
)

const userKey = "user"

// RequireAuth rejects requests without a valid X-Token. Unauthorized
// responses carry no body; the client treats them as unstructured failures.
func RequireAuth(jwt *jwtsvc.Service, users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := resolveUser(c, jwt, users)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// OptionalAuth resolves the user when a valid token is present and lets the
// request through anonymously otherwise.
func OptionalAuth(jwt *jwtsvc.Service, users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := resolveUser(c, jwt, users); ok {
			c.Set(userKey, user)
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by RequireAuth or
// OptionalAuth, or nil for anonymous requests.
func CurrentUser(c *gin.Context) *repository.UserRow {
	v, exists := c.Get(userKey)
	if !exists {
		return nil
	}
	user, ok := v.(*repository.UserRow)
	if !ok {
		return nil
	}
	return user
}

func resolveUser(c *gin.Context, jwt *jwtsvc.Service, users *repository.UserRepository) (*repository.UserRow, bool) {
	tokenStr := c.GetHeader(client.AuthHeaderName)
	if tokenStr == "" {
		return nil, false
	}

	claims, err := jwt.ValidateToken(tokenStr)
	if err != nil {
		return nil, false
	}

	user, err := users.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		return nil, false
	}
	return user, true
}
