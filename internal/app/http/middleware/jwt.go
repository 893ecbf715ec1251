package middleware

import (
	"net/http"
	"slices"
	"strings"

	"vinyl-api/internal/domain/users"
	"vinyl-api/internal/infra/token"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// Accounts resolves token subjects to stored users.
type Accounts interface {
	GetUser(id int) (users.User, bool)
}

// AuthMiddleware admits a bearer token only while its user_id still names the
// account it was issued for. Ids restart after a store reset, so a token whose
// email no longer matches the stored user is rejected. Role comes from the
// stored account.
func AuthMiddleware(verifier token.Verifier, accounts Accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": "Authorization header missing"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || strings.TrimSpace(tokenString) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": "Bearer token malformed"})
			return
		}

		claims, err := verifier.Verify(strings.TrimSpace(tokenString))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": "Invalid or expired token"})
			return
		}

		u, found := accounts.GetUser(claims.UserID)
		if !found || !strings.EqualFold(u.Email, claims.Email) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": "Session no longer valid"})
			return
		}
		if !u.Active {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden", "message": "Account is disabled"})
			return
		}

		c.Set(CtxUserID, u.ID)
		c.Set(CtxEmail, u.Email)
		c.Set(CtxRole, u.Role)
		c.Next()
	}
}

// RequireRole admits requests whose token carries any of roles. It must run
// after AuthMiddleware.
func RequireRole(roles ...users.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(CtxRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": "Role not found in token"})
			return
		}

		role, _ := value.(users.Role)
		if !slices.Contains(roles, role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden", "message": "Access denied"})
			return
		}

		c.Next()
	}
}

// UserID returns the authenticated user id, or 0 outside AuthMiddleware.
func UserID(c *gin.Context) int {
	return c.GetInt(CtxUserID)
}

func Role(c *gin.Context) users.Role {
	value, _ := c.Get(CtxRole)
	role, _ := value.(users.Role)
	return role
}
