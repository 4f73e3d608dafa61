package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/CrisOrc/prueba-tecnica-Konecta/models"
	"github.com/CrisOrc/prueba-tecnica-Konecta/pkg/token"
)

const claimsKey = "claims"

// RequireAuth verifies the bearer token on the request and stashes the
// verified claims in the context for downstream handlers.
func RequireAuth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied, no token provided"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Verify(tokenString)
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, token.ErrTokenExpired) {
				message = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": message})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRoles rejects requests whose verified claims carry a role outside
// the allowed set. It must run after RequireAuth.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok || !claims.Role.OneOf(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied, insufficient permissions"})
			return
		}
		c.Next()
	}
}

// CurrentClaims returns the verified claims attached by RequireAuth.
func CurrentClaims(c *gin.Context) (*token.Claims, bool) {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*token.Claims)
	return claims, ok
}
