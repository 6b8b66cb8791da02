package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"customer-manager/internal/infrastructure/jwt"
)

const (
	CtxOperator = "operator"
	CtxScope    = "scope"
)

// AuthMiddleware requires a bearer token carrying scope.
func AuthMiddleware(jwtService *jwt.Service, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "missing Authorization header"},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token format"},
			)
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token"},
			)
			return
		}
		if !claims.HasScope(scope) {
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				gin.H{"error": "insufficient scope"},
			)
			return
		}

		c.Set(CtxOperator, claims.Operator)
		c.Set(CtxScope, claims.Scope)

		c.Next()
	}
}
