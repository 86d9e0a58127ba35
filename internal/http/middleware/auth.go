package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sachinkumar2222/Productr/domain"
)

// IdentityIDKey is the gin context key carrying the authenticated caller id.
const IdentityIDKey = "identity_id"

// AuthMW wraps token validation for authenticated routes.
type AuthMW struct {
	tokenSvc domain.TokenService
}

// NewAuthMW creates the bearer-token middleware.
func NewAuthMW(tokenSvc domain.TokenService) *AuthMW {
	return &AuthMW{tokenSvc: tokenSvc}
}

// WithToken resolves the caller identity from the Authorization header
// before any catalog handler runs.
func (m *AuthMW) WithToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.tokenSvc.Validate(tokenParts[1], time.Now())
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrTokenExpired):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			case errors.Is(err, domain.ErrTokenSignature):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token signature"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			c.Abort()
			return
		}

		c.Set(IdentityIDKey, claims.IdentityID)
		c.Next()
	}
}
