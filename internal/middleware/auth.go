package middleware

import (
	"net/http"
	"strings"

	"order_tracker/internal/services"

	"github.com/gin-gonic/gin"
)

// Context keys under which verified token claims are stored.
const (
	AdminClaimsKey    = "adminClaims"
	CustomerClaimsKey = "customerClaims"
)

// RequireAdmin rejects requests without a valid admin bearer token.
// A customer token fails here even when its signature verifies.
func RequireAdmin(auth services.AuthService) gin.HandlerFunc {
	return requireKind(auth, services.KindAdmin, AdminClaimsKey)
}

// RequireCustomer rejects requests without a valid customer bearer token.
func RequireCustomer(auth services.AuthService) gin.HandlerFunc {
	return requireKind(auth, services.KindCustomer, CustomerClaimsKey)
}

func requireKind(auth services.AuthService, kind, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "غير مصرح بالوصول"})
			return
		}

		claims, err := auth.VerifyToken(token, kind)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "جلسة منتهية الصلاحية"})
			return
		}

		c.Set(contextKey, claims)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// AdminClaims returns the verified admin claims set by RequireAdmin.
func AdminClaims(c *gin.Context) *services.TokenClaims {
	if v, ok := c.Get(AdminClaimsKey); ok {
		if claims, ok := v.(*services.TokenClaims); ok {
			return claims
		}
	}
	return nil
}

// CustomerClaims returns the verified customer claims set by RequireCustomer.
func CustomerClaims(c *gin.Context) *services.TokenClaims {
	if v, ok := c.Get(CustomerClaimsKey); ok {
		if claims, ok := v.(*services.TokenClaims); ok {
			return claims
		}
	}
	return nil
}
