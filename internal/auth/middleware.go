package auth

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TenantKey is the gin context key carrying the resolved tenant id
const TenantKey = "tenant_id"

// Middleware resolves the tenant identity from the Authorization header
type Middleware struct {
	service *Service
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// ResolveTenant extracts the tenant from a Bearer token when one is
// present. An absent or invalid header is not an error: the request
// proceeds with no tenant and tenant-scoped reads return empty sets.
func (m *Middleware) ResolveTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			// Not a bearer header; treat as anonymous.
			c.Next()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.Next()
			return
		}

		c.Set(TenantKey, claims.UserID)
		c.Set("email", claims.Email)

		// Handlers log through the request context, so the identity has
		// to live there as well as on the gin context.
		ctx := context.WithValue(c.Request.Context(), TenantKey, claims.UserID)
		ctx = context.WithValue(ctx, "email", claims.Email)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// TenantFromContext returns the tenant id set by ResolveTenant. A missing
// or unparsable tenant yields uuid.Nil, which matches no rows.
func TenantFromContext(c *gin.Context) uuid.UUID {
	value, exists := c.Get(TenantKey)
	if !exists {
		return uuid.Nil
	}
	raw, ok := value.(string)
	if !ok {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}
