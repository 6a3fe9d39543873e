// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gestionpro/backend/internal/application/adapter"
	domainerror "github.com/gestionpro/backend/internal/domain/error"
	"github.com/gestionpro/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// IdentityIDKey is the context key for the authenticated identity's ID.
	IdentityIDKey ContextKey = "identity_id"
	// IdentityRoleKey is the context key for the authenticated identity's role.
	IdentityRoleKey ContextKey = "identity_role"
)

// AuthMiddleware enforces bearer-token authentication against the external
// identity provider's tokens.
type AuthMiddleware struct {
	sessionService adapter.SessionService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(sessionService adapter.SessionService) *AuthMiddleware {
	return &AuthMiddleware{
		sessionService: sessionService,
	}
}

// Authenticate returns a Gin middleware handler that enforces authentication.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authorization header is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid authorization header format",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Token is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		claims, err := m.sessionService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid or expired token",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		c.Set(string(IdentityIDKey), claims.UserID)
		c.Set(string(IdentityRoleKey), claims.Role)

		c.Next()
	}
}

// GetIdentityIDFromContext extracts the identity ID from the Gin context.
func GetIdentityIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	identityID, exists := c.Get(string(IdentityIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := identityID.(uuid.UUID)
	return id, ok
}

// GetIdentityRoleFromContext extracts the identity role from the Gin context.
func GetIdentityRoleFromContext(c *gin.Context) (string, bool) {
	role, exists := c.Get(string(IdentityRoleKey))
	if !exists {
		return "", false
	}
	roleStr, ok := role.(string)
	return roleStr, ok
}
