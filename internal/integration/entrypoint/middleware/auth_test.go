package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gestionpro/backend/internal/application/adapter"
	domainerror "github.com/gestionpro/backend/internal/domain/error"
)

type fakeSessionService struct {
	claims *adapter.SessionClaims
}

func (s *fakeSessionService) ValidateToken(ctx context.Context, token string) (*adapter.SessionClaims, error) {
	if token != "valid-token" {
		return nil, domainerror.ErrInvalidToken
	}
	return s.claims, nil
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()

	newHandler := func() (*gin.Engine, *struct {
		id   uuid.UUID
		idOK bool
		role string
	}) {
		seen := &struct {
			id   uuid.UUID
			idOK bool
			role string
		}{}
		m := NewAuthMiddleware(&fakeSessionService{
			claims: &adapter.SessionClaims{UserID: userID, Role: "admin"},
		})
		r := gin.New()
		r.Use(m.Authenticate())
		r.GET("/", func(c *gin.Context) {
			seen.id, seen.idOK = GetIdentityIDFromContext(c)
			seen.role, _ = GetIdentityRoleFromContext(c)
			c.Status(http.StatusOK)
		})
		return r, seen
	}

	t.Run("exposes the identity to handlers", func(t *testing.T) {
		r, seen := newHandler()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer valid-token")

		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !seen.idOK || seen.id != userID {
			t.Errorf("expected identity id %s, got %s (ok=%v)", userID, seen.id, seen.idOK)
		}
		if seen.role != "admin" {
			t.Errorf("expected role admin, got %q", seen.role)
		}
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		r, _ := newHandler()
		w := httptest.NewRecorder()

		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("rejects an invalid token", func(t *testing.T) {
		r, _ := newHandler()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer expired-token")

		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("helpers report absence outside the middleware", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		if _, ok := GetIdentityIDFromContext(c); ok {
			t.Error("expected no identity id")
		}
		if _, ok := GetIdentityRoleFromContext(c); ok {
			t.Error("expected no identity role")
		}
	})
}
