package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainerror "github.com/gestionpro/backend/internal/domain/error"
)

const testSecret = "test-signing-secret"

func signToken(t *testing.T, claims CustomClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestValidateToken(t *testing.T) {
	service := NewJWTSessionService(testSecret)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("accepts a valid token", func(t *testing.T) {
		expires := time.Now().Add(time.Hour)
		token := signToken(t, CustomClaims{
			UserID: userID.String(),
			Role:   "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(expires),
			},
		}, testSecret)

		claims, err := service.ValidateToken(ctx, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("expected user id %s, got %s", userID, claims.UserID)
		}
		if claims.Role != "admin" {
			t.Errorf("expected role admin, got %s", claims.Role)
		}
		if claims.ExpiresAt.Unix() != expires.Unix() {
			t.Errorf("expected expiry %v, got %v", expires, claims.ExpiresAt)
		}
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		token := signToken(t, CustomClaims{UserID: userID.String()}, "other-secret")

		if _, err := service.ValidateToken(ctx, token); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		token := signToken(t, CustomClaims{
			UserID: userID.String(),
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}, testSecret)

		if _, err := service.ValidateToken(ctx, token); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("rejects an unsigned token", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, CustomClaims{
			UserID: userID.String(),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatalf("failed to build token: %v", err)
		}

		if _, err := service.ValidateToken(ctx, unsigned); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("rejects a malformed user id", func(t *testing.T) {
		token := signToken(t, CustomClaims{UserID: "not-a-uuid"}, testSecret)

		if _, err := service.ValidateToken(ctx, token); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		if _, err := service.ValidateToken(ctx, "not.a.token"); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}
