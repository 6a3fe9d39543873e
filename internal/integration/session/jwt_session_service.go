// Package session verifies bearer tokens issued by the external identity
// provider.
package session

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gestionpro/backend/internal/application/adapter"
	domainerror "github.com/gestionpro/backend/internal/domain/error"
)

// CustomClaims represents the custom claims carried by provider tokens.
type CustomClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// jwtSessionService implements the adapter.SessionService interface. It only
// verifies tokens; issuance lives in the external identity provider sharing
// the signing secret.
type jwtSessionService struct {
	secret []byte
}

// NewJWTSessionService creates a new session service instance.
func NewJWTSessionService(secret string) adapter.SessionService {
	return &jwtSessionService{
		secret: []byte(secret),
	}
}

// ValidateToken validates a session token and returns its claims.
func (s *jwtSessionService) ValidateToken(ctx context.Context, token string) (*adapter.SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, domainerror.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*CustomClaims)
	if !ok || !parsed.Valid {
		return nil, domainerror.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, domainerror.ErrInvalidToken
	}

	out := &adapter.SessionClaims{
		UserID: userID,
		Role:   claims.Role,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
