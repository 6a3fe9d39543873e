package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Identity is the opaque session identity reported by the external provider.
// Absence of an identity means the system operates local-only with an empty
// collection.
type Identity struct {
	ID   uuid.UUID
	Role string
}

// SessionClaims represents the claims contained in a session token.
type SessionClaims struct {
	UserID    uuid.UUID
	Role      string
	ExpiresAt time.Time
}

// SessionService verifies bearer tokens issued by the external identity
// provider. Token issuance is out of scope for this system.
type SessionService interface {
	// ValidateToken validates a session token and returns its claims.
	ValidateToken(ctx context.Context, token string) (*SessionClaims, error)
}
