package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the default lifetime for access tokens.
// Short-lived for security - typical range is 15m to 1h.
const DefaultAccessTokenTTL = 1 * time.Hour

// Claims are access-token claims shared across the service. The subject is
// the member ID; Handle is carried for display and logging only.
type Claims struct {
	jwt.RegisteredClaims

	// Handle is the unique login handle of the authenticated member.
	Handle string `json:"handle,omitempty"`
}

// NewAccessClaims builds minimally-correct claims for a member.
func NewAccessClaims(memberID, handle, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   memberID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Handle: handle,
	}
}
