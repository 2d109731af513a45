package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken reports a token that failed signature or claim checks.
	ErrInvalidToken = errors.New("jwtx: invalid token")
	// ErrExpiredToken reports a structurally valid but expired token.
	ErrExpiredToken = errors.New("jwtx: token expired")
)

// Signer mints HS256 access tokens.
type Signer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

// Mint signs an access token for the given member.
func (s *Signer) Mint(memberID, handle string, now time.Time) (string, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}

	claims := NewAccessClaims(memberID, handle, s.Issuer, ttl, now)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: signing failed: %w", err)
	}
	return signed, nil
}

// Verifier validates HS256 access tokens.
type Verifier struct {
	Secret []byte
	Issuer string
}

// Verify parses and validates a raw token string, returning its claims.
func (v *Verifier) Verify(raw string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("jwtx: unexpected signing method %q", t.Method.Alg())
			}
			return v.Secret, nil
		},
		jwt.WithIssuer(v.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpiredToken
		}
		return Claims{}, ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
