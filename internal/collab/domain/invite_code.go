package domain

import "time"

// InviteCode is a short-lived, reusable capability token that admits a new
// member to a project. The code value is globally unique across all invite
// codes ever issued. Rows are insert-only: a code is never updated or
// revoked, it simply stops being valid once its expiry passes.
type InviteCode struct {
	ID        string
	Code      string
	ProjectID int64
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Valid reports whether the code is redeemable at the given instant.
// Validity is derived from the expiry, never stored; a code whose expiry
// equals now is already expired.
func (c InviteCode) Valid(now time.Time) bool {
	return now.Before(c.ExpiresAt)
}

// Remaining returns how much validity the code has left at the given
// instant. Negative for expired codes.
func (c InviteCode) Remaining(now time.Time) time.Duration {
	return c.ExpiresAt.Sub(now)
}
