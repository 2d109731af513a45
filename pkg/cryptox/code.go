package cryptox

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// InviteCodeLength is the fixed length of generated invite codes.
const InviteCodeLength = 8

// InviteCodeAlphabet deliberately omits 0/O/1/I/L so codes survive being
// read aloud or copied by hand.
const InviteCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// GenerateInviteCode draws a fixed-length invite code from a crypto-secure
// random source. Uniqueness against previously issued codes is the caller's
// responsibility; this only guarantees unpredictability.
func GenerateInviteCode() (string, error) {
	code := make([]byte, InviteCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(InviteCodeAlphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to generate invite code: %w", err)
		}
		code[i] = InviteCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}
