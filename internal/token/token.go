package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const tokenBytes = 16

// Generate produces a confirmation token: 16 bytes of cryptographic
// randomness, hex-encoded. Tokens are bearer credentials embedded in links,
// so they must be unguessable.
func Generate() (string, error) {
	buffer := make([]byte, tokenBytes)
	if _, err := rand.Read(buffer); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return hex.EncodeToString(buffer), nil
}
