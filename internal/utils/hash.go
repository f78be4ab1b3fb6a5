package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// saltBytes is the length of the raw salt; hex encoding doubles it on the wire.
const saltBytes = 16

// GenerateSalt returns a fresh cryptographically random salt, hex-encoded.
func GenerateSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashPassword computes the stored password digest: hex(SHA256(salt || password)).
// A fast hash was chosen over a slow KDF for simplicity; it trades brute-force
// resistance away and should not be carried into a production deployment as-is.
func HashPassword(salt, password string) string {
	sum := sha256.Sum256([]byte(salt + password))
	return hex.EncodeToString(sum[:])
}

// DeriveToken computes the bearer token issued on register and login:
// hex(SHA256(email || salt)). The token is a plain digest, not a MAC over a
// server secret — anyone who learns a user's email and salt can forge it, and
// it carries no expiry. Kept because the external contract depends on the
// token being deterministic across register and login.
func DeriveToken(email, salt string) string {
	sum := sha256.Sum256([]byte(email + salt))
	return hex.EncodeToString(sum[:])
}
