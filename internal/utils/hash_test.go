package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSalt(t *testing.T) {
	salt, err := GenerateSalt()

	assert.NoError(t, err)
	assert.Len(t, salt, saltBytes*2)

	_, err = hex.DecodeString(salt)
	assert.NoError(t, err, "salt must be hex-encoded")
}

func TestGenerateSalt_Unique(t *testing.T) {
	a, err := GenerateSalt()
	assert.NoError(t, err)
	b, err := GenerateSalt()
	assert.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestHashPassword_Deterministic(t *testing.T) {
	hash1 := HashPassword("somesalt", "password123")
	hash2 := HashPassword("somesalt", "password123")

	assert.NotEmpty(t, hash1)
	assert.Equal(t, hash1, hash2)
	assert.NotEqual(t, "password123", hash1)
}

func TestHashPassword_DifferentSaltsDifferentHashes(t *testing.T) {
	hash1 := HashPassword("salt-one", "password123")
	hash2 := HashPassword("salt-two", "password123")

	assert.NotEqual(t, hash1, hash2)
}

func TestHashPassword_KnownVector(t *testing.T) {
	// hex(SHA256("abc" + "def")) == hex(SHA256("abcdef"))
	assert.Equal(t,
		"bef57ec7f53a6d40beb640a780a639c83bc29ac8a9816f1fc6c5c6dcd93c4721",
		HashPassword("abc", "def"))
}

func TestDeriveToken_Deterministic(t *testing.T) {
	token1 := DeriveToken("ann@x.com", "somesalt")
	token2 := DeriveToken("ann@x.com", "somesalt")

	assert.Equal(t, token1, token2)
	assert.Len(t, token1, 64) // hex-encoded SHA-256
}

func TestDeriveToken_IndependentOfPassword(t *testing.T) {
	// The token is derived from email and salt only, so it never changes when
	// a password would.
	token := DeriveToken("ann@x.com", "somesalt")
	assert.NotEqual(t, token, DeriveToken("bob@x.com", "somesalt"))
	assert.NotEqual(t, token, DeriveToken("ann@x.com", "othersalt"))
}
