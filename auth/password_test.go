package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	encoded, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "pbkdf2-sha256$"))

	ok, err := VerifyPassword(encoded, "correct horse")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(encoded, "wrong horse")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	a, err := HashPassword("123")
	require.NoError(t, err)
	b, err := HashPassword("123")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "each hash carries a fresh salt")

	ok, err := VerifyPassword(a, "123")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = VerifyPassword(b, "123")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHashPassword_TooShort(t *testing.T) {
	_, err := HashPassword("12")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	_, err = HashPassword("")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestVerifyPassword_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"wrong prefix", "bcrypt$10$c2FsdA$aGFzaA"},
		{"missing fields", "pbkdf2-sha256$600000$c2FsdA"},
		{"bad iterations", "pbkdf2-sha256$abc$c2FsdA$aGFzaA"},
		{"bad salt encoding", "pbkdf2-sha256$600000$!!!$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VerifyPassword(tt.encoded, "123")
			assert.ErrorIs(t, err, ErrMalformedHash)
		})
	}
}
