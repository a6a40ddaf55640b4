package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-crypt/x/pbkdf2"
)

const (
	// MinPasswordLength is the shortest admin password accepted.
	MinPasswordLength = 3

	hashIterations = 600_000
	saltLength     = 16
	keyLength      = 32
	hashPrefix     = "pbkdf2-sha256"
)

// HashPassword derives an encoded PBKDF2-SHA256 hash from a password.
// The salt and iteration count are encoded alongside the digest:
//
//	pbkdf2-sha256$<iterations>$<salt>$<digest>
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", fmt.Errorf("%w: need at least %d characters", ErrPasswordTooShort, MinPasswordLength)
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	digest := pbkdf2.Key([]byte(password), salt, hashIterations, keyLength, sha256.New)

	enc := base64.RawStdEncoding
	return fmt.Sprintf("%s$%d$%s$%s",
		hashPrefix,
		hashIterations,
		enc.EncodeToString(salt),
		enc.EncodeToString(digest),
	), nil
}

// VerifyPassword reports whether the password matches the encoded hash.
func VerifyPassword(encoded, password string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 4 || parts[0] != hashPrefix {
		return false, ErrMalformedHash
	}

	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 {
		return false, ErrMalformedHash
	}

	enc := base64.RawStdEncoding
	salt, err := enc.DecodeString(parts[2])
	if err != nil {
		return false, ErrMalformedHash
	}
	digest, err := enc.DecodeString(parts[3])
	if err != nil {
		return false, ErrMalformedHash
	}

	candidate := pbkdf2.Key([]byte(password), salt, iterations, len(digest), sha256.New)
	return subtle.ConstantTimeCompare(candidate, digest) == 1, nil
}
