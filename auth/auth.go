// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
)

var (
	ErrBadCredentials = errors.New("bad credentials")
	ErrInvalidToken   = errors.New("invalid token")
)

// HashPassword returns the hex SHA-256 digest of a password, the format
// stored in the person registry's pw_hash column.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CheckPassword verifies a password against a stored hash in constant
// time.
func CheckPassword(pwHash, password string) error {
	if !hmac.Equal([]byte(pwHash), []byte(HashPassword(password))) {
		return ErrBadCredentials
	}
	return nil
}

// GenerateToken creates an HMAC-based auth token bound to a person's SSN.
// Deterministic and verifiable without server-side token storage.
func GenerateToken(ssn, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ssn))
	sum := h.Sum(nil)
	// URL-safe base64 without padding for cleaner header values
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateToken checks that the provided token is valid for the given SSN.
func ValidateToken(ssn, token, salt string) error {
	expected := GenerateToken(ssn, salt)
	if !hmac.Equal([]byte(token), []byte(expected)) {
		return ErrInvalidToken
	}
	return nil
}
