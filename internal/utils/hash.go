package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by CheckPassword for a wrong password.
var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword peppers password with an HMAC-SHA256 under pepperKey and
// bcrypt-hashes the hex digest. The digest is always 64 bytes, which keeps
// long passwords under bcrypt's 72-byte input limit.
func HashPassword(password, pepperKey string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(pepper(password, pepperKey), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares password against a hash from HashPassword.
func CheckPassword(hash, password, pepperKey string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), pepper(password, pepperKey))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("bcrypt: %w", err)
	}
}

func pepper(password, key string) []byte {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(password))
	return []byte(hex.EncodeToString(mac.Sum(nil)))
}
