package auth

import (
	"github.com/dmitrijs2005/auditkeeper/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted bcrypt hash of plaintext at the default
// cost. Empty input is rejected with common.ErrEmptyPassword.
func HashPassword(plaintext string) (string, error) {
	if plaintext == "" {
		return "", common.ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches hash. It never returns an
// error: a malformed hash simply reads as a mismatch.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
