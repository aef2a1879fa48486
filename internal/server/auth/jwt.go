// Package auth implements the two credential primitives of the server:
// signed session tokens (HS256 JWT) and bcrypt password hashing.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/auditkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered claim set; the token subject is the
// user's email address.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken mints a signed HS256 token asserting {sub: subject,
// exp: now + validityDuration}. Tokens are stateless and are never
// revoked server-side.
func GenerateToken(subject string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetSubjectFromToken verifies the signature and expiry of tokenString and
// returns its subject. Expired tokens yield common.ErrTokenExpired; any
// other defect (bad signature, malformed token, missing subject) yields
// common.ErrInvalidToken.
func GetSubjectFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
