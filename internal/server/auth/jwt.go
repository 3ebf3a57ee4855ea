// Package auth issues and validates the signed access tokens that prove an
// authenticated identity on protected RPCs.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"vaxreg/internal/common"
)

// Claims extends the registered JWT claims with the identity id the token
// was issued for.
type Claims struct {
	jwt.RegisteredClaims
	IdentityID string
}

// GenerateToken signs an HS256 token for identityID valid for validity.
func GenerateToken(identityID string, secretKey []byte, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		IdentityID: identityID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetIdentityIDFromToken parses and validates tokenString and returns the
// identity id it carries. Expired tokens map to common.ErrTokenExpired so
// the client can distinguish them and attempt a refresh.
func GetIdentityIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", err
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.IdentityID, nil
}
