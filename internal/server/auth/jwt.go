// Package auth implements the credential primitives: bcrypt password
// hashing and HS256 bearer tokens carrying identity claims.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vmelnikov/jobport/internal/common"
)

// Claims are the identity fields embedded in an issued token: who the
// bearer is (UserID), what they may do (Role), and display identity
// (Email, FullName).
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"id"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	FullName string `json:"fullname"`
}

// GenerateToken signs a token with the given claims, valid for
// validityDuration from now.
func GenerateToken(userID, role, email, fullName string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:   userID,
		Role:     role,
		Email:    email,
		FullName: fullName,
	})

	return token.SignedString(secretKey)
}

// ParseToken validates the token signature and expiry and returns the
// embedded claims. Expired tokens yield common.ErrTokenExpired, any other
// failure common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
