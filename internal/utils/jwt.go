package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken signs claims with HMAC-SHA256.
//
// Issuer, ID (jti) and ExpiresAt are required; an empty signKey is rejected.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(jwt.RegisteredClaims{
//	    Issuer:    "go-pass-server",
//	    Subject:   userID,
//	    ID:        sessionID,
//	    ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
//	}, key)
func GenerateJWTToken(claims jwt.RegisteredClaims, signKey []byte) (string, error) {
	if claims.Issuer == "" || claims.ID == "" || claims.ExpiresAt == nil || len(signKey) == 0 {
		return "", errors.New("invalid params for generating JWT Token")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(signKey)
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseJWTToken verifies the HS256 signature of tokenString, its
// issuer and its expiry at now(), and returns its claims. Tokens without a
// jti are rejected.
func ValidateAndParseJWTToken(tokenString string, signKey []byte, issuer string, now func() time.Time) (jwt.RegisteredClaims, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return signKey, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return jwt.RegisteredClaims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.ID == "" {
		return jwt.RegisteredClaims{}, errors.New("empty token id")
	}

	return claims, nil
}
