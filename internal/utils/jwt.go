package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the display-oriented subset of a JWT's registered claims.
type TokenClaims struct {
	Subject   string
	Issuer    string
	IssuedAt  *time.Time
	ExpiresAt *time.Time
}

// Expired reports whether the token has an expiry that lies before now.
func (c TokenClaims) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}

// InspectJWTToken decodes tokenString without verifying its signature.
//
// The client has no access to the signing key; the result is only used to
// show the subject and expiry of the held token.
func InspectJWTToken(tokenString string) (TokenClaims, error) {
	if tokenString == "" {
		return TokenClaims{}, errors.New("empty token")
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return TokenClaims{}, fmt.Errorf("error occurred parsing token: %w", err)
	}

	out := TokenClaims{Subject: claims.Subject, Issuer: claims.Issuer}
	if claims.IssuedAt != nil {
		t := claims.IssuedAt.Time
		out.IssuedAt = &t
	}
	if claims.ExpiresAt != nil {
		t := claims.ExpiresAt.Time
		out.ExpiresAt = &t
	}
	return out, nil
}

// GenerateJWTToken creates a signed HMAC-SHA256 token for subject.
// Used by the in-process fake task manager.
func GenerateJWTToken(issuer, subject string, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || subject == "" || tokenDuration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}
	return signed, nil
}
