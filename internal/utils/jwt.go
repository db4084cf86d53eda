package utils // package utils provides helper functions for token creation and hashing

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// Token type discriminators carried in the "type" claim.  A token of one
// type must never verify as another.
const (
	TokenAccess  = "access"
	TokenRefresh = "refresh"
	TokenCSRF    = "csrf"
)

var ErrInvalidToken = errors.New("invalid token")

// NewAccessToken signs an HS256 JWT authorizing API calls for a user.  The
// claims are subject (sub), type ("access"), expiration (exp) and issued at
// (iat).  ttlMin controls the expiry window in minutes.
func NewAccessToken(secret, userID string, ttlMin int) (string, error) {
	return signedToken(secret, jwt.MapClaims{
		"sub":  userID,
		"type": TokenAccess,
		"exp":  time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute).Unix(),
		"iat":  time.Now().UTC().Unix(),
	})
}

// NewRefreshToken signs a long-lived JWT used solely to mint new access
// tokens.  ttlDays controls the expiry window in days.
func NewRefreshToken(secret, userID string, ttlDays int) (string, error) {
	return signedToken(secret, jwt.MapClaims{
		"sub":  userID,
		"type": TokenRefresh,
		"exp":  time.Now().UTC().Add(time.Duration(ttlDays) * 24 * time.Hour).Unix(),
		"iat":  time.Now().UTC().Unix(),
	})
}

// NewCSRFToken signs a JWT bound to a user id for the double-submit check on
// state-changing requests.  It carries no expiry, matching the session
// design it guards.
func NewCSRFToken(secret, userID string) (string, error) {
	return signedToken(secret, jwt.MapClaims{
		"sub":  userID,
		"type": TokenCSRF,
	})
}

func signedToken(secret string, claims jwt.MapClaims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// VerifyToken parses a token, checks the HMAC signature and expiry, and
// requires the "type" claim to match wantType.  It returns the subject
// (user id).  Expired access tokens, refresh tokens presented as access
// tokens and vice versa all fail with ErrInvalidToken.
func VerifyToken(secret, raw, wantType string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but HMAC.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	if typ, _ := claims["type"].(string); typ != wantType {
		return "", ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

// VerifyCSRFToken reports whether raw is a valid CSRF token issued for
// userID.
func VerifyCSRFToken(secret, raw, userID string) bool {
	sub, err := VerifyToken(secret, raw, TokenCSRF)
	return err == nil && sub == userID
}
