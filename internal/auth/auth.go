// Package auth handles admin credentials and session tokens for the
// consign CLI. The admin password is stored as a bcrypt hash; a
// successful login yields a signed HS256 session token that admin
// commands exchange for an AdminClaim.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/fabline/consign/pkg/types"
)

// tokenIssuer identifies tokens minted by this application.
const tokenIssuer = "consign"

// bcryptCost is the work factor for password hashing.
const bcryptCost = 10

// Session token errors.
var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrTokenExpired = errors.New("session token expired")
)

// HashPassword returns the bcrypt hash of a password for storage in
// config.yaml.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a password against its stored bcrypt hash.
func CheckPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// MakeSessionToken mints a signed session token for the given admin
// subject, valid for expiresIn from now.
func MakeSessionToken(subject, secret string, expiresIn time.Duration) (string, error) {
	now := time.Now().UTC()
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
	})
	signed, err := tk.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

// ValidateSessionToken verifies a session token and returns the
// AdminClaim it carries. Returns ErrTokenExpired for expired tokens
// and ErrInvalidToken for anything else that fails verification.
func ValidateSessionToken(token, secret string) (types.AdminClaim, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return types.AdminClaim{}, ErrTokenExpired
		}
		return types.AdminClaim{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return types.AdminClaim{}, ErrInvalidToken
	}

	claim := types.AdminClaim{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		claim.IssuedAt = claims.IssuedAt.Time
	}
	return claim, nil
}
