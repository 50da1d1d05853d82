// Package token mints and verifies the signed session tokens that prove a
// resolved identity on protected requests.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/taskforge/backend/domain"
)

// DefaultTTL is the session lifetime applied when none is configured.
const DefaultTTL = 7 * 24 * time.Hour

// Claims carries the registered claims plus the owning user ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
}

// Issuer signs and verifies session tokens with a server-held secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer constructs an Issuer. A non-positive ttl falls back to DefaultTTL.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue mints a token embedding the user ID with the configured expiry.
func (i *Issuer) Issue(userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		UserID: userID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify checks signature and expiry and returns the embedded user ID.
// Every failure mode maps to domain.ErrInvalidToken; callers do not need
// to distinguish a forged token from an expired one.
func (i *Issuer) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid || claims.UserID == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.UserID, nil
}
