// Package jwt mints and verifies the HS256 bearer credentials this service
// trusts. Verification is purely local; no network I/O happens here.
package jwt

import (
	"errors"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformedToken means the token could not be parsed or lacks
	// required claims.
	ErrMalformedToken = errors.New("malformed token")
	// ErrInvalidToken means signature verification failed under the
	// configured algorithm and secret.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken means the token's expiry has passed.
	ErrExpiredToken = errors.New("expired token")
)

// Claims is the decoded claim set of a verified credential.
type Claims struct {
	Subject   string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type tokenClaims struct {
	Email string `json:"email,omitempty"`
	gojwt.RegisteredClaims
}

// Create mints a signed credential for the given subject.
func Create(subject, email, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Email: email,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Verify checks signature and expiry and returns the claim set.
func Verify(tokenString, secret string) (*Claims, error) {
	var claims tokenClaims
	_, err := gojwt.ParseWithClaims(tokenString, &claims, func(t *gojwt.Token) (any, error) {
		return []byte(secret), nil
	}, gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, gojwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		case errors.Is(err, gojwt.ErrTokenMalformed):
			return nil, ErrMalformedToken
		default:
			return nil, ErrInvalidToken
		}
	}

	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, ErrMalformedToken
	}

	out := &Claims{
		Subject:   claims.Subject,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	return out, nil
}
