// Package auth issues and validates the admin bearer token. Authorization
// is stateless: a signed token checked on every request, no server-side
// session.
package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Config struct {
	AdminPassword string
	JWTSecret     string
	TokenTTL      time.Duration
}

type Service struct {
	cfg Config
}

func New(cfg Config) *Service {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 12 * time.Hour
	}

	return &Service{cfg: cfg}
}

// Login exchanges the admin password for a signed bearer token.
//
// Returns:
//   - string: the HS256-signed token.
//   - error: auth.ErrInvalidCredentials on a wrong password.
func (s *Service) Login(password string) (string, error) {
	const op = "service.auth.Login"

	if subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) != 1 {
		return "", fmt.Errorf("%s:%w", op, ErrInvalidCredentials)
	}

	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
	})

	signed, err := t.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("%s:%w", op, err)
	}

	return signed, nil
}

// Validate checks a bearer token and returns its subject.
//
// Returns:
//   - string: the token subject when valid.
//   - error: auth.ErrInvalidToken when expired, malformed or signed with
//     the wrong key or method.
func (s *Service) Validate(token string) (string, error) {
	const op = "service.auth.Validate"

	parsed, err := jwt.ParseWithClaims(
		token,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return []byte(s.cfg.JWTSecret), nil
		},
	)
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("%s:%w", op, ErrInvalidToken)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return "", fmt.Errorf("%s:%w", op, ErrInvalidToken)
	}

	return claims.Subject, nil
}
