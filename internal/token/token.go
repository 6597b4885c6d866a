// Package token issues and verifies the bearer tokens used for API authentication.
package token

import (
	"errors"
	"fmt"
	"time"

	"postboard/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// tokenLifetime is the fixed validity window from issuance. It is not
// configurable per call.
const tokenLifetime = 600 * time.Second

// ErrInvalidToken is returned by Verify for any token that fails signature,
// algorithm, structure, or expiry checks. Callers never see the underlying
// parse error.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the decoded payload of a verified token.
type Claims struct {
	UserID  uint
	Expires int64
}

// Service signs and verifies tokens with a process-wide secret and a single
// allow-listed HMAC algorithm.
type Service struct {
	secret    []byte
	algorithm string
	method    jwt.SigningMethod
	now       func() time.Time
}

// NewService builds a Service from the loaded configuration. Only HMAC family
// algorithms are accepted; the token's own alg header is never trusted.
func NewService(cfg *config.Config) (*Service, error) {
	method := jwt.GetSigningMethod(cfg.JWTAlgorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", cfg.JWTAlgorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not an HMAC method", cfg.JWTAlgorithm)
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT secret not configured")
	}

	return &Service{
		secret:    []byte(cfg.JWTSecret),
		algorithm: cfg.JWTAlgorithm,
		method:    method,
		now:       time.Now,
	}, nil
}

// Issue signs a token for the given user, expiring tokenLifetime from now.
func (s *Service) Issue(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"expires": s.now().Add(tokenLifetime).Unix(),
	}
	return jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
}

// Verify decodes and checks a token string. A token is valid iff its signature
// verifies under the allow-listed algorithm and its expires claim has not
// passed; any such failure yields ErrInvalidToken. The user_id claim is not
// required for the token itself to verify: a claims payload that does not
// resolve to a positive ID yields UserID 0, and handlers reject that identity.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.Parse(tokenString,
		func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{s.algorithm}),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	expires, ok := mapClaims["expires"].(float64)
	if !ok || int64(expires) < s.now().Unix() {
		return nil, ErrInvalidToken
	}

	// JSON numbers decode as float64. Missing, zero, or non-numeric
	// user_id collapses to 0 here and fails the handlers' identity check.
	var userID uint
	if raw, ok := mapClaims["user_id"].(float64); ok && raw > 0 {
		userID = uint(raw)
	}

	return &Claims{
		UserID:  userID,
		Expires: int64(expires),
	}, nil
}
