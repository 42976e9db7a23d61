package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bioscizone/bioscizone-api/internal/models"
)

// ErrInvalidToken covers every verification failure: bad signature, malformed
// token, elapsed expiry, or a missing subject claim. Callers translate it to
// an unauthenticated response.
var ErrInvalidToken = errors.New("invalid or expired token")

// DefaultTokenTTL applies when Issue is called without a positive ttl.
const DefaultTokenTTL = 15 * time.Minute

// Claims is the identity carried by a verified bearer token.
type Claims struct {
	Subject string
	Role    string
}

// TokenService mints and verifies stateless, signed bearer tokens. There is no
// revocation list; a token stays valid until its expiry.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
}

// NewTokenService constructs a token service for the given HMAC algorithm
// (HS256, HS384, or HS512).
func NewTokenService(secret, algorithm string) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("token secret must not be empty")
	}

	method := jwt.GetSigningMethod(strings.ToUpper(algorithm))
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not HMAC-based", algorithm)
	}

	return &TokenService{secret: []byte(secret), method: method}, nil
}

// Issue mints a token embedding subject, role, and absolute expiry.
func (s *TokenService) Issue(subject, role string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks signature and expiry and extracts the identity claims. The
// role defaults to "admin" when the claim is absent.
func (s *TokenService) Verify(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	subject, _ := mapClaims["sub"].(string)
	if subject == "" {
		return Claims{}, ErrInvalidToken
	}

	role, _ := mapClaims["role"].(string)
	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		role = models.RoleAdmin
	}

	return Claims{Subject: subject, Role: role}, nil
}
