package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformedToken indicates the token could not be parsed at all.
	ErrMalformedToken = errors.New("malformed token")

	// ErrBadSignature indicates the signature does not validate against the
	// configured key.
	ErrBadSignature = errors.New("invalid token signature")

	// ErrTokenExpired indicates the token's expiry instant is in the past.
	ErrTokenExpired = errors.New("token expired")
)

// Claims are the verified assertions carried by an access token.
type Claims struct {
	UserID    string
	ExpiresAt time.Time
}

// TokenService issues and verifies self-contained HS256 access tokens.
// Verification is pure: no state is kept server-side and no I/O happens here.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a token service around the process-wide signing key.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue signs a token asserting the user identifier with the default TTL.
func (s *TokenService) Issue(userID string) (string, error) {
	return s.IssueWithTTL(userID, s.ttl)
}

// IssueWithTTL signs a token expiring ttl from now.
func (s *TokenService) IssueWithTTL(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})
	return token.SignedString(s.secret)
}

// Verify parses the token, checks the signature and expiry, and returns the
// asserted claims.
func (s *TokenService) Verify(raw string) (Claims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return Claims{}, ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return Claims{}, ErrBadSignature
	case err != nil:
		return Claims{}, ErrMalformedToken
	case !token.Valid:
		return Claims{}, ErrBadSignature
	}

	if claims.Subject == "" || claims.ExpiresAt == nil {
		return Claims{}, ErrMalformedToken
	}

	return Claims{UserID: claims.Subject, ExpiresAt: claims.ExpiresAt.Time}, nil
}
