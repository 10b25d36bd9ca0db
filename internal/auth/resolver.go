package auth

import (
	"context"
	"errors"

	"github.com/healthx-platform/healthx/internal/identity"
)

// ErrUnauthenticated covers every way a request can fail to prove an
// identity: absent, malformed, forged or expired token, or a token whose
// referenced user no longer exists.
var ErrUnauthenticated = errors.New("unauthenticated")

// UserFinder looks up a user by identifier. The identity service satisfies
// it, as do its repositories.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (identity.User, error)
}

// Resolver recovers the acting user from a request-supplied token.
//
// Resolution is deliberately uncached: every call re-verifies the token and
// re-reads the user, so authorization state is always current at the cost of
// one store lookup per request.
type Resolver struct {
	tokens *TokenService
	users  UserFinder
}

// NewResolver builds a resolver over the token service and user lookup.
func NewResolver(tokens *TokenService, users UserFinder) *Resolver {
	return &Resolver{tokens: tokens, users: users}
}

// Resolve verifies the raw token and looks up the asserted user.
func (r *Resolver) Resolve(ctx context.Context, raw string) (identity.User, error) {
	if raw == "" {
		return identity.User{}, ErrUnauthenticated
	}

	claims, err := r.tokens.Verify(raw)
	if err != nil {
		return identity.User{}, ErrUnauthenticated
	}

	user, err := r.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			return identity.User{}, ErrUnauthenticated
		}
		return identity.User{}, err
	}

	return user, nil
}
