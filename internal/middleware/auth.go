package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/healthx-platform/healthx/internal/auth"
	"github.com/healthx-platform/healthx/internal/config"
	"github.com/healthx-platform/healthx/internal/identity"
)

const currentUserKey = "current_user"

// RequireUser resolves the bearer token into a user and stores it in request
// locals. It is the sole gate in front of every user- and admin-scoped route.
func RequireUser(resolver *auth.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var raw string
		authz := c.Get(fiber.HeaderAuthorization)
		if strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[len("Bearer "):])
		}

		user, err := resolver.Resolve(c.UserContext(), raw)
		if err != nil {
			if errors.Is(err, auth.ErrUnauthenticated) {
				return fiber.NewError(http.StatusUnauthorized, "could not validate credentials")
			}
			return fiber.NewError(http.StatusInternalServerError, "identity lookup failed")
		}

		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user resolved by RequireUser for this request.
func CurrentUser(c *fiber.Ctx) (identity.User, bool) {
	user, ok := c.Locals(currentUserKey).(identity.User)
	return user, ok
}

// RequireAdmin allows only allowlisted admin accounts through. Must run
// after RequireUser.
func RequireAdmin(cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, "could not validate credentials")
		}
		if !cfg.IsAdmin(user.Email) {
			return fiber.NewError(http.StatusForbidden, "admin access required")
		}
		return c.Next()
	}
}
