package routes

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/healthx-platform/healthx/internal/auth"
	"github.com/healthx-platform/healthx/internal/middleware"
)

// RegisterAuthRoutes wires registration and login endpoints.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler, rateLimiter fiber.Handler) {
	group := r.Group("/auth")
	group.Post("/register", h.Register)
	if rateLimiter != nil {
		group.Post("/login", rateLimiter, h.Login)
	} else {
		group.Post("/login", h.Login)
	}
}

// RegisterProfileRoute wires the authenticated profile endpoint.
func RegisterProfileRoute(r fiber.Router, requireUser fiber.Handler) {
	r.Get("/user/profile", requireUser, func(c *fiber.Ctx) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, "could not validate credentials")
		}
		return c.Status(http.StatusOK).JSON(auth.NewUserResponse(user))
	})
}
