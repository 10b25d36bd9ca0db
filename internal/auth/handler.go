package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/healthx-platform/healthx/internal/identity"
	"github.com/healthx-platform/healthx/pkg/validator"
)

// Handler exposes registration and login endpoints.
type Handler struct {
	ids    *identity.Service
	tokens *TokenService
	logger *slog.Logger
}

// NewHandler builds an auth HTTP handler.
func NewHandler(ids *identity.Service, tokens *TokenService, logger *slog.Logger) *Handler {
	return &Handler{ids: ids, tokens: tokens, logger: logger}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public shape of a user record. The password hash never
// leaves the identity package boundary.
type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewUserResponse shapes a user for API output.
func NewUserResponse(user identity.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		FullName:   user.FullName,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// Register creates a new account.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	if errs := validator.ValidateRegister(req.Email, req.Password, req.FullName); errs.HasErrors() {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	user, err := h.ids.Register(c.UserContext(), identity.Credentials{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		if errors.Is(err, identity.ErrDuplicateEmail) {
			return fiber.NewError(http.StatusConflict, "email already registered")
		}
		return fiber.NewError(http.StatusInternalServerError, "registration failed")
	}

	h.logger.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user_id": user.ID,
	})
}

// Login validates credentials and issues an access token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	if errs := validator.ValidateLogin(req.Email, req.Password); errs.HasErrors() {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	user, err := h.ids.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrNotFound), errors.Is(err, identity.ErrInvalidCredential):
			// Same message for both so login cannot be used to enumerate accounts.
			return fiber.NewError(http.StatusUnauthorized, "incorrect email or password")
		case errors.Is(err, identity.ErrUnverified):
			return fiber.NewError(http.StatusUnauthorized, "please verify your email before logging in")
		default:
			return fiber.NewError(http.StatusInternalServerError, "login failed")
		}
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "token issuance failed")
	}

	return c.Status(http.StatusOK).JSON(loginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        NewUserResponse(user),
	})
}
