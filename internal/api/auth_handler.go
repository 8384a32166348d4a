package api

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/merajfaizan/gym-management-backend/internal/service"
	"github.com/merajfaizan/gym-management-backend/internal/token"
)

type AuthHandler struct {
	authService service.AuthService
	tokens      *token.Service
	validate    *validator.Validate
}

func NewAuthHandler(authService service.AuthService, tokens *token.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokens:      tokens,
		validate:    validator.New(),
	}
}

type JWTRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IssueToken signs whatever identity the caller posts, matching the
// public /jwt endpoint of the original frontend contract. No field is
// validated; the claims carry the body verbatim.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var request JWTRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	tok, err := h.tokens.Issue(request.ID, request.Name, request.Email, request.Role)
	if err != nil {
		slog.ErrorContext(c.UserContext(), "signing token failed", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": tok})
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"omitempty,oneof=member admin"`
	Password string `json:"password" validate:"required,min=8"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var request RegisterRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	user, tok, err := h.authService.Register(c.Context(), request.Name, request.Email, request.Role, request.Password)

	if err != nil {
		var pgErr *pgconn.PgError

		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email already exists"})
		}

		slog.ErrorContext(c.UserContext(), "register failed", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Successfully registered",
		"user":    user.Public(),
		"token":   tok,
	})
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var request LoginRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	user, tok, err := h.authService.Login(c.Context(), request.Email, request.Password)

	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailNotRegistered), errors.Is(err, service.ErrWrongPassword):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			slog.ErrorContext(c.UserContext(), "login failed", slog.String("error", err.Error()))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Login successful",
		"user":    user.Public(),
		"token":   tok,
	})
}
