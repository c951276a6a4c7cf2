package handler

import (
	"errors"
	"strings"

	"loadharbour/internal/core/server"
	"loadharbour/internal/features/auth/domain"
	"loadharbour/internal/features/auth/ports"
	"loadharbour/internal/features/auth/service"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for accounts and sessions.
type AuthHandler struct {
	service ports.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

// Register mounts the auth routes on the router.
func (h *AuthHandler) Register(r fiber.Router) {
	r.Post("/auth/register", h.RegisterAccount)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/logout", h.Logout)
}

// RegisterAccount handles POST /auth/register.
// @Summary Register an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body domain.Credentials true "Email, password, name, role"
// @Success 201 {object} domain.User
// @Failure 400 {object} server.ErrorBody
// @Failure 409 {object} server.ErrorBody
// @Router /auth/register [post]
func (h *AuthHandler) RegisterAccount(c *fiber.Ctx) error {
	var creds domain.Credentials
	if err := c.BodyParser(&creds); err != nil {
		return server.Fail(c, fiber.StatusBadRequest, server.CodeValidation, "Invalid request body")
	}

	user, err := h.service.Register(c.Context(), creds)
	if err != nil {
		return server.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login handles POST /auth/login.
// @Summary Sign in
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body domain.Credentials true "Email and password"
// @Success 200 {object} domain.Session
// @Failure 401 {object} server.ErrorBody
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var creds domain.Credentials
	if err := c.BodyParser(&creds); err != nil {
		return server.Fail(c, fiber.StatusBadRequest, server.CodeValidation, "Invalid request body")
	}

	session, err := h.service.Login(c.Context(), creds)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return server.Fail(c, fiber.StatusUnauthorized, server.CodeUnauthorized, err.Error())
		}
		return server.RespondError(c, err)
	}

	return c.JSON(session)
}

// Logout handles POST /auth/logout.
// @Summary Sign out
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.service.Logout(c.Context(), bearerToken(c)); err != nil {
		return server.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// Middleware guards a router group behind a bearer token. The resolved
// user lands in c.Locals("user").
func Middleware(svc ports.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := svc.Resolve(c.Context(), bearerToken(c))
		if err != nil {
			return server.Fail(c, fiber.StatusUnauthorized, server.CodeUnauthorized, "Authentication required")
		}
		c.Locals("user", user)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	const prefix = "Bearer "
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}
