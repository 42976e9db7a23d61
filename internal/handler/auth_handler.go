package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/bioscizone/bioscizone-api/internal/dto"
	"github.com/bioscizone/bioscizone-api/internal/service"
	"github.com/bioscizone/bioscizone-api/internal/utils"
)

// AuthHandler exposes login, identity, and bootstrap/registration endpoints.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler constructs the auth handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("component", "auth_handler").Logger(),
	}
}

// Register wires the admin-prefix auth routes. The /me route is mounted behind
// the JWT middleware by the router.
func (h *AuthHandler) Register(router fiber.Router, jwtMiddleware fiber.Handler) {
	router.Post("/login", h.login)
	router.Post("/seed-admin", h.seedAdmin)
	router.Get("/me", jwtMiddleware, h.me)
}

// RegisterPublic wires the unauthenticated registration probe.
func (h *AuthHandler) RegisterPublic(router fiber.Router) {
	router.Get("/registration-status", h.registrationStatus)
}

// login accepts a form-encoded credential pair and returns a bearer token.
func (h *AuthHandler) login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" || password == "" {
		return utils.SendError(c, fiber.StatusUnauthorized, "incorrect username or password")
	}

	token, err := h.service.Login(c.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return utils.SendError(c, fiber.StatusUnauthorized, "incorrect username or password")
		}
		h.logger.Error().Err(err).Msg("login failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "login failed")
	}

	return c.Status(fiber.StatusOK).JSON(token)
}

func (h *AuthHandler) me(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(dto.MeResponse{
		Username: usernameFromContext(c),
		Role:     roleFromContext(c),
	})
}

// seedAdmin creates the first admin, or registers a new one when the
// registration_enabled setting is true. Credentials arrive as query
// parameters for parity with the legacy bootstrap tooling.
func (h *AuthHandler) seedAdmin(c *fiber.Ctx) error {
	username := c.Query("username")
	password := c.Query("password")
	role := c.Query("role", "admin")
	if username == "" || password == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "username and password are required")
	}

	identity, err := h.service.SeedAdmin(c.Context(), username, password, role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRegistrationDisabled):
			return utils.SendError(c, fiber.StatusBadRequest, "registration is disabled, please contact a system administrator")
		case errors.Is(err, service.ErrUsernameTaken):
			return utils.SendError(c, fiber.StatusBadRequest, "username already exists")
		default:
			h.logger.Error().Err(err).Msg("seed admin failed")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to create admin")
		}
	}

	message := fmt.Sprintf("admin %q with role %q created successfully", identity.Username, identity.Role)
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, message, nil)
}

func (h *AuthHandler) registrationStatus(c *fiber.Ctx) error {
	enabled, err := h.service.RegistrationEnabled(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to read registration status")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to read registration status")
	}

	return c.Status(fiber.StatusOK).JSON(dto.RegistrationStatusResponse{RegistrationEnabled: enabled})
}
