package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/bioscizone/bioscizone-api/internal/dto"
	"github.com/bioscizone/bioscizone-api/internal/service"
	"github.com/bioscizone/bioscizone-api/internal/utils"
)

// AdminAccountHandler exposes superadmin account management endpoints.
type AdminAccountHandler struct {
	service service.AdminAccountService
	logger  zerolog.Logger
}

// NewAdminAccountHandler constructs the handler.
func NewAdminAccountHandler(service service.AdminAccountService, logger zerolog.Logger) *AdminAccountHandler {
	return &AdminAccountHandler{
		service: service,
		logger:  logger.With().Str("component", "admin_account_handler").Logger(),
	}
}

// Register attaches routes.
func (h *AdminAccountHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *AdminAccountHandler) list(c *fiber.Ctx) error {
	admins, err := h.service.List(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list admins")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list admins")
	}

	return utils.SendSuccess(c, "admins retrieved", admins)
}

func (h *AdminAccountHandler) create(c *fiber.Ctx) error {
	var payload dto.AdminCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	admin, err := h.service.Create(c.Context(), usernameFromContext(c), payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			return utils.SendError(c, fiber.StatusBadRequest, "username already exists")
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		default:
			h.logger.Error().Err(err).Msg("failed to create admin")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to create admin")
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "admin created", admin)
}

func (h *AdminAccountHandler) update(c *fiber.Ctx) error {
	var payload dto.AdminUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	err := h.service.Update(c.Context(), usernameFromContext(c), c.Params("id"), payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAdminNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "admin not found")
		case errors.Is(err, service.ErrUsernameTaken):
			return utils.SendError(c, fiber.StatusBadRequest, "username already exists")
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		default:
			h.logger.Error().Err(err).Msg("failed to update admin")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to update admin")
		}
	}

	return utils.SendSuccess(c, "admin updated", nil)
}

func (h *AdminAccountHandler) delete(c *fiber.Ctx) error {
	err := h.service.Delete(c.Context(), usernameFromContext(c), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAdminNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "admin not found")
		case errors.Is(err, service.ErrSelfDeletion):
			return utils.SendError(c, fiber.StatusBadRequest, "cannot delete yourself")
		default:
			h.logger.Error().Err(err).Msg("failed to delete admin")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to delete admin")
		}
	}

	return utils.SendSuccess(c, "admin deleted", nil)
}
