package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/bioscizone/bioscizone-api/internal/dto"
	"github.com/bioscizone/bioscizone-api/internal/service"
	"github.com/bioscizone/bioscizone-api/internal/utils"
)

// AdminLabHandler exposes lab listing management endpoints (admin tier).
type AdminLabHandler struct {
	service service.LabService
	logger  zerolog.Logger
}

// NewAdminLabHandler constructs the handler.
func NewAdminLabHandler(service service.LabService, logger zerolog.Logger) *AdminLabHandler {
	return &AdminLabHandler{
		service: service,
		logger:  logger.With().Str("component", "admin_lab_handler").Logger(),
	}
}

// Register attaches routes on the admin group.
func (h *AdminLabHandler) Register(router fiber.Router) {
	router.Post("", h.create)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *AdminLabHandler) create(c *fiber.Ctx) error {
	var payload dto.LabCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	lab, err := h.service.Create(c.Context(), usernameFromContext(c), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.Error().Err(err).Msg("failed to create lab")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create lab")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "lab created", lab)
}

func (h *AdminLabHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.LabUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := h.service.Update(c.Context(), usernameFromContext(c), id, payload); err != nil {
		if errors.Is(err, service.ErrLabNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "lab not found")
		}
		h.logger.Error().Err(err).Uint("lab_id", id).Msg("failed to update lab")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to update lab")
	}

	return utils.SendSuccess(c, "lab updated", nil)
}

func (h *AdminLabHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.Context(), usernameFromContext(c), id); err != nil {
		h.logger.Error().Err(err).Uint("lab_id", id).Msg("failed to delete lab")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to delete lab")
	}

	return utils.SendSuccess(c, "lab deleted", nil)
}
