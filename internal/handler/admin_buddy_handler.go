package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/bioscizone/bioscizone-api/internal/service"
	"github.com/bioscizone/bioscizone-api/internal/utils"
)

// AdminBuddyHandler exposes buddy moderation endpoints (admin tier).
type AdminBuddyHandler struct {
	service service.BuddyService
	logger  zerolog.Logger
}

// NewAdminBuddyHandler constructs the handler.
func NewAdminBuddyHandler(service service.BuddyService, logger zerolog.Logger) *AdminBuddyHandler {
	return &AdminBuddyHandler{
		service: service,
		logger:  logger.With().Str("component", "admin_buddy_handler").Logger(),
	}
}

// Register attaches routes on the admin group.
func (h *AdminBuddyHandler) Register(router fiber.Router) {
	router.Get("/pending", h.listPending)
	router.Patch("/approve-buddy/:id", h.approve)
	router.Delete("/buddies/:id", h.delete)
}

func (h *AdminBuddyHandler) listPending(c *fiber.Ctx) error {
	buddies, err := h.service.ListPending(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list pending buddies")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list pending buddies")
	}

	return utils.SendSuccess(c, "pending buddies retrieved", buddies)
}

func (h *AdminBuddyHandler) approve(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Approve(c.Context(), usernameFromContext(c), id); err != nil {
		if errors.Is(err, service.ErrBuddyNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "buddy not found")
		}
		h.logger.Error().Err(err).Uint("buddy_id", id).Msg("failed to approve buddy")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to approve buddy")
	}

	return utils.SendSuccess(c, "buddy approved", nil)
}

func (h *AdminBuddyHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.Context(), usernameFromContext(c), id); err != nil {
		h.logger.Error().Err(err).Uint("buddy_id", id).Msg("failed to delete buddy")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to delete buddy")
	}

	return utils.SendSuccess(c, "buddy deleted", nil)
}
