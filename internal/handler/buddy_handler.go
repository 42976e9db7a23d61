package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/bioscizone/bioscizone-api/internal/dto"
	"github.com/bioscizone/bioscizone-api/internal/service"
	"github.com/bioscizone/bioscizone-api/internal/utils"
)

// BuddyHandler exposes the public buddy browsing and submission endpoints.
type BuddyHandler struct {
	service service.BuddyService
	logger  zerolog.Logger
}

// NewBuddyHandler constructs the handler.
func NewBuddyHandler(service service.BuddyService, logger zerolog.Logger) *BuddyHandler {
	return &BuddyHandler{
		service: service,
		logger:  logger.With().Str("component", "buddy_handler").Logger(),
	}
}

// Register attaches routes.
func (h *BuddyHandler) Register(router fiber.Router) {
	router.Get("", h.listApproved)
	router.Post("/submit", h.submit)
}

// listApproved returns only approved submissions. course=All (or empty) means
// no course filter.
func (h *BuddyHandler) listApproved(c *fiber.Ctx) error {
	buddies, err := h.service.ListApproved(c.Context(), c.Query("course"))
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list buddies")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list buddies")
	}

	return utils.SendSuccess(c, "buddies retrieved", buddies)
}

func (h *BuddyHandler) submit(c *fiber.Ctx) error {
	var payload dto.BuddyCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if _, err := h.service.Submit(c.Context(), payload); err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.Error().Err(err).Msg("failed to store buddy submission")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to submit")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "submitted for approval", nil)
}
