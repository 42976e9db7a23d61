package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/bioscizone/bioscizone-api/internal/service"
	"github.com/bioscizone/bioscizone-api/internal/utils"
)

// AdminFeedbackHandler exposes feedback review endpoints (admin tier).
type AdminFeedbackHandler struct {
	service service.FeedbackService
	logger  zerolog.Logger
}

// NewAdminFeedbackHandler constructs the handler.
func NewAdminFeedbackHandler(service service.FeedbackService, logger zerolog.Logger) *AdminFeedbackHandler {
	return &AdminFeedbackHandler{
		service: service,
		logger:  logger.With().Str("component", "admin_feedback_handler").Logger(),
	}
}

// Register attaches routes on the admin group.
func (h *AdminFeedbackHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Patch("/:id/read", h.markRead)
}

func (h *AdminFeedbackHandler) list(c *fiber.Ctx) error {
	feedbacks, err := h.service.List(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list feedback")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list feedback")
	}

	return utils.SendSuccess(c, "feedback retrieved", feedbacks)
}

func (h *AdminFeedbackHandler) markRead(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.MarkRead(c.Context(), id); err != nil {
		h.logger.Error().Err(err).Uint("feedback_id", id).Msg("failed to mark feedback as read")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to update feedback")
	}

	return utils.SendSuccess(c, "feedback marked as read", nil)
}
