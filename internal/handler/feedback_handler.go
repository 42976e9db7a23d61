package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/bioscizone/bioscizone-api/internal/dto"
	"github.com/bioscizone/bioscizone-api/internal/service"
	"github.com/bioscizone/bioscizone-api/internal/utils"
)

// FeedbackHandler exposes the public feedback form endpoint.
type FeedbackHandler struct {
	service service.FeedbackService
	logger  zerolog.Logger
}

// NewFeedbackHandler constructs the handler.
func NewFeedbackHandler(service service.FeedbackService, logger zerolog.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		service: service,
		logger:  logger.With().Str("component", "feedback_handler").Logger(),
	}
}

// Register attaches routes.
func (h *FeedbackHandler) Register(router fiber.Router) {
	router.Post("", h.submit)
}

func (h *FeedbackHandler) submit(c *fiber.Ctx) error {
	var payload dto.FeedbackCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if _, err := h.service.Submit(c.Context(), payload); err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.Error().Err(err).Msg("failed to store feedback")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to submit feedback")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "feedback received", nil)
}
