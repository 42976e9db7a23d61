package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/bioscizone/bioscizone-api/internal/service"
	"github.com/bioscizone/bioscizone-api/internal/utils"
)

// LabHandler exposes the public lab directory endpoint.
type LabHandler struct {
	service service.LabService
	logger  zerolog.Logger
}

// NewLabHandler constructs the handler.
func NewLabHandler(service service.LabService, logger zerolog.Logger) *LabHandler {
	return &LabHandler{
		service: service,
		logger:  logger.With().Str("component", "lab_handler").Logger(),
	}
}

// Register attaches routes.
func (h *LabHandler) Register(router fiber.Router) {
	router.Get("", h.list)
}

func (h *LabHandler) list(c *fiber.Ctx) error {
	labs, err := h.service.List(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list labs")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list labs")
	}

	return utils.SendSuccess(c, "labs retrieved", labs)
}
