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

// SettingHandler exposes superadmin system setting endpoints.
type SettingHandler struct {
	service service.SettingService
	logger  zerolog.Logger
}

// NewSettingHandler constructs the handler.
func NewSettingHandler(service service.SettingService, logger zerolog.Logger) *SettingHandler {
	return &SettingHandler{
		service: service,
		logger:  logger.With().Str("component", "setting_handler").Logger(),
	}
}

// Register attaches routes.
func (h *SettingHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:key", h.get)
	router.Patch("/:key", h.upsert)
}

func (h *SettingHandler) list(c *fiber.Ctx) error {
	settings, err := h.service.List(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list settings")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list settings")
	}

	return utils.SendSuccess(c, "settings retrieved", settings)
}

func (h *SettingHandler) get(c *fiber.Ctx) error {
	setting, err := h.service.Get(c.Context(), c.Params("key"))
	if err != nil {
		if errors.Is(err, service.ErrSettingNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "setting not found")
		}
		h.logger.Error().Err(err).Msg("failed to fetch setting")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch setting")
	}

	return utils.SendSuccess(c, "setting retrieved", setting)
}

// upsert creates the setting when absent or rewrites its value when present.
func (h *SettingHandler) upsert(c *fiber.Ctx) error {
	var payload dto.SettingUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	key := c.Params("key")
	if err := h.service.Upsert(c.Context(), usernameFromContext(c), key, payload.Value); err != nil {
		h.logger.Error().Err(err).Str("key", key).Msg("failed to update setting")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to update setting")
	}

	return utils.SendSuccess(c, fmt.Sprintf("setting %q updated", key), nil)
}
