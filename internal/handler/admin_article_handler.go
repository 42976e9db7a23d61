package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/bioscizone/bioscizone-api/internal/dto"
	"github.com/bioscizone/bioscizone-api/internal/service"
	"github.com/bioscizone/bioscizone-api/internal/utils"
)

// AdminArticleHandler exposes article management endpoints (admin tier).
type AdminArticleHandler struct {
	service service.ArticleService
	logger  zerolog.Logger
}

// NewAdminArticleHandler constructs the handler.
func NewAdminArticleHandler(service service.ArticleService, logger zerolog.Logger) *AdminArticleHandler {
	return &AdminArticleHandler{
		service: service,
		logger:  logger.With().Str("component", "admin_article_handler").Logger(),
	}
}

// Register attaches routes on the admin group.
func (h *AdminArticleHandler) Register(router fiber.Router) {
	router.Post("", h.create)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *AdminArticleHandler) create(c *fiber.Ctx) error {
	var payload dto.ArticleCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	article, err := h.service.Create(c.Context(), usernameFromContext(c), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.Error().Err(err).Msg("failed to create article")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create article")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "article created", article)
}

// update applies a partial field set; an empty set still reports success.
func (h *AdminArticleHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.ArticleUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := h.service.Update(c.Context(), usernameFromContext(c), id, payload); err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "article not found")
		}
		h.logger.Error().Err(err).Uint("article_id", id).Msg("failed to update article")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to update article")
	}

	return utils.SendSuccess(c, "article updated", nil)
}

func (h *AdminArticleHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.Context(), usernameFromContext(c), id); err != nil {
		h.logger.Error().Err(err).Uint("article_id", id).Msg("failed to delete article")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to delete article")
	}

	return utils.SendSuccess(c, "article deleted", nil)
}
