package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/bioscizone/bioscizone-api/internal/service"
	"github.com/bioscizone/bioscizone-api/internal/utils"
)

// ArticleHandler exposes the public article read endpoints.
type ArticleHandler struct {
	service service.ArticleService
	logger  zerolog.Logger
}

// NewArticleHandler constructs the handler.
func NewArticleHandler(service service.ArticleService, logger zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		service: service,
		logger:  logger.With().Str("component", "article_handler").Logger(),
	}
}

// Register attaches routes.
func (h *ArticleHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
}

func (h *ArticleHandler) list(c *fiber.Ctx) error {
	articles, err := h.service.List(c.Context(), c.Query("category"))
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list articles")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list articles")
	}

	return utils.SendSuccess(c, "articles retrieved", articles)
}

func (h *ArticleHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	article, err := h.service.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "article not found")
		}
		h.logger.Error().Err(err).Uint("article_id", id).Msg("failed to fetch article")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch article")
	}

	return utils.SendSuccess(c, "article retrieved", article)
}
