package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/bioscizone/bioscizone-api/internal/service"
	"github.com/bioscizone/bioscizone-api/internal/utils"
)

// SearchHandler exposes the public global search endpoint.
type SearchHandler struct {
	service service.SearchService
	logger  zerolog.Logger
}

// NewSearchHandler constructs the handler.
func NewSearchHandler(service service.SearchService, logger zerolog.Logger) *SearchHandler {
	return &SearchHandler{
		service: service,
		logger:  logger.With().Str("component", "search_handler").Logger(),
	}
}

// Register attaches routes.
func (h *SearchHandler) Register(router fiber.Router) {
	router.Get("", h.search)
}

func (h *SearchHandler) search(c *fiber.Ctx) error {
	result, err := h.service.Search(c.Context(), c.Query("q"))
	if err != nil {
		h.logger.Error().Err(err).Msg("search failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "search failed")
	}

	return utils.SendSuccess(c, "search results retrieved", result)
}
