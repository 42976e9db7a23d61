package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bioscizone/bioscizone-api/internal/dto"
	"github.com/bioscizone/bioscizone-api/internal/models"
	"github.com/bioscizone/bioscizone-api/internal/repository"
)

// SearchService performs the public global search. Buddy and article matches
// are computed independently and returned as two separate lists.
type SearchService interface {
	Search(ctx context.Context, query string) (dto.SearchResponse, error)
}

type searchService struct {
	buddies  repository.BuddyRepository
	articles repository.ArticleRepository
	logger   zerolog.Logger
}

// NewSearchService constructs the search service.
func NewSearchService(buddies repository.BuddyRepository, articles repository.ArticleRepository, logger zerolog.Logger) SearchService {
	return &searchService{
		buddies:  buddies,
		articles: articles,
		logger:   logger.With().Str("component", "search_service").Logger(),
	}
}

func (s *searchService) Search(ctx context.Context, query string) (dto.SearchResponse, error) {
	query = strings.TrimSpace(query)

	buddies, err := s.buddies.SearchApproved(ctx, query)
	if err != nil {
		return dto.SearchResponse{}, err
	}

	articles, err := s.articles.Search(ctx, query)
	if err != nil {
		return dto.SearchResponse{}, err
	}

	if buddies == nil {
		buddies = []models.Buddy{}
	}
	if articles == nil {
		articles = []models.Article{}
	}

	return dto.SearchResponse{Buddies: buddies, Articles: articles}, nil
}
