package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/bioscizone/bioscizone-api/internal/dto"
	"github.com/bioscizone/bioscizone-api/internal/models"
	"github.com/bioscizone/bioscizone-api/internal/repository"
)

// ErrArticleNotFound indicates the referenced article is absent.
var ErrArticleNotFound = errors.New("article not found")

// ArticleService covers public reads and admin article management.
type ArticleService interface {
	List(ctx context.Context, category string) ([]models.Article, error)
	Get(ctx context.Context, id uint) (models.Article, error)
	Create(ctx context.Context, actor string, req dto.ArticleCreateRequest) (models.Article, error)
	Update(ctx context.Context, actor string, id uint, req dto.ArticleUpdateRequest) error
	Delete(ctx context.Context, actor string, id uint) error
}

type articleService struct {
	repo      repository.ArticleRepository
	audit     AuditService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewArticleService constructs the article service.
func NewArticleService(repo repository.ArticleRepository, audit AuditService, validate *validator.Validate, logger zerolog.Logger) ArticleService {
	return &articleService{
		repo:      repo,
		audit:     audit,
		validator: validate,
		logger:    logger.With().Str("component", "article_service").Logger(),
	}
}

func (s *articleService) List(ctx context.Context, category string) ([]models.Article, error) {
	return s.repo.List(ctx, category)
}

func (s *articleService) Get(ctx context.Context, id uint) (models.Article, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Article{}, ErrArticleNotFound
		}
		return models.Article{}, err
	}
	return article, nil
}

func (s *articleService) Create(ctx context.Context, actor string, req dto.ArticleCreateRequest) (models.Article, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Article{}, err
	}

	article := models.Article{
		Category:        strings.TrimSpace(req.Category),
		Title:           strings.TrimSpace(req.Title),
		Content:         req.Content,
		Author:          strings.TrimSpace(req.Author),
		ExternalLink:    strings.TrimSpace(req.ExternalLink),
		FileURL:         strings.TrimSpace(req.FileURL),
		PublicationDate: strings.TrimSpace(req.PublicationDate),
	}
	if err := s.repo.Create(ctx, &article); err != nil {
		return models.Article{}, err
	}

	s.audit.Record(ctx, actor, models.AuditActionCreate, "article", strconv.FormatUint(uint64(article.ID), 10), map[string]interface{}{
		"title":    article.Title,
		"category": article.Category,
	})
	return article, nil
}

// Update rewrites only the supplied fields. An empty partial update is a
// successful no-op and produces no audit entry.
func (s *articleService) Update(ctx context.Context, actor string, id uint, req dto.ArticleUpdateRequest) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArticleNotFound
		}
		return err
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return nil
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return err
	}

	details := make(map[string]interface{}, len(fields))
	for column, value := range fields {
		details[column] = value
	}
	s.audit.Record(ctx, actor, models.AuditActionUpdate, "article", strconv.FormatUint(uint64(id), 10), details)
	return nil
}

// Delete removes an article; missing rows still delete cleanly, and the audit
// entry is written only when a row existed.
func (s *articleService) Delete(ctx context.Context, actor string, id uint) error {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if article.ID != 0 {
		s.audit.Record(ctx, actor, models.AuditActionDelete, "article", strconv.FormatUint(uint64(id), 10), map[string]interface{}{
			"title":    article.Title,
			"category": article.Category,
		})
	}
	return nil
}
