package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/bioscizone/bioscizone-api/internal/models"
)

// Columns an article partial update may rewrite.
var articleMutableColumns = map[string]struct{}{
	"category":         {},
	"title":            {},
	"content":          {},
	"author":           {},
	"external_link":    {},
	"file_url":         {},
	"publication_date": {},
}

// ArticleRepository persists articles.
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id uint) (models.Article, error)
	List(ctx context.Context, category string) ([]models.Article, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, keyword string) ([]models.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository constructs a repository backed by GORM.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepository) GetByID(ctx context.Context, id uint) (models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).First(&article, id).Error
	return article, err
}

func (r *articleRepository) List(ctx context.Context, category string) ([]models.Article, error) {
	query := r.db.WithContext(ctx)
	if category = strings.TrimSpace(category); category != "" {
		query = query.Where("category = ?", category)
	}

	var articles []models.Article
	err := query.Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	allowed := map[string]interface{}{}
	for column, value := range fields {
		if _, ok := articleMutableColumns[column]; ok {
			allowed[column] = value
		}
	}
	if len(allowed) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ?", id).
		Updates(allowed).
		Error
}

func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Article{}, id).Error
}

func (r *articleRepository) Search(ctx context.Context, keyword string) ([]models.Article, error) {
	pattern := "%" + strings.ToLower(keyword) + "%"

	var articles []models.Article
	err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(author) LIKE ?", pattern, pattern, pattern).
		Find(&articles).
		Error
	return articles, err
}
