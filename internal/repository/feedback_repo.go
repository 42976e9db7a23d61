package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bioscizone/bioscizone-api/internal/models"
)

// FeedbackRepository persists feedback form submissions.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	List(ctx context.Context) ([]models.Feedback, error)
	MarkRead(ctx context.Context, id uint) error
}

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository constructs a repository backed by GORM.
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepository) List(ctx context.Context) ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&feedbacks).Error
	return feedbacks, err
}

func (r *feedbackRepository) MarkRead(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Feedback{}).
		Where("id = ?", id).
		Update("is_read", true).
		Error
}
