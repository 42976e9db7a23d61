package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/bioscizone/bioscizone-api/internal/models"
)

// CourseFilterAll is the sentinel course value meaning "no filter".
const CourseFilterAll = "All"

// BuddyRepository persists buddy submissions.
type BuddyRepository interface {
	Create(ctx context.Context, buddy *models.Buddy) error
	GetByID(ctx context.Context, id uint) (models.Buddy, error)
	ListApproved(ctx context.Context, course string) ([]models.Buddy, error)
	ListPending(ctx context.Context) ([]models.Buddy, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
	SearchApproved(ctx context.Context, keyword string) ([]models.Buddy, error)
}

type buddyRepository struct {
	db *gorm.DB
}

// NewBuddyRepository constructs a repository backed by GORM.
func NewBuddyRepository(db *gorm.DB) BuddyRepository {
	return &buddyRepository{db: db}
}

func (r *buddyRepository) Create(ctx context.Context, buddy *models.Buddy) error {
	if buddy.Status == "" {
		buddy.Status = models.BuddyStatusPending
	}
	return r.db.WithContext(ctx).Create(buddy).Error
}

func (r *buddyRepository) GetByID(ctx context.Context, id uint) (models.Buddy, error) {
	var buddy models.Buddy
	err := r.db.WithContext(ctx).First(&buddy, id).Error
	return buddy, err
}

func (r *buddyRepository) ListApproved(ctx context.Context, course string) ([]models.Buddy, error) {
	query := r.db.WithContext(ctx).Where("status = ?", models.BuddyStatusApproved)

	course = strings.TrimSpace(course)
	if course != "" && course != CourseFilterAll {
		query = query.Where("course = ?", course)
	}

	var buddies []models.Buddy
	err := query.Find(&buddies).Error
	return buddies, err
}

func (r *buddyRepository) ListPending(ctx context.Context) ([]models.Buddy, error) {
	var buddies []models.Buddy
	err := r.db.WithContext(ctx).
		Where("status = ?", models.BuddyStatusPending).
		Find(&buddies).
		Error
	return buddies, err
}

func (r *buddyRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Buddy{}).
		Where("id = ?", id).
		Update("status", status).
		Error
}

func (r *buddyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Buddy{}, id).Error
}

func (r *buddyRepository) SearchApproved(ctx context.Context, keyword string) ([]models.Buddy, error) {
	pattern := "%" + strings.ToLower(keyword) + "%"

	var buddies []models.Buddy
	err := r.db.WithContext(ctx).
		Where("status = ?", models.BuddyStatusApproved).
		Where("LOWER(full_name) LIKE ? OR LOWER(research_topic) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern, pattern).
		Find(&buddies).
		Error
	return buddies, err
}
