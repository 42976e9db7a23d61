package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bioscizone/bioscizone-api/internal/models"
)

// SettingRepository persists system settings keyed by name.
type SettingRepository interface {
	List(ctx context.Context) ([]models.SystemSetting, error)
	Get(ctx context.Context, key string) (models.SystemSetting, error)
	Upsert(ctx context.Context, key, value, updatedBy string) error
}

type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository constructs a repository backed by GORM.
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) List(ctx context.Context) ([]models.SystemSetting, error) {
	var settings []models.SystemSetting
	err := r.db.WithContext(ctx).Order("key").Find(&settings).Error
	return settings, err
}

func (r *settingRepository) Get(ctx context.Context, key string) (models.SystemSetting, error) {
	var setting models.SystemSetting
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error
	return setting, err
}

func (r *settingRepository) Upsert(ctx context.Context, key, value, updatedBy string) error {
	setting := models.SystemSetting{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
		UpdatedBy: updatedBy,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at", "updated_by"}),
		}).
		Create(&setting).
		Error
}
