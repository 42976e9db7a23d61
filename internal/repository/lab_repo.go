package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bioscizone/bioscizone-api/internal/models"
)

// Columns a lab partial update may rewrite.
var labMutableColumns = map[string]struct{}{
	"name":           {},
	"lead_name":      {},
	"email":          {},
	"phone":          {},
	"research_areas": {},
}

// LabRepository persists lab listings.
type LabRepository interface {
	List(ctx context.Context) ([]models.Lab, error)
	GetByID(ctx context.Context, id uint) (models.Lab, error)
	Create(ctx context.Context, lab *models.Lab) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type labRepository struct {
	db *gorm.DB
}

// NewLabRepository constructs a repository backed by GORM.
func NewLabRepository(db *gorm.DB) LabRepository {
	return &labRepository{db: db}
}

func (r *labRepository) List(ctx context.Context) ([]models.Lab, error) {
	var labs []models.Lab
	err := r.db.WithContext(ctx).Find(&labs).Error
	return labs, err
}

func (r *labRepository) GetByID(ctx context.Context, id uint) (models.Lab, error) {
	var lab models.Lab
	err := r.db.WithContext(ctx).First(&lab, id).Error
	return lab, err
}

func (r *labRepository) Create(ctx context.Context, lab *models.Lab) error {
	return r.db.WithContext(ctx).Create(lab).Error
}

func (r *labRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	allowed := map[string]interface{}{}
	for column, value := range fields {
		if _, ok := labMutableColumns[column]; ok {
			allowed[column] = value
		}
	}
	if len(allowed) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Model(&models.Lab{}).
		Where("id = ?", id).
		Updates(allowed).
		Error
}

func (r *labRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Lab{}, id).Error
}
