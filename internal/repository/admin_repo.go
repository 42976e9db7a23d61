package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bioscizone/bioscizone-api/internal/models"
)

// Columns an admin partial update may rewrite. Anything else supplied by a
// caller is discarded before the statement is built.
var adminMutableColumns = map[string]struct{}{
	"username":        {},
	"hashed_password": {},
	"role":            {},
	"email":           {},
}

// AdminRepository persists admin accounts.
type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (models.Admin, error)
	GetByID(ctx context.Context, id string) (models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]models.Admin, error)
	ListEmails(ctx context.Context) ([]string, error)
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository constructs a repository backed by GORM.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	return admin, err
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&admin).Error
	return admin, err
}

func (r *adminRepository) Create(ctx context.Context, admin *models.Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *adminRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	allowed := map[string]interface{}{}
	for column, value := range fields {
		if _, ok := adminMutableColumns[column]; ok {
			allowed[column] = value
		}
	}
	if len(allowed) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Model(&models.Admin{}).
		Where("id = ?", id).
		Updates(allowed).
		Error
}

func (r *adminRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Admin{}).Error
}

func (r *adminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Admin{}).Count(&count).Error
	return count, err
}

func (r *adminRepository) List(ctx context.Context) ([]models.Admin, error) {
	var admins []models.Admin
	err := r.db.WithContext(ctx).Order("username").Find(&admins).Error
	return admins, err
}

func (r *adminRepository) ListEmails(ctx context.Context) ([]string, error) {
	var emails []string
	err := r.db.WithContext(ctx).
		Model(&models.Admin{}).
		Where("email IS NOT NULL AND email <> ''").
		Pluck("email", &emails).
		Error
	return emails, err
}
