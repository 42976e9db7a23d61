package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/bioscizone/bioscizone-api/internal/models"
	"github.com/bioscizone/bioscizone-api/internal/repository"
)

// ErrSettingNotFound indicates the requested setting key is absent.
var ErrSettingNotFound = errors.New("setting not found")

// SettingService manages system settings (superadmin tier).
type SettingService interface {
	List(ctx context.Context) ([]models.SystemSetting, error)
	Get(ctx context.Context, key string) (models.SystemSetting, error)
	Upsert(ctx context.Context, actor, key, value string) error
}

type settingService struct {
	repo   repository.SettingRepository
	audit  AuditService
	logger zerolog.Logger
}

// NewSettingService constructs the setting service.
func NewSettingService(repo repository.SettingRepository, audit AuditService, logger zerolog.Logger) SettingService {
	return &settingService{
		repo:   repo,
		audit:  audit,
		logger: logger.With().Str("component", "setting_service").Logger(),
	}
}

func (s *settingService) List(ctx context.Context) ([]models.SystemSetting, error) {
	return s.repo.List(ctx)
}

func (s *settingService) Get(ctx context.Context, key string) (models.SystemSetting, error) {
	setting, err := s.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.SystemSetting{}, ErrSettingNotFound
		}
		return models.SystemSetting{}, err
	}
	return setting, nil
}

func (s *settingService) Upsert(ctx context.Context, actor, key, value string) error {
	if err := s.repo.Upsert(ctx, key, value, actor); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, models.AuditActionUpdate, "setting", key, map[string]interface{}{
		"value": value,
	})
	return nil
}
