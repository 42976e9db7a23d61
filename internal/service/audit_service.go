package service

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/bioscizone/bioscizone-api/internal/models"
	"github.com/bioscizone/bioscizone-api/internal/repository"
)

// AuditService appends entries to the audit trail and reads it back.
//
// Record is invoked after the mutating write it documents, so a crash between
// the two can lose an entry but never logs an entry for a write that did not
// happen. A failed append is logged and never fails the originating action.
type AuditService interface {
	Record(ctx context.Context, actor, action, entityType, entityID string, details map[string]interface{})
	List(ctx context.Context, limit int) ([]models.AuditLog, error)
}

type auditService struct {
	repo   repository.AuditLogRepository
	logger zerolog.Logger
}

// NewAuditService constructs the audit service.
func NewAuditService(repo repository.AuditLogRepository, logger zerolog.Logger) AuditService {
	return &auditService{
		repo:   repo,
		logger: logger.With().Str("component", "audit_service").Logger(),
	}
}

func (s *auditService) Record(ctx context.Context, actor, action, entityType, entityID string, details map[string]interface{}) {
	entry := models.AuditLog{
		AdminUsername: actor,
		Action:        action,
		EntityType:    entityType,
		EntityID:      entityID,
	}
	if len(details) > 0 {
		entry.Details = datatypes.JSONMap(details)
	}

	if err := s.repo.Create(ctx, &entry); err != nil {
		s.logger.Error().Err(err).
			Str("actor", actor).
			Str("action", action).
			Str("entity_type", entityType).
			Msg("failed to append audit entry")
	}
}

func (s *auditService) List(ctx context.Context, limit int) ([]models.AuditLog, error) {
	return s.repo.List(ctx, limit)
}
