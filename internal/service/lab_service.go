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

// ErrLabNotFound indicates the referenced lab listing is absent.
var ErrLabNotFound = errors.New("lab not found")

// LabService covers the public lab directory and admin listing management.
type LabService interface {
	List(ctx context.Context) ([]models.Lab, error)
	Create(ctx context.Context, actor string, req dto.LabCreateRequest) (models.Lab, error)
	Update(ctx context.Context, actor string, id uint, req dto.LabUpdateRequest) error
	Delete(ctx context.Context, actor string, id uint) error
}

type labService struct {
	repo      repository.LabRepository
	audit     AuditService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewLabService constructs the lab service.
func NewLabService(repo repository.LabRepository, audit AuditService, validate *validator.Validate, logger zerolog.Logger) LabService {
	return &labService{
		repo:      repo,
		audit:     audit,
		validator: validate,
		logger:    logger.With().Str("component", "lab_service").Logger(),
	}
}

func (s *labService) List(ctx context.Context) ([]models.Lab, error) {
	return s.repo.List(ctx)
}

func (s *labService) Create(ctx context.Context, actor string, req dto.LabCreateRequest) (models.Lab, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Lab{}, err
	}

	lab := models.Lab{
		Name:          strings.TrimSpace(req.Name),
		LeadName:      strings.TrimSpace(req.LeadName),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		ResearchAreas: strings.TrimSpace(req.ResearchAreas),
	}
	if err := s.repo.Create(ctx, &lab); err != nil {
		return models.Lab{}, err
	}

	s.audit.Record(ctx, actor, models.AuditActionCreate, "lab", strconv.FormatUint(uint64(lab.ID), 10), map[string]interface{}{
		"name": lab.Name,
	})
	return lab, nil
}

func (s *labService) Update(ctx context.Context, actor string, id uint, req dto.LabUpdateRequest) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLabNotFound
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
	s.audit.Record(ctx, actor, models.AuditActionUpdate, "lab", strconv.FormatUint(uint64(id), 10), details)
	return nil
}

func (s *labService) Delete(ctx context.Context, actor string, id uint) error {
	lab, err := s.repo.GetByID(ctx, id)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if lab.ID != 0 {
		s.audit.Record(ctx, actor, models.AuditActionDelete, "lab", strconv.FormatUint(uint64(id), 10), map[string]interface{}{
			"name": lab.Name,
		})
	}
	return nil
}
