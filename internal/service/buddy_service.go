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

// ErrBuddyNotFound indicates the referenced buddy submission is absent.
var ErrBuddyNotFound = errors.New("buddy not found")

// BuddyService covers the public submission path and admin moderation.
type BuddyService interface {
	Submit(ctx context.Context, req dto.BuddyCreateRequest) (models.Buddy, error)
	ListApproved(ctx context.Context, course string) ([]models.Buddy, error)
	ListPending(ctx context.Context) ([]models.Buddy, error)
	Approve(ctx context.Context, actor string, id uint) error
	Delete(ctx context.Context, actor string, id uint) error
}

type buddyService struct {
	repo      repository.BuddyRepository
	audit     AuditService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewBuddyService constructs the buddy service.
func NewBuddyService(repo repository.BuddyRepository, audit AuditService, validate *validator.Validate, logger zerolog.Logger) BuddyService {
	return &buddyService{
		repo:      repo,
		audit:     audit,
		validator: validate,
		logger:    logger.With().Str("component", "buddy_service").Logger(),
	}
}

// Submit stores a new submission with status pending. It only becomes
// publicly visible after an admin approves it.
func (s *buddyService) Submit(ctx context.Context, req dto.BuddyCreateRequest) (models.Buddy, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Buddy{}, err
	}

	buddy := models.Buddy{
		FullName:        strings.TrimSpace(req.FullName),
		StudentID:       strings.TrimSpace(req.StudentID),
		Course:          strings.TrimSpace(req.Course),
		Email:           strings.TrimSpace(req.Email),
		Phone:           strings.TrimSpace(req.Phone),
		ResearchTopic:   strings.TrimSpace(req.ResearchTopic),
		ResearchField:   strings.TrimSpace(req.ResearchField),
		ResearchSubject: strings.TrimSpace(req.ResearchSubject),
		Description:     strings.TrimSpace(req.Description),
		Status:          models.BuddyStatusPending,
	}
	if err := s.repo.Create(ctx, &buddy); err != nil {
		return models.Buddy{}, err
	}

	return buddy, nil
}

func (s *buddyService) ListApproved(ctx context.Context, course string) ([]models.Buddy, error) {
	return s.repo.ListApproved(ctx, course)
}

func (s *buddyService) ListPending(ctx context.Context) ([]models.Buddy, error) {
	return s.repo.ListPending(ctx)
}

func (s *buddyService) Approve(ctx context.Context, actor string, id uint) error {
	buddy, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBuddyNotFound
		}
		return err
	}

	if err := s.repo.UpdateStatus(ctx, id, models.BuddyStatusApproved); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, models.AuditActionApprove, "bio_buddy", strconv.FormatUint(uint64(id), 10), map[string]interface{}{
		"name":  buddy.FullName,
		"topic": buddy.ResearchTopic,
	})
	return nil
}

// Delete removes a submission. Deleting an already-absent row still succeeds;
// the audit entry is written only when a row actually existed.
func (s *buddyService) Delete(ctx context.Context, actor string, id uint) error {
	buddy, err := s.repo.GetByID(ctx, id)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if buddy.ID != 0 {
		s.audit.Record(ctx, actor, models.AuditActionDelete, "bio_buddy", strconv.FormatUint(uint64(id), 10), map[string]interface{}{
			"name": buddy.FullName,
		})
	}
	return nil
}
