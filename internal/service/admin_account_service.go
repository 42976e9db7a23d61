package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/bioscizone/bioscizone-api/internal/auth"
	"github.com/bioscizone/bioscizone-api/internal/dto"
	"github.com/bioscizone/bioscizone-api/internal/models"
	"github.com/bioscizone/bioscizone-api/internal/repository"
)

var (
	// ErrAdminNotFound indicates the referenced admin account is absent.
	ErrAdminNotFound = errors.New("admin not found")
	// ErrSelfDeletion indicates an admin tried to delete their own account.
	ErrSelfDeletion = errors.New("cannot delete yourself")
)

// AdminAccountService manages admin accounts on behalf of superadmins.
type AdminAccountService interface {
	List(ctx context.Context) ([]dto.AdminResponse, error)
	Create(ctx context.Context, actor string, req dto.AdminCreateRequest) (dto.AdminResponse, error)
	Update(ctx context.Context, actor, id string, req dto.AdminUpdateRequest) error
	Delete(ctx context.Context, actor, id string) error
}

type adminAccountService struct {
	repo      repository.AdminRepository
	audit     AuditService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAdminAccountService constructs the admin account service.
func NewAdminAccountService(repo repository.AdminRepository, audit AuditService, validate *validator.Validate, logger zerolog.Logger) AdminAccountService {
	return &adminAccountService{
		repo:      repo,
		audit:     audit,
		validator: validate,
		logger:    logger.With().Str("component", "admin_account_service").Logger(),
	}
}

func (s *adminAccountService) List(ctx context.Context) ([]dto.AdminResponse, error) {
	admins, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.AdminResponse, 0, len(admins))
	for _, admin := range admins {
		items = append(items, toAdminResponse(admin))
	}
	return items, nil
}

func (s *adminAccountService) Create(ctx context.Context, actor string, req dto.AdminCreateRequest) (dto.AdminResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.AdminResponse{}, err
	}

	username := strings.TrimSpace(req.Username)
	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return dto.AdminResponse{}, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.AdminResponse{}, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return dto.AdminResponse{}, err
	}

	admin := models.Admin{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Role:         normalizeRole(req.Role),
		Email:        strings.TrimSpace(req.Email),
	}
	if err := s.repo.Create(ctx, &admin); err != nil {
		return dto.AdminResponse{}, err
	}

	s.audit.Record(ctx, actor, models.AuditActionCreate, "admin", admin.ID, map[string]interface{}{
		"username": admin.Username,
		"role":     admin.Role,
	})

	return toAdminResponse(admin), nil
}

// Update applies a partial change set. An empty change set is a successful
// no-op and produces no audit entry.
func (s *adminAccountService) Update(ctx context.Context, actor, id string, req dto.AdminUpdateRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAdminNotFound
		}
		return err
	}

	fields := map[string]interface{}{}
	details := map[string]interface{}{}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if existing, err := s.repo.GetByUsername(ctx, username); err == nil && existing.ID != id {
			return ErrUsernameTaken
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		fields["username"] = username
		details["username"] = username
	}

	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return err
		}
		fields["hashed_password"] = hash
		details["password"] = "[changed]"
	}

	if req.Role != nil {
		role := normalizeRole(*req.Role)
		fields["role"] = role
		details["role"] = role
	}

	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		fields["email"] = email
		details["email"] = email
	}

	if len(fields) == 0 {
		return nil
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, models.AuditActionUpdate, "admin", id, details)
	return nil
}

// Delete removes an admin account. Self-deletion is rejected regardless of
// the caller's role, even for the sole superadmin.
func (s *adminAccountService) Delete(ctx context.Context, actor, id string) error {
	admin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAdminNotFound
		}
		return err
	}

	if admin.Username == actor {
		return ErrSelfDeletion
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, models.AuditActionDelete, "admin", id, map[string]interface{}{
		"username": admin.Username,
	})
	return nil
}

func toAdminResponse(admin models.Admin) dto.AdminResponse {
	return dto.AdminResponse{
		ID:       admin.ID,
		Username: admin.Username,
		Role:     admin.Role,
		Email:    admin.Email,
	}
}
