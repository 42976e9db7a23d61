package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/bioscizone/bioscizone-api/internal/auth"
	"github.com/bioscizone/bioscizone-api/internal/dto"
	"github.com/bioscizone/bioscizone-api/internal/models"
	"github.com/bioscizone/bioscizone-api/internal/repository"
)

var (
	// ErrInvalidCredentials indicates an unknown username or wrong password.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrRegistrationDisabled indicates public registration is closed.
	ErrRegistrationDisabled = errors.New("registration is disabled")
	// ErrUsernameTaken indicates the requested username already exists.
	ErrUsernameTaken = errors.New("username already exists")
)

// Identity is an authenticated admin identity with its role.
type Identity struct {
	Username string
	Role     string
}

// FallbackCredentials is the statically configured bootstrap credential pair.
// It is only honoured while zero admin rows exist, so the environment pair
// cannot act as a standing superadmin bypass once real accounts are in place.
type FallbackCredentials struct {
	Username string
	Password string
}

func (f FallbackCredentials) configured() bool {
	return f.Username != "" && f.Password != ""
}

func (f FallbackCredentials) matches(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(f.Username), []byte(username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(f.Password), []byte(password)) == 1
	return userOK && passOK
}

// AuthService authenticates admins, mints access tokens, and handles the
// public bootstrap/registration path.
type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (Identity, error)
	Login(ctx context.Context, username, password string) (dto.TokenResponse, error)
	SeedAdmin(ctx context.Context, username, password, role string) (Identity, error)
	RegistrationEnabled(ctx context.Context) (bool, error)
}

type authService struct {
	admins   repository.AdminRepository
	settings repository.SettingRepository
	tokens   *auth.TokenService
	audit    AuditService
	fallback FallbackCredentials
	tokenTTL time.Duration
	logger   zerolog.Logger
}

// NewAuthService constructs the authentication service. tokenTTL is the
// operational lifetime used by the login endpoint.
func NewAuthService(admins repository.AdminRepository, settings repository.SettingRepository, tokens *auth.TokenService, audit AuditService, fallback FallbackCredentials, tokenTTL time.Duration, logger zerolog.Logger) AuthService {
	return &authService{
		admins:   admins,
		settings: settings,
		tokens:   tokens,
		audit:    audit,
		fallback: fallback,
		tokenTTL: tokenTTL,
		logger:   logger.With().Str("component", "auth_service").Logger(),
	}
}

// Authenticate verifies a credential pair. A stored admin row always takes
// precedence for its username; the env fallback pair is consulted only while
// the admins table is empty and grants the superadmin role.
func (s *authService) Authenticate(ctx context.Context, username, password string) (Identity, error) {
	admin, err := s.admins.GetByUsername(ctx, username)
	if err == nil {
		match, verifyErr := auth.VerifyPassword(password, admin.PasswordHash)
		if verifyErr != nil {
			return Identity{}, verifyErr
		}
		if !match {
			return Identity{}, ErrInvalidCredentials
		}

		role := admin.Role
		if role == "" {
			role = models.RoleAdmin
		}
		return Identity{Username: admin.Username, Role: role}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Identity{}, err
	}

	if s.fallback.configured() && s.fallback.matches(username, password) {
		count, countErr := s.admins.Count(ctx)
		if countErr != nil {
			return Identity{}, countErr
		}
		if count == 0 {
			return Identity{Username: username, Role: models.RoleSuperadmin}, nil
		}
		s.logger.Warn().Str("username", username).Msg("fallback credentials rejected: admin accounts exist")
	}

	return Identity{}, ErrInvalidCredentials
}

func (s *authService) Login(ctx context.Context, username, password string) (dto.TokenResponse, error) {
	identity, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return dto.TokenResponse{}, err
	}

	token, err := s.tokens.Issue(identity.Username, identity.Role, s.tokenTTL)
	if err != nil {
		return dto.TokenResponse{}, err
	}

	s.audit.Record(ctx, identity.Username, models.AuditActionLogin, "session", "", map[string]interface{}{
		"role": identity.Role,
	})

	return dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// SeedAdmin creates the first admin unconditionally, or registers a new one
// when the registration_enabled setting is true.
func (s *authService) SeedAdmin(ctx context.Context, username, password, role string) (Identity, error) {
	username = strings.TrimSpace(username)
	role = normalizeRole(role)

	count, err := s.admins.Count(ctx)
	if err != nil {
		return Identity{}, err
	}

	if count > 0 {
		enabled, err := s.RegistrationEnabled(ctx)
		if err != nil {
			return Identity{}, err
		}
		if !enabled {
			return Identity{}, ErrRegistrationDisabled
		}
	}

	if _, err := s.admins.GetByUsername(ctx, username); err == nil {
		return Identity{}, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Identity{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return Identity{}, err
	}

	admin := models.Admin{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.admins.Create(ctx, &admin); err != nil {
		return Identity{}, err
	}

	action := models.AuditActionSeed
	if count > 0 {
		action = models.AuditActionRegister
	}
	s.audit.Record(ctx, username, action, "admin", admin.ID, map[string]interface{}{
		"role": role,
	})

	return Identity{Username: username, Role: role}, nil
}

func (s *authService) RegistrationEnabled(ctx context.Context) (bool, error) {
	setting, err := s.settings.Get(ctx, models.SettingRegistrationEnabled)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return setting.Value == "true", nil
}

func normalizeRole(role string) string {
	role = strings.ToLower(strings.TrimSpace(role))
	if role != models.RoleSuperadmin {
		role = models.RoleAdmin
	}
	return role
}
