package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"temple-admin/internal/dto"
	"temple-admin/internal/models"
	"temple-admin/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
)

// AuthService handles console sign-in and user management
type AuthService struct {
	userRepo         repositories.UserRepositoryInterface
	revokedTokenRepo repositories.RevokedTokenRepositoryInterface
	passwordService  PasswordServiceInterface
	tokenService     TokenServiceInterface
	auditService     AuditServiceInterface
	metrics          MetricsRecorderInterface
	logger           *slog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	revokedTokenRepo repositories.RevokedTokenRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	auditService AuditServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:         userRepo,
		revokedTokenRepo: revokedTokenRepo,
		passwordService:  passwordService,
		tokenService:     tokenService,
		auditService:     auditService,
		metrics:          metrics,
		logger:           logger,
	}
}

// Login authenticates a user and returns an access token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.auditFailedLogin(ctx, req.Email, ipAddress, userAgent, "user_not_found")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		s.auditFailedLogin(ctx, req.Email, ipAddress, userAgent, "invalid_password")
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.logger.WarnContext(ctx, "failed to update last login",
			"error", err,
			"user_id", user.ID)
	} else {
		user.LastLoginAt = &now
	}

	accessToken, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	actor := models.Actor{UserID: user.ID, Role: user.Role, IPAddress: ipAddress, UserAgent: userAgent}
	s.auditService.Record(ctx, actor, models.AuditActionLogin, models.AuditResourceUser, user.ID.String(), nil)
	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_success"})

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}

// Logout revokes the presented access token until it would have expired
func (s *AuthService) Logout(ctx context.Context, claims *models.CustomClaims, ipAddress, userAgent string) error {
	if claims == nil || claims.ID == "" {
		return ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	expiresAt := time.Now().UTC().Add(24 * time.Hour)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	if err := s.revokedTokenRepo.Create(ctx, &models.RevokedToken{
		JTI:       claims.ID,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	actor := models.Actor{UserID: userID, Role: claims.Role, IPAddress: ipAddress, UserAgent: userAgent}
	s.auditService.Record(ctx, actor, models.AuditActionLogout, models.AuditResourceUser, userID.String(), nil)
	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "logout"})

	return nil
}

// IsRevoked reports whether the token was signed out
func (s *AuthService) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return s.revokedTokenRepo.IsRevoked(ctx, jti)
}

// Me returns the signed-in user
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// CreateUser adds a console user
func (s *AuthService) CreateUser(ctx context.Context, actor models.Actor, req *dto.CreateUserRequest) (*models.User, error) {
	communityID, err := parseOptionalUUID(req.CommunityID)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, invalidInput(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FullName:     req.FullName,
		Role:         req.Role,
		CommunityID:  communityID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.auditService.Record(ctx, actor, models.AuditActionCreate, models.AuditResourceUser, user.ID.String(),
		map[string]interface{}{"email": user.Email, "role": user.Role})

	return user, nil
}

// ListUsers returns console users
func (s *AuthService) ListUsers(ctx context.Context, filters models.UserFilters) ([]models.User, int64, error) {
	users, total, err := s.userRepo.List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

func (s *AuthService) auditFailedLogin(ctx context.Context, email, ipAddress, userAgent, reason string) {
	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_failed"})
	s.auditService.Record(ctx, models.Actor{IPAddress: ipAddress, UserAgent: userAgent},
		models.AuditActionFailedLogin, models.AuditResourceUser, "",
		map[string]interface{}{"email": email, "reason": reason})
}
