package repositories

import (
	"context"
	"testing"
	"time"

	"temple-admin/internal/database"
	"temple-admin/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestUserRepository(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

type UserRepositorySuite struct {
	suite.Suite
	db      *database.DB
	ctx     context.Context
	repo    UserRepositoryInterface
	audit   AuditLogRepositoryInterface
	revoked RevokedTokenRepositoryInterface
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.ctx = context.Background()
	s.repo = NewUserRepository(s.db.DB)
	s.audit = NewAuditLogRepository(s.db.DB)
	s.revoked = NewRevokedTokenRepository(s.db.DB)
}

func (s *UserRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *UserRepositorySuite) TestUserRepository_Create() {
	user := &models.User{
		Email:        "Priya@Example.com ",
		PasswordHash: "hashed_password",
		FullName:     "Priya Sharma",
		Role:         models.RoleStaff,
	}

	err := s.repo.Create(s.ctx, user)
	s.NoError(err)
	s.NotEqual(uuid.Nil, user.ID)
	s.Equal("priya@example.com", user.Email)
	s.NotZero(user.CreatedAt)

	err = s.repo.Create(s.ctx, &models.User{
		Email:        "priya@example.com",
		PasswordHash: "hashed_password",
		FullName:     "Someone Else",
		Role:         models.RoleStaff,
	})
	s.ErrorIs(err, ErrUserAlreadyExists)
}

func (s *UserRepositorySuite) TestUserRepository_GetByEmail() {
	user := database.CreateTestUser(s.T(), s.db, "test@example.com", models.RoleAdmin)

	found, err := s.repo.GetByEmail(s.ctx, "TEST@example.com")
	s.NoError(err)
	s.Equal(user.ID, found.ID)

	_, err = s.repo.GetByEmail(s.ctx, "nonexistent@example.com")
	s.Equal(ErrUserNotFound, err)
}

func (s *UserRepositorySuite) TestUserRepository_UpdateLastLogin() {
	user := database.CreateTestUser(s.T(), s.db, "login@example.com", models.RoleStaff)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	s.Require().NoError(s.repo.UpdateLastLogin(s.ctx, user.ID, at))

	found, err := s.repo.GetByID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found.LastLoginAt)
	s.True(found.LastLoginAt.Equal(at))

	s.ErrorIs(s.repo.UpdateLastLogin(s.ctx, uuid.New(), at), ErrUserNotFound)
}

func (s *UserRepositorySuite) TestUserRepository_ListByRole() {
	database.CreateTestUser(s.T(), s.db, "b@example.com", models.RoleStaff)
	database.CreateTestUser(s.T(), s.db, "a@example.com", models.RoleStaff)
	database.CreateTestUser(s.T(), s.db, "root@example.com", models.RoleSuperAdmin)

	users, total, err := s.repo.List(s.ctx, models.UserFilters{Role: models.RoleStaff})
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Equal("a@example.com", users[0].Email)
}

func (s *UserRepositorySuite) TestAuditLogRepository_CreateAndList() {
	user := database.CreateTestUser(s.T(), s.db, "auditor@example.com", models.RoleAdmin)

	actions := []string{models.AuditActionLogin, models.AuditActionCreate, models.AuditActionCreate}
	for _, action := range actions {
		log := &models.AuditLog{
			UserID:    &user.ID,
			Action:    action,
			Resource:  models.AuditResourceDonation,
			IPAddress: "192.168.1.1",
		}
		s.Require().NoError(s.audit.Create(s.ctx, log))
		s.NotEqual(uuid.Nil, log.ID)
	}
	s.Require().NoError(s.audit.Create(s.ctx, &models.AuditLog{
		Action:   models.AuditActionFailedLogin,
		Resource: models.AuditResourceUser,
	}))

	logs, total, err := s.audit.List(s.ctx, models.AuditLogFilters{UserID: &user.ID})
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Len(logs, 3)

	_, total, err = s.audit.List(s.ctx, models.AuditLogFilters{Action: models.AuditActionCreate, Resource: models.AuditResourceDonation})
	s.Require().NoError(err)
	s.Equal(int64(2), total)

	logs, total, err = s.audit.List(s.ctx, models.AuditLogFilters{ListOptions: models.ListOptions{Limit: 2}})
	s.Require().NoError(err)
	s.Equal(int64(4), total)
	s.Len(logs, 2)
}

func (s *UserRepositorySuite) TestAuditLogRepository_DeleteOlderThan() {
	old := &models.AuditLog{Action: models.AuditActionLogin, Resource: models.AuditResourceUser, CreatedAt: time.Now().UTC().Add(-48 * time.Hour)}
	recent := &models.AuditLog{Action: models.AuditActionLogin, Resource: models.AuditResourceUser}
	s.Require().NoError(s.audit.Create(s.ctx, old))
	s.Require().NoError(s.audit.Create(s.ctx, recent))

	deleted, err := s.audit.DeleteOlderThan(s.ctx, 24*time.Hour)
	s.Require().NoError(err)
	s.Equal(int64(1), deleted)
}

func (s *UserRepositorySuite) TestRevokedTokenRepository() {
	user := database.CreateTestUser(s.T(), s.db, "logout@example.com", models.RoleStaff)

	live := &models.RevokedToken{JTI: "live-jti", UserID: user.ID, ExpiresAt: time.Now().UTC().Add(time.Hour)}
	s.Require().NoError(s.revoked.Create(s.ctx, live))
	s.Require().NoError(s.revoked.Create(s.ctx, &models.RevokedToken{JTI: "live-jti", UserID: user.ID, ExpiresAt: live.ExpiresAt}))
	s.Require().NoError(s.revoked.Create(s.ctx, &models.RevokedToken{JTI: "stale-jti", UserID: user.ID, ExpiresAt: time.Now().UTC().Add(-time.Hour)}))

	revoked, err := s.revoked.IsRevoked(s.ctx, "live-jti")
	s.Require().NoError(err)
	s.True(revoked)

	revoked, err = s.revoked.IsRevoked(s.ctx, "unknown")
	s.Require().NoError(err)
	s.False(revoked)

	purged, err := s.revoked.DeleteExpired(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), purged)
}
