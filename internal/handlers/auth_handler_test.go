package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"temple-admin/internal/dto"
	"temple-admin/internal/models"
	"temple-admin/internal/services"
	"temple-admin/internal/services/service_mocks"
)

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

type AuthHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	authService *service_mocks.MockAuthServiceInterface
	handler     *AuthHandler
	e           *echo.Echo
}

func (s *AuthHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.authService = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.handler = NewAuthHandler(s.authService)
	s.e = newTestEcho()
}

func (s *AuthHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthHandlerSuite) TestLogin() {
	s.Run("successful login", func() {
		user := &models.User{ID: uuid.New(), Email: "priest@temple.org", FullName: "Head Priest", Role: models.RoleAdmin}
		s.authService.EXPECT().
			Login(gomock.Any(), &dto.LoginRequest{Email: "priest@temple.org", Password: "Secret123!"}, "10.0.0.1", "test-agent").
			Return(&dto.TokenResponse{AccessToken: "jwt", TokenType: "Bearer", ExpiresAt: time.Now().Add(time.Hour), User: user}, nil)

		req := jsonRequest(http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email":    "priest@temple.org",
			"password": "Secret123!",
		})
		req.Header.Set("X-Forwarded-For", "10.0.0.1, 172.16.0.1")
		req.Header.Set("User-Agent", "test-agent")
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)

		s.Require().NoError(s.handler.Login(c))
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"accessToken":"jwt"`)
		s.NotContains(rec.Body.String(), "passwordHash")
	})

	s.Run("invalid credentials", func() {
		s.authService.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrInvalidCredentials)

		req := jsonRequest(http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email":    "priest@temple.org",
			"password": "wrong",
		})
		rec := httptest.NewRecorder()

		s.Require().NoError(s.handler.Login(s.e.NewContext(req, rec)))
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Equal("AUTH_001", decodeError(rec).Code)
	})

	s.Run("missing email returns validation errors", func() {
		req := jsonRequest(http.MethodPost, "/api/v1/auth/login", map[string]string{"password": "x"})
		rec := httptest.NewRecorder()

		err := s.handler.Login(s.e.NewContext(req, rec))
		var validationErrs validator.ValidationErrors
		s.True(errors.As(err, &validationErrs))
	})

	s.Run("malformed body", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader("{not json"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		s.Require().NoError(s.handler.Login(s.e.NewContext(req, rec)))
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("VALIDATION_001", decodeError(rec).Code)
	})
}

func (s *AuthHandlerSuite) TestLogout() {
	s.Run("revokes the token", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)
		authenticate(c, models.RoleStaff)

		s.authService.EXPECT().
			Logout(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		s.Require().NoError(s.handler.Logout(c))
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "Logged out successfully")
	})

	s.Run("no claims in context", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
		rec := httptest.NewRecorder()

		s.Require().NoError(s.handler.Logout(s.e.NewContext(req, rec)))
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Equal("AUTH_002", decodeError(rec).Code)
	})
}

func (s *AuthHandlerSuite) TestMe() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	userID := authenticate(c, models.RoleAdmin)

	s.authService.EXPECT().
		Me(gomock.Any(), userID).
		Return(&models.User{ID: userID, Email: "admin@temple.org", Role: models.RoleAdmin}, nil)

	s.Require().NoError(s.handler.Me(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), userID.String())
}

func (s *AuthHandlerSuite) TestCreateUser() {
	s.Run("created", func() {
		req := jsonRequest(http.MethodPost, "/api/v1/users", map[string]string{
			"email":    "staff@temple.org",
			"password": "LongEnough123!",
			"fullName": "Front Desk",
			"role":     models.RoleStaff,
		})
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)
		adminID := authenticate(c, models.RoleSuperAdmin)

		s.authService.EXPECT().
			CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, actor models.Actor, r *dto.CreateUserRequest) (*models.User, error) {
				s.Equal(adminID, actor.UserID)
				s.Equal(models.RoleSuperAdmin, actor.Role)
				return &models.User{ID: uuid.New(), Email: r.Email, FullName: r.FullName, Role: r.Role}, nil
			})

		s.Require().NoError(s.handler.CreateUser(c))
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("duplicate email", func() {
		req := jsonRequest(http.MethodPost, "/api/v1/users", map[string]string{
			"email":    "staff@temple.org",
			"password": "LongEnough123!",
			"fullName": "Front Desk",
			"role":     models.RoleStaff,
		})
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)
		authenticate(c, models.RoleSuperAdmin)

		s.authService.EXPECT().
			CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrUserAlreadyExists)

		s.Require().NoError(s.handler.CreateUser(c))
		s.Equal(http.StatusConflict, rec.Code)
		s.Equal("AUTH_006", decodeError(rec).Code)
	})
}

func (s *AuthHandlerSuite) TestListUsers() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users?role=staff&limit=500", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.authService.EXPECT().
		ListUsers(gomock.Any(), models.UserFilters{
			ListOptions: models.ListOptions{Limit: models.MaxListLimit},
			Role:        models.RoleStaff,
		}).
		Return([]models.User{{ID: uuid.New()}}, int64(1), nil)

	s.Require().NoError(s.handler.ListUsers(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"limit":100`)
}
