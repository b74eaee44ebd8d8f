package handlers

import (
	stderrors "errors"
	"net/http"

	"temple-admin/internal/dto"
	"temple-admin/internal/errors"
	"temple-admin/internal/models"
	"temple-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication and console user endpoints
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles user authentication
// @Summary Login
// @Description Authenticate with email and password and receive a JWT access token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} SuccessResponse{data=dto.TokenResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Invalid credentials"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	tokens, err := h.authService.Login(c.Request().Context(), &req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidCredentials) {
			return SendError(c, errors.AuthInvalidCredentials)
		}
		return SendSystemError(c, errors.SystemInternalError, err)
	}

	return SendData(c, tokens)
}

// Logout revokes the presented access token
// @Summary Logout
// @Tags Authentication
// @Security BearerAuth
// @Success 200 {object} SuccessResponse
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	claims, err := getClaimsFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.authService.Logout(c.Request().Context(), claims, getClientIP(c), c.Request().UserAgent()); err != nil {
		if stderrors.Is(err, services.ErrInvalidToken) {
			return SendError(c, errors.AuthInvalidTokenFormat)
		}
		return SendSystemError(c, errors.SystemInternalError, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Logged out successfully"})
}

// Me returns the authenticated user
// @Summary Current user
// @Tags Authentication
// @Security BearerAuth
// @Success 200 {object} SuccessResponse{data=models.User}
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	user, err := h.authService.Me(c.Request().Context(), userID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendData(c, user)
}

// CreateUser creates a console user
// @Summary Create user
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User details"
// @Success 201 {object} SuccessResponse{data=models.User}
// @Failure 409 {object} errors.ErrorResponse "AUTH_006 - User exists"
// @Router /api/v1/users [post]
func (h *AuthHandler) CreateUser(c echo.Context) error {
	var req dto.CreateUserRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.authService.CreateUser(c.Request().Context(), actorFromContext(c), &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendCreated(c, user)
}

// ListUsers lists console users
// @Summary List users
// @Tags Users
// @Security BearerAuth
// @Param role query string false "Filter by role"
// @Success 200 {object} SuccessResponse{data=[]models.User,meta=dto.ListMeta}
// @Router /api/v1/users [get]
func (h *AuthHandler) ListUsers(c echo.Context) error {
	filters := models.UserFilters{
		ListOptions: listOptions(c),
		Role:        c.QueryParam("role"),
	}

	users, total, err := h.authService.ListUsers(c.Request().Context(), filters)
	if err != nil {
		return SendSystemError(c, errors.SystemDatabaseError, err)
	}

	return SendList(c, users, total, filters.Limit, filters.Offset)
}
