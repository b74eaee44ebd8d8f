package handlers

import (
	"temple-admin/internal/dto"
	"temple-admin/internal/errors"
	"temple-admin/internal/models"
	"temple-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// CommunityHandler handles community endpoints
type CommunityHandler struct {
	communityService services.CommunityServiceInterface
}

// NewCommunityHandler creates a new community handler
func NewCommunityHandler(communityService services.CommunityServiceInterface) *CommunityHandler {
	return &CommunityHandler{communityService: communityService}
}

// CreateCommunity creates a community
// @Summary Create community
// @Tags Communities
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCommunityRequest true "Community details"
// @Success 201 {object} SuccessResponse{data=models.Community}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Failure 409 {object} errors.ErrorResponse "COMMUNITY_002 - Name already taken"
// @Router /api/v1/communities [post]
func (h *CommunityHandler) CreateCommunity(c echo.Context) error {
	var req dto.CreateCommunityRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	community, err := h.communityService.Create(c.Request().Context(), actorFromContext(c), &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendCreated(c, community)
}

// GetCommunity returns one community
// @Summary Get community
// @Tags Communities
// @Security BearerAuth
// @Param id path string true "Community ID"
// @Success 200 {object} SuccessResponse{data=models.Community}
// @Failure 404 {object} errors.ErrorResponse "COMMUNITY_001"
// @Router /api/v1/communities/{id} [get]
func (h *CommunityHandler) GetCommunity(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	community, err := h.communityService.Get(c.Request().Context(), id)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendData(c, community)
}

// UpdateCommunity applies a partial update
// @Summary Update community
// @Tags Communities
// @Security BearerAuth
// @Param id path string true "Community ID"
// @Param request body dto.UpdateCommunityRequest true "Fields to change"
// @Success 200 {object} SuccessResponse{data=models.Community}
// @Router /api/v1/communities/{id} [patch]
func (h *CommunityHandler) UpdateCommunity(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	var req dto.UpdateCommunityRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	community, err := h.communityService.Update(c.Request().Context(), actorFromContext(c), id, &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendData(c, community)
}

// DeleteCommunity soft deletes a community
// @Summary Delete community
// @Tags Communities
// @Security BearerAuth
// @Param id path string true "Community ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/communities/{id} [delete]
func (h *CommunityHandler) DeleteCommunity(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	if err := h.communityService.Delete(c.Request().Context(), actorFromContext(c), id); err != nil {
		return sendServiceError(c, err)
	}

	return SendDeleted(c, "Community deleted")
}

// ListCommunities lists communities
// @Summary List communities
// @Tags Communities
// @Security BearerAuth
// @Param status query string false "active or inactive"
// @Param q query string false "Name search"
// @Param limit query int false "Page size (max 100)" default(20)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {object} SuccessResponse{data=[]models.Community,meta=dto.ListMeta}
// @Router /api/v1/communities [get]
func (h *CommunityHandler) ListCommunities(c echo.Context) error {
	filters := models.CommunityFilters{
		ListOptions: listOptions(c),
		Status:      c.QueryParam("status"),
		Query:       c.QueryParam("q"),
	}

	communities, total, err := h.communityService.List(c.Request().Context(), filters)
	if err != nil {
		return SendSystemError(c, errors.SystemDatabaseError, err)
	}

	return SendList(c, communities, total, filters.Limit, filters.Offset)
}
