package handlers

import (
	"temple-admin/internal/dto"
	"temple-admin/internal/errors"
	"temple-admin/internal/models"
	"temple-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// ApplicationHandler handles membership applications
type ApplicationHandler struct {
	applicationService services.ApplicationServiceInterface
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applicationService services.ApplicationServiceInterface) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// approvalResult is returned when an application is approved
type approvalResult struct {
	Application *models.Application `json:"application"`
	Member      *models.Member      `json:"member"`
}

// SubmitApplication accepts the public membership form
// @Summary Submit membership application
// @Description Public endpoint, no authentication required
// @Tags Applications
// @Accept json
// @Produce json
// @Param request body dto.SubmitApplicationRequest true "Application"
// @Success 201 {object} SuccessResponse{data=models.Application}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Failure 404 {object} errors.ErrorResponse "COMMUNITY_001"
// @Router /api/v1/applications [post]
func (h *ApplicationHandler) SubmitApplication(c echo.Context) error {
	var req dto.SubmitApplicationRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	application, err := h.applicationService.Submit(c.Request().Context(), &req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendCreated(c, application)
}

// @Router /api/v1/applications/{id} [get]
func (h *ApplicationHandler) GetApplication(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	application, err := h.applicationService.Get(c.Request().Context(), id)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendData(c, application)
}

// @Router /api/v1/applications [get]
func (h *ApplicationHandler) ListApplications(c echo.Context) error {
	communityID, err := optionalUUIDQuery(c, "communityId")
	if err != nil {
		return sendBadRequest(c, err)
	}

	filters := models.ApplicationFilters{
		ListOptions: listOptions(c),
		CommunityID: communityID,
		Status:      c.QueryParam("status"),
	}

	applications, total, err := h.applicationService.List(c.Request().Context(), filters)
	if err != nil {
		return SendSystemError(c, errors.SystemDatabaseError, err)
	}

	return SendList(c, applications, total, filters.Limit, filters.Offset)
}

// ApproveApplication approves a pending application and creates the member
// @Summary Approve application
// @Tags Applications
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body dto.ReviewRequest false "Review note"
// @Success 200 {object} SuccessResponse{data=approvalResult}
// @Failure 409 {object} errors.ErrorResponse "APPLICATION_002 - Already reviewed"
// @Router /api/v1/applications/{id}/approve [post]
func (h *ApplicationHandler) ApproveApplication(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	var req dto.ReviewRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	application, member, err := h.applicationService.Approve(c.Request().Context(), actorFromContext(c), id, req.Note)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendData(c, approvalResult{Application: application, Member: member})
}

// @Router /api/v1/applications/{id}/reject [post]
func (h *ApplicationHandler) RejectApplication(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	var req dto.ReviewRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	application, err := h.applicationService.Reject(c.Request().Context(), actorFromContext(c), id, req.Note)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendData(c, application)
}
