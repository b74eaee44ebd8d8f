package handlers

import (
	"temple-admin/internal/dto"
	"temple-admin/internal/errors"
	"temple-admin/internal/models"
	"temple-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// VolunteerHandler handles volunteer endpoints
type VolunteerHandler struct {
	volunteerService services.VolunteerServiceInterface
}

// NewVolunteerHandler creates a new volunteer handler
func NewVolunteerHandler(volunteerService services.VolunteerServiceInterface) *VolunteerHandler {
	return &VolunteerHandler{volunteerService: volunteerService}
}

func (h *VolunteerHandler) CreateVolunteer(c echo.Context) error {
	var req dto.CreateVolunteerRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	volunteer, err := h.volunteerService.Create(c.Request().Context(), actorFromContext(c), &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendCreated(c, volunteer)
}

func (h *VolunteerHandler) GetVolunteer(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	volunteer, err := h.volunteerService.Get(c.Request().Context(), id)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendData(c, volunteer)
}

func (h *VolunteerHandler) UpdateVolunteer(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	var req dto.UpdateVolunteerRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	volunteer, err := h.volunteerService.Update(c.Request().Context(), actorFromContext(c), id, &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendData(c, volunteer)
}

func (h *VolunteerHandler) DeleteVolunteer(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	if err := h.volunteerService.Delete(c.Request().Context(), actorFromContext(c), id); err != nil {
		return sendServiceError(c, err)
	}

	return SendDeleted(c, "Volunteer deleted")
}

// ListVolunteers lists volunteers, optionally by skill
// @Router /api/v1/volunteers [get]
func (h *VolunteerHandler) ListVolunteers(c echo.Context) error {
	communityID, err := optionalUUIDQuery(c, "communityId")
	if err != nil {
		return sendBadRequest(c, err)
	}

	filters := models.VolunteerFilters{
		ListOptions: listOptions(c),
		CommunityID: communityID,
		Status:      c.QueryParam("status"),
		Skill:       c.QueryParam("skill"),
	}

	volunteers, total, err := h.volunteerService.List(c.Request().Context(), filters)
	if err != nil {
		return SendSystemError(c, errors.SystemDatabaseError, err)
	}

	return SendList(c, volunteers, total, filters.Limit, filters.Offset)
}
