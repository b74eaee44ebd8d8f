package handlers

import (
	"temple-admin/internal/dto"
	"temple-admin/internal/errors"
	"temple-admin/internal/models"
	"temple-admin/internal/services"

	"github.com/labstack/echo/v4"
)

const defaultUpcomingLimit = 10

// PujaHandler handles puja scheduling endpoints
type PujaHandler struct {
	pujaService services.PujaServiceInterface
}

// NewPujaHandler creates a new puja handler
func NewPujaHandler(pujaService services.PujaServiceInterface) *PujaHandler {
	return &PujaHandler{pujaService: pujaService}
}

// SchedulePuja schedules a puja
// @Summary Schedule puja
// @Description Rejects a booking that overlaps another scheduled puja at the same location
// @Tags Pujas
// @Security BearerAuth
// @Param request body dto.CreatePujaRequest true "Puja"
// @Success 201 {object} SuccessResponse{data=models.Puja}
// @Failure 409 {object} errors.ErrorResponse "PUJA_002 - Schedule conflict"
// @Router /api/v1/pujas [post]
func (h *PujaHandler) SchedulePuja(c echo.Context) error {
	var req dto.CreatePujaRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	puja, err := h.pujaService.Create(c.Request().Context(), actorFromContext(c), &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendCreated(c, puja)
}

func (h *PujaHandler) GetPuja(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	puja, err := h.pujaService.Get(c.Request().Context(), id)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendData(c, puja)
}

// UpdatePuja edits or reschedules a puja that is still scheduled
// @Failure 409 {object} errors.ErrorResponse "PUJA_002 or PUJA_003"
// @Router /api/v1/pujas/{id} [patch]
func (h *PujaHandler) UpdatePuja(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	var req dto.UpdatePujaRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	puja, err := h.pujaService.Update(c.Request().Context(), actorFromContext(c), id, &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendData(c, puja)
}

func (h *PujaHandler) DeletePuja(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	if err := h.pujaService.Delete(c.Request().Context(), actorFromContext(c), id); err != nil {
		return sendServiceError(c, err)
	}

	return SendDeleted(c, "Puja deleted")
}

// ListPujas lists pujas
// @Router /api/v1/pujas [get]
func (h *PujaHandler) ListPujas(c echo.Context) error {
	filters := models.PujaFilters{
		ListOptions: listOptions(c),
		Status:      c.QueryParam("status"),
	}

	var err error
	if filters.CommunityID, err = optionalUUIDQuery(c, "communityId"); err != nil {
		return sendBadRequest(c, err)
	}
	if filters.From, err = optionalTimeQuery(c, "from"); err != nil {
		return sendBadRequest(c, err)
	}
	if filters.To, err = optionalUpperBoundQuery(c, "to"); err != nil {
		return sendBadRequest(c, err)
	}

	pujas, total, err := h.pujaService.List(c.Request().Context(), filters)
	if err != nil {
		return SendSystemError(c, errors.SystemDatabaseError, err)
	}

	return SendList(c, pujas, total, filters.Limit, filters.Offset)
}

// UpcomingPujas returns the next scheduled pujas in start order
// @Summary Upcoming pujas
// @Tags Pujas
// @Security BearerAuth
// @Param communityId query string false "Community ID"
// @Param limit query int false "Max results" default(10)
// @Success 200 {object} SuccessResponse{data=[]models.Puja}
// @Router /api/v1/pujas/upcoming [get]
func (h *PujaHandler) UpcomingPujas(c echo.Context) error {
	communityID, err := optionalUUIDQuery(c, "communityId")
	if err != nil {
		return sendBadRequest(c, err)
	}

	pujas, err := h.pujaService.Upcoming(c.Request().Context(), communityID, getIntParam(c, "limit", defaultUpcomingLimit))
	if err != nil {
		return SendSystemError(c, errors.SystemDatabaseError, err)
	}

	return SendData(c, pujas)
}

// @Router /api/v1/pujas/{id}/cancel [post]
func (h *PujaHandler) CancelPuja(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	puja, err := h.pujaService.Cancel(c.Request().Context(), actorFromContext(c), id)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendData(c, puja)
}

// @Router /api/v1/pujas/{id}/complete [post]
func (h *PujaHandler) CompletePuja(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	puja, err := h.pujaService.Complete(c.Request().Context(), actorFromContext(c), id)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendData(c, puja)
}
