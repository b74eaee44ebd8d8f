package handlers

import (
	"temple-admin/internal/dto"
	"temple-admin/internal/errors"
	"temple-admin/internal/models"
	"temple-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// TemplateHandler handles communication template endpoints
type TemplateHandler struct {
	templateService services.TemplateServiceInterface
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateService services.TemplateServiceInterface) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

func (h *TemplateHandler) CreateTemplate(c echo.Context) error {
	var req dto.CreateTemplateRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	tmpl, err := h.templateService.Create(c.Request().Context(), actorFromContext(c), &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendCreated(c, tmpl)
}

func (h *TemplateHandler) GetTemplate(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	tmpl, err := h.templateService.Get(c.Request().Context(), id)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendData(c, tmpl)
}

func (h *TemplateHandler) UpdateTemplate(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	var req dto.UpdateTemplateRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	tmpl, err := h.templateService.Update(c.Request().Context(), actorFromContext(c), id, &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendData(c, tmpl)
}

func (h *TemplateHandler) DeleteTemplate(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	if err := h.templateService.Delete(c.Request().Context(), actorFromContext(c), id); err != nil {
		return sendServiceError(c, err)
	}

	return SendDeleted(c, "Template deleted")
}

func (h *TemplateHandler) ListTemplates(c echo.Context) error {
	communityID, err := optionalUUIDQuery(c, "communityId")
	if err != nil {
		return sendBadRequest(c, err)
	}

	filters := models.TemplateFilters{
		ListOptions: listOptions(c),
		CommunityID: communityID,
		Channel:     c.QueryParam("channel"),
	}

	templates, total, err := h.templateService.List(c.Request().Context(), filters)
	if err != nil {
		return SendSystemError(c, errors.SystemDatabaseError, err)
	}

	return SendList(c, templates, total, filters.Limit, filters.Offset)
}

// RenderTemplate substitutes {{name}} placeholders with the supplied variables
// @Summary Render template
// @Tags Templates
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Param request body dto.RenderTemplateRequest true "Variables"
// @Success 200 {object} SuccessResponse{data=dto.RenderTemplateResponse}
// @Failure 422 {object} errors.ErrorResponse "TEMPLATE_003 - Missing variables listed in details"
// @Router /api/v1/templates/{id}/render [post]
func (h *TemplateHandler) RenderTemplate(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	var req dto.RenderTemplateRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	rendered, err := h.templateService.Render(c.Request().Context(), id, req.Variables)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendData(c, rendered)
}
