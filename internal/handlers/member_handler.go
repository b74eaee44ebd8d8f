package handlers

import (
	"temple-admin/internal/dto"
	"temple-admin/internal/errors"
	"temple-admin/internal/models"
	"temple-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// MemberHandler handles member endpoints
type MemberHandler struct {
	memberService services.MemberServiceInterface
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService services.MemberServiceInterface) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// CreateMember adds a member to a community
// @Summary Create member
// @Tags Members
// @Security BearerAuth
// @Param request body dto.CreateMemberRequest true "Member details"
// @Success 201 {object} SuccessResponse{data=models.Member}
// @Failure 404 {object} errors.ErrorResponse "COMMUNITY_001"
// @Failure 409 {object} errors.ErrorResponse "MEMBER_002"
// @Router /api/v1/members [post]
func (h *MemberHandler) CreateMember(c echo.Context) error {
	var req dto.CreateMemberRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	member, err := h.memberService.Create(c.Request().Context(), actorFromContext(c), &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendCreated(c, member)
}

// @Router /api/v1/members/{id} [get]
func (h *MemberHandler) GetMember(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	member, err := h.memberService.Get(c.Request().Context(), id)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendData(c, member)
}

// @Router /api/v1/members/{id} [patch]
func (h *MemberHandler) UpdateMember(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	var req dto.UpdateMemberRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	member, err := h.memberService.Update(c.Request().Context(), actorFromContext(c), id, &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendData(c, member)
}

// @Router /api/v1/members/{id} [delete]
func (h *MemberHandler) DeleteMember(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	if err := h.memberService.Delete(c.Request().Context(), actorFromContext(c), id); err != nil {
		return sendServiceError(c, err)
	}

	return SendDeleted(c, "Member deleted")
}

// ListMembers lists members
// @Summary List members
// @Tags Members
// @Security BearerAuth
// @Param communityId query string false "Community ID"
// @Param status query string false "active or inactive"
// @Param role query string false "Member role"
// @Param q query string false "Name or email search"
// @Success 200 {object} SuccessResponse{data=[]models.Member,meta=dto.ListMeta}
// @Router /api/v1/members [get]
func (h *MemberHandler) ListMembers(c echo.Context) error {
	communityID, err := optionalUUIDQuery(c, "communityId")
	if err != nil {
		return sendBadRequest(c, err)
	}

	filters := models.MemberFilters{
		ListOptions: listOptions(c),
		CommunityID: communityID,
		Status:      c.QueryParam("status"),
		Role:        c.QueryParam("role"),
		Query:       c.QueryParam("q"),
	}

	members, total, err := h.memberService.List(c.Request().Context(), filters)
	if err != nil {
		return SendSystemError(c, errors.SystemDatabaseError, err)
	}

	return SendList(c, members, total, filters.Limit, filters.Offset)
}
