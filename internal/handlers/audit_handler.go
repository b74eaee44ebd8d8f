package handlers

import (
	"temple-admin/internal/errors"
	"temple-admin/internal/models"
	"temple-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// AuditHandler exposes the audit trail to super admins
type AuditHandler struct {
	auditService services.AuditServiceInterface
}

// NewAuditHandler creates a new audit log handler
func NewAuditHandler(auditService services.AuditServiceInterface) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// ListAuditLogs lists audit entries, newest first
// @Summary List audit logs
// @Tags Audit
// @Security BearerAuth
// @Param userId query string false "Acting user"
// @Param resource query string false "Resource type"
// @Param action query string false "Action"
// @Success 200 {object} SuccessResponse{data=[]models.AuditLog,meta=dto.ListMeta}
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires super_admin"
// @Router /api/v1/audit-logs [get]
func (h *AuditHandler) ListAuditLogs(c echo.Context) error {
	userID, err := optionalUUIDQuery(c, "userId")
	if err != nil {
		return sendBadRequest(c, err)
	}

	filters := models.AuditLogFilters{
		ListOptions: listOptions(c),
		UserID:      userID,
		Resource:    c.QueryParam("resource"),
		Action:      c.QueryParam("action"),
	}

	logs, total, err := h.auditService.List(c.Request().Context(), filters)
	if err != nil {
		return SendSystemError(c, errors.SystemDatabaseError, err)
	}

	return SendList(c, logs, total, filters.Limit, filters.Offset)
}
