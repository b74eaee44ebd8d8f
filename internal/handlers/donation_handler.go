package handlers

import (
	"fmt"
	"net/http"
	"time"

	"temple-admin/internal/dto"
	"temple-admin/internal/errors"
	"temple-admin/internal/models"
	"temple-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// DonationHandler handles donation endpoints
type DonationHandler struct {
	donationService services.DonationServiceInterface
}

// NewDonationHandler creates a new donation handler
func NewDonationHandler(donationService services.DonationServiceInterface) *DonationHandler {
	return &DonationHandler{donationService: donationService}
}

// RecordDonation records a donation and posts its income entry to the ledger
// @Summary Record donation
// @Tags Donations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateDonationRequest true "Donation"
// @Success 201 {object} SuccessResponse{data=models.Donation}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or TRANSACTION_003"
// @Failure 404 {object} errors.ErrorResponse "COMMUNITY_001 or MEMBER_001"
// @Router /api/v1/donations [post]
func (h *DonationHandler) RecordDonation(c echo.Context) error {
	var req dto.CreateDonationRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	donation, err := h.donationService.Create(c.Request().Context(), actorFromContext(c), &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendCreated(c, donation)
}

// @Router /api/v1/donations/{id} [get]
func (h *DonationHandler) GetDonation(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	donation, err := h.donationService.Get(c.Request().Context(), id)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendData(c, donation)
}

// @Router /api/v1/donations/{id} [patch]
func (h *DonationHandler) UpdateDonation(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	var req dto.UpdateDonationRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	donation, err := h.donationService.Update(c.Request().Context(), actorFromContext(c), id, &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendData(c, donation)
}

// DeleteDonation removes a donation together with its ledger entry
// @Router /api/v1/donations/{id} [delete]
func (h *DonationHandler) DeleteDonation(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	if err := h.donationService.Delete(c.Request().Context(), actorFromContext(c), id); err != nil {
		return sendServiceError(c, err)
	}

	return SendDeleted(c, "Donation deleted")
}

// ListDonations lists donations
// @Summary List donations
// @Tags Donations
// @Security BearerAuth
// @Param communityId query string false "Community ID"
// @Param memberId query string false "Member ID"
// @Param purpose query string false "Donation purpose"
// @Param from query string false "Start date (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "End date (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} SuccessResponse{data=[]models.Donation,meta=dto.ListMeta}
// @Router /api/v1/donations [get]
func (h *DonationHandler) ListDonations(c echo.Context) error {
	filters, err := donationFilters(c)
	if err != nil {
		return sendBadRequest(c, err)
	}

	donations, total, err := h.donationService.List(c.Request().Context(), filters)
	if err != nil {
		return SendSystemError(c, errors.SystemDatabaseError, err)
	}

	return SendList(c, donations, total, filters.Limit, filters.Offset)
}

// ExportDonations downloads the filtered donations as a spreadsheet
// @Summary Export donations
// @Tags Donations
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /api/v1/donations/export [get]
func (h *DonationHandler) ExportDonations(c echo.Context) error {
	filters, err := donationFilters(c)
	if err != nil {
		return sendBadRequest(c, err)
	}

	workbook, err := h.donationService.Export(c.Request().Context(), actorFromContext(c), filters)
	if err != nil {
		return sendServiceError(c, err)
	}

	filename := fmt.Sprintf("donations-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, services.XLSXContentType, workbook)
}

func donationFilters(c echo.Context) (models.DonationFilters, error) {
	filters := models.DonationFilters{
		ListOptions: listOptions(c),
		Purpose:     c.QueryParam("purpose"),
	}

	var err error
	if filters.CommunityID, err = optionalUUIDQuery(c, "communityId"); err != nil {
		return filters, err
	}
	if filters.MemberID, err = optionalUUIDQuery(c, "memberId"); err != nil {
		return filters, err
	}
	if filters.From, err = optionalTimeQuery(c, "from"); err != nil {
		return filters, err
	}
	if filters.To, err = optionalUpperBoundQuery(c, "to"); err != nil {
		return filters, err
	}
	return filters, nil
}
