package services

import (
	"context"
	"fmt"
	"time"

	"temple-admin/internal/dto"
	"temple-admin/internal/models"
	"temple-admin/internal/repositories"

	"github.com/google/uuid"
)

// donationService implements DonationServiceInterface
type donationService struct {
	donationRepo  repositories.DonationRepositoryInterface
	communityRepo repositories.CommunityRepositoryInterface
	reports       ReportServiceInterface
	audit         AuditServiceInterface
	metrics       MetricsRecorderInterface
	activity      ActivityLoggerInterface
}

// NewDonationService creates a donation service. Donations post income to the
// ledger through the repository.
func NewDonationService(
	donationRepo repositories.DonationRepositoryInterface,
	communityRepo repositories.CommunityRepositoryInterface,
	reports ReportServiceInterface,
	audit AuditServiceInterface,
	metrics MetricsRecorderInterface,
	activity ActivityLoggerInterface,
) DonationServiceInterface {
	return &donationService{
		donationRepo:  donationRepo,
		communityRepo: communityRepo,
		reports:       reports,
		audit:         audit,
		metrics:       metrics,
		activity:      activity,
	}
}

func (s *donationService) Create(ctx context.Context, actor models.Actor, req *dto.CreateDonationRequest) (*models.Donation, error) {
	communityID, err := requireCommunity(ctx, s.communityRepo, req.CommunityID)
	if err != nil {
		return nil, err
	}
	memberID, err := parseOptionalUUID(req.MemberID)
	if err != nil {
		return nil, err
	}

	amount, err := models.ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	donation := &models.Donation{
		CommunityID:   communityID,
		MemberID:      memberID,
		DonorName:     req.DonorName,
		DonorEmail:    req.DonorEmail,
		Amount:        amount,
		Purpose:       req.Purpose,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		DonatedAt:     time.Now().UTC(),
	}
	if donation.Purpose == "" {
		donation.Purpose = models.DonationPurposeGeneral
	}
	if req.DonatedAt != nil {
		donation.DonatedAt = req.DonatedAt.UTC()
	}
	if err := donation.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	if err := s.donationRepo.CreateWithLedger(ctx, donation); err != nil {
		return nil, fmt.Errorf("failed to create donation: %w", err)
	}

	s.posted(ctx, donation)
	s.audit.Record(ctx, actor, models.AuditActionCreate, models.AuditResourceDonation, donation.ID.String(),
		map[string]interface{}{
			"receipt_number": donation.ReceiptNumber,
			"amount":         donation.Amount.StringFixed(models.MaxAmountScale),
		})
	return donation, nil
}

func (s *donationService) Get(ctx context.Context, id uuid.UUID) (*models.Donation, error) {
	return s.donationRepo.GetByID(ctx, id)
}

// Update edits donor details and purpose. The amount and receipt are fixed.
func (s *donationService) Update(ctx context.Context, actor models.Actor, id uuid.UUID, req *dto.UpdateDonationRequest) (*models.Donation, error) {
	donation, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&donation.DonorName, req.DonorName)
	applyString(&donation.DonorEmail, req.DonorEmail)
	applyString(&donation.Purpose, req.Purpose)
	applyString(&donation.PaymentMethod, req.PaymentMethod)
	applyString(&donation.Notes, req.Notes)

	if err := donation.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	if err := s.donationRepo.UpdateWithLedger(ctx, donation); err != nil {
		return nil, fmt.Errorf("failed to update donation: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionUpdate, models.AuditResourceDonation, donation.ID.String(), nil)
	return donation, nil
}

func (s *donationService) Delete(ctx context.Context, actor models.Actor, id uuid.UUID) error {
	if err := s.donationRepo.DeleteWithLedger(ctx, id); err != nil {
		return err
	}

	s.activity.LogLedgerRemoved(ctx, models.TransactionSourceDonation, id)
	s.audit.Record(ctx, actor, models.AuditActionDelete, models.AuditResourceDonation, id.String(), nil)
	return nil
}

func (s *donationService) List(ctx context.Context, filters models.DonationFilters) ([]models.Donation, int64, error) {
	return s.donationRepo.List(ctx, filters)
}

// Export renders every matching donation into an xlsx workbook
func (s *donationService) Export(ctx context.Context, actor models.Actor, filters models.DonationFilters) ([]byte, error) {
	start := time.Now()

	donations, err := s.donationRepo.ListAll(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to load donations: %w", err)
	}

	workbook, err := s.reports.DonationWorkbook(donations)
	if err != nil {
		return nil, fmt.Errorf("failed to render donation export: %w", err)
	}

	s.metrics.RecordProcessingTime("donation_export", time.Since(start))
	s.audit.Record(ctx, actor, models.AuditActionExport, models.AuditResourceDonation, "",
		map[string]interface{}{"rows": len(donations)})
	return workbook, nil
}

func (s *donationService) posted(ctx context.Context, donation *models.Donation) {
	amount := donation.Amount.StringFixed(models.MaxAmountScale)
	s.metrics.IncrementCounter("ledger_entry", map[string]string{
		"source": models.TransactionSourceDonation,
		"type":   models.TransactionTypeIncome,
	})
	s.metrics.RecordGauge("donation_amount", donation.Amount.InexactFloat64(), nil)
	if donation.TransactionID != nil {
		s.activity.LogLedgerPosted(ctx, models.TransactionSourceDonation, donation.ID, *donation.TransactionID, amount)
	}
}
