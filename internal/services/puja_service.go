package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"temple-admin/internal/dto"
	"temple-admin/internal/models"
	"temple-admin/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultUpcomingLimit caps Upcoming when the caller passes no limit
const DefaultUpcomingLimit = 10

// pujaService implements PujaServiceInterface
type pujaService struct {
	pujaRepo      repositories.PujaRepositoryInterface
	communityRepo repositories.CommunityRepositoryInterface
	audit         AuditServiceInterface
	metrics       MetricsRecorderInterface
	activity      ActivityLoggerInterface
	now           func() time.Time
}

// NewPujaService creates the puja scheduling service
func NewPujaService(
	pujaRepo repositories.PujaRepositoryInterface,
	communityRepo repositories.CommunityRepositoryInterface,
	audit AuditServiceInterface,
	metrics MetricsRecorderInterface,
	activity ActivityLoggerInterface,
) PujaServiceInterface {
	return &pujaService{
		pujaRepo:      pujaRepo,
		communityRepo: communityRepo,
		audit:         audit,
		metrics:       metrics,
		activity:      activity,
		now:           time.Now,
	}
}

func (s *pujaService) Create(ctx context.Context, actor models.Actor, req *dto.CreatePujaRequest) (*models.Puja, error) {
	communityID, err := requireCommunity(ctx, s.communityRepo, req.CommunityID)
	if err != nil {
		return nil, err
	}

	fee, err := parseFee(req.Fee)
	if err != nil {
		return nil, err
	}

	puja := &models.Puja{
		ID:              uuid.New(),
		CommunityID:     communityID,
		Name:            req.Name,
		Deity:           req.Deity,
		Description:     req.Description,
		PriestName:      req.PriestName,
		Location:        req.Location,
		ScheduledAt:     req.ScheduledAt.UTC(),
		DurationMinutes: req.DurationMinutes,
		Status:          models.PujaStatusScheduled,
		SponsorName:     req.SponsorName,
		Fee:             fee,
	}
	if puja.DurationMinutes == 0 {
		puja.DurationMinutes = models.DefaultPujaDurationMinutes
	}
	if err := puja.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	if err := s.checkConflicts(ctx, puja); err != nil {
		return nil, err
	}

	if err := s.pujaRepo.Create(ctx, puja); err != nil {
		return nil, fmt.Errorf("failed to schedule puja: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionCreate, models.AuditResourcePuja, puja.ID.String(),
		map[string]interface{}{"scheduled_at": puja.ScheduledAt.Format(time.RFC3339), "location": puja.Location})
	return puja, nil
}

func (s *pujaService) Get(ctx context.Context, id uuid.UUID) (*models.Puja, error) {
	return s.pujaRepo.GetByID(ctx, id)
}

// Update edits or reschedules a puja that is still scheduled
func (s *pujaService) Update(ctx context.Context, actor models.Actor, id uuid.UUID, req *dto.UpdatePujaRequest) (*models.Puja, error) {
	puja, err := s.pujaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !puja.IsScheduled() {
		return nil, ErrPujaClosed
	}

	applyString(&puja.Name, req.Name)
	applyString(&puja.Deity, req.Deity)
	applyString(&puja.Description, req.Description)
	applyString(&puja.PriestName, req.PriestName)
	applyString(&puja.Location, req.Location)
	applyString(&puja.SponsorName, req.SponsorName)
	if req.ScheduledAt != nil {
		puja.ScheduledAt = req.ScheduledAt.UTC()
	}
	if req.DurationMinutes != nil {
		puja.DurationMinutes = *req.DurationMinutes
	}
	if req.Fee != nil {
		fee, err := parseFee(*req.Fee)
		if err != nil {
			return nil, err
		}
		puja.Fee = fee
	}

	if err := puja.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	if req.ScheduledAt != nil || req.DurationMinutes != nil || req.Location != nil {
		if err := s.checkConflicts(ctx, puja); err != nil {
			return nil, err
		}
	}

	if err := s.pujaRepo.Update(ctx, puja); err != nil {
		return nil, fmt.Errorf("failed to update puja: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionUpdate, models.AuditResourcePuja, puja.ID.String(), nil)
	return puja, nil
}

func (s *pujaService) Delete(ctx context.Context, actor models.Actor, id uuid.UUID) error {
	if err := s.pujaRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, models.AuditActionDelete, models.AuditResourcePuja, id.String(), nil)
	return nil
}

func (s *pujaService) List(ctx context.Context, filters models.PujaFilters) ([]models.Puja, int64, error) {
	return s.pujaRepo.List(ctx, filters)
}

// Upcoming returns scheduled pujas starting from now, soonest first
func (s *pujaService) Upcoming(ctx context.Context, communityID *uuid.UUID, limit int) ([]models.Puja, error) {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}

	pujas, err := s.pujaRepo.ListUpcoming(ctx, communityID, s.now().UTC(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming pujas: %w", err)
	}

	s.metrics.RecordGauge("upcoming_pujas", float64(len(pujas)), nil)
	return pujas, nil
}

func (s *pujaService) Cancel(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Puja, error) {
	return s.transition(ctx, actor, id, models.AuditActionCancel, (*models.Puja).Cancel)
}

func (s *pujaService) Complete(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Puja, error) {
	return s.transition(ctx, actor, id, models.AuditActionComplete, (*models.Puja).Complete)
}

func (s *pujaService) transition(ctx context.Context, actor models.Actor, id uuid.UUID, action string, apply func(*models.Puja) error) (*models.Puja, error) {
	puja, err := s.pujaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := apply(puja); err != nil {
		return nil, err
	}

	if err := s.pujaRepo.Update(ctx, puja); err != nil {
		return nil, fmt.Errorf("failed to %s puja: %w", action, err)
	}

	s.audit.Record(ctx, actor, action, models.AuditResourcePuja, puja.ID.String(), nil)
	return puja, nil
}

func (s *pujaService) checkConflicts(ctx context.Context, puja *models.Puja) error {
	conflicts, err := s.pujaRepo.FindOverlapping(ctx, puja)
	if err != nil {
		return fmt.Errorf("failed to check schedule: %w", err)
	}
	if len(conflicts) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(conflicts))
	for _, c := range conflicts {
		ids = append(ids, c.ID)
	}
	s.metrics.IncrementCounter("schedule_conflict", nil)
	s.activity.LogScheduleConflict(ctx, puja.ID, ids, puja.Location)

	return fmt.Errorf("%w: %s", ErrScheduleConflict, conflicts[0].Name)
}

func parseFee(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	fee, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, invalidInput(errors.New("fee must be a number"))
	}
	if fee.IsNegative() {
		return decimal.Zero, invalidInput(errors.New("fee cannot be negative"))
	}
	return fee.Round(models.MaxAmountScale), nil
}
