package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"temple-admin/internal/models"
	"temple-admin/internal/repositories"
)

// AuditService records admin actions in the audit log
type AuditService struct {
	repo    repositories.AuditLogRepositoryInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepositoryInterface, metrics MetricsRecorderInterface, logger *slog.Logger) AuditServiceInterface {
	return &AuditService{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

var (
	ErrInvalidAuditAction = errors.New("invalid audit action")
	ErrInvalidRetention   = errors.New("retention must be positive")
)

// ValidateAuditAction checks that the action is one the console records
func ValidateAuditAction(action string) error {
	switch action {
	case models.AuditActionLogin, models.AuditActionLogout, models.AuditActionFailedLogin, models.AuditActionCreate,
		models.AuditActionUpdate, models.AuditActionDelete, models.AuditActionApprove,
		models.AuditActionReject, models.AuditActionCancel, models.AuditActionComplete,
		models.AuditActionExport:
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidAuditAction, action)
}

// Record writes an audit entry. Failures are logged and never returned:
// the action being audited has already happened.
func (s *AuditService) Record(ctx context.Context, actor models.Actor, action, resource, resourceID string, metadata map[string]interface{}) {
	if err := ValidateAuditAction(action); err != nil {
		s.logger.ErrorContext(ctx, "refusing to record audit entry",
			"error", err,
			"resource", resource)
		return
	}

	log := &models.AuditLog{
		UserID:     actor.AuditUserID(),
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
		Metadata:   metadata,
	}

	if err := s.repo.Create(ctx, log); err != nil {
		s.logger.ErrorContext(ctx, "failed to create audit log",
			"error", err,
			"action", action,
			"resource", resource,
			"resource_id", resourceID,
			"trace_id", TraceID(ctx))
		return
	}

	s.metrics.IncrementCounter("audit_event", map[string]string{"action": action, "resource": resource})
}

// List returns audit entries, newest first
func (s *AuditService) List(ctx context.Context, filters models.AuditLogFilters) ([]models.AuditLog, int64, error) {
	logs, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return logs, total, nil
}

// PurgeOlderThan deletes entries older than the retention window
func (s *AuditService) PurgeOlderThan(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, ErrInvalidRetention
	}

	deleted, err := s.repo.DeleteOlderThan(ctx, retention)
	if err != nil {
		return 0, fmt.Errorf("failed to purge audit logs: %w", err)
	}

	s.logger.InfoContext(ctx, "purged audit logs", "deleted", deleted, "retention", retention.String())
	return deleted, nil
}
