package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// ActivityLogger writes structured domain events to slog
type ActivityLogger struct {
	logger *slog.Logger
}

func NewActivityLogger(logger *slog.Logger) ActivityLoggerInterface {
	return &ActivityLogger{
		logger: logger,
	}
}

func (al *ActivityLogger) LogSummaryComputed(ctx context.Context, communityID *uuid.UUID, transactionCount int, durationMs int64) {
	al.logger.InfoContext(ctx, "financial summary computed",
		slog.String("event_type", "summary_computed"),
		slog.String("community_id", optionalID(communityID)),
		slog.Int("transaction_count", transactionCount),
		slog.Int64("duration_ms", durationMs),
		slog.String("trace_id", TraceID(ctx)),
	)
}

func (al *ActivityLogger) LogSummaryFailed(ctx context.Context, communityID *uuid.UUID, stage string, errorMsg string) {
	al.logger.ErrorContext(ctx, "financial summary failed",
		slog.String("event_type", "summary_failed"),
		slog.String("community_id", optionalID(communityID)),
		slog.String("stage", stage),
		slog.String("error", errorMsg),
		slog.String("trace_id", TraceID(ctx)),
	)
}

func (al *ActivityLogger) LogLedgerPosted(ctx context.Context, source string, sourceID, transactionID uuid.UUID, amount string) {
	al.logger.InfoContext(ctx, "ledger entry posted",
		slog.String("event_type", "ledger_posted"),
		slog.String("source", source),
		slog.String("source_id", sourceID.String()),
		slog.String("transaction_id", transactionID.String()),
		slog.String("amount", amount),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceID(ctx)),
	)
}

func (al *ActivityLogger) LogLedgerRemoved(ctx context.Context, source string, sourceID uuid.UUID) {
	al.logger.InfoContext(ctx, "ledger entry removed",
		slog.String("event_type", "ledger_removed"),
		slog.String("source", source),
		slog.String("source_id", sourceID.String()),
		slog.String("trace_id", TraceID(ctx)),
	)
}

func (al *ActivityLogger) LogScheduleConflict(ctx context.Context, pujaID uuid.UUID, conflictingIDs []uuid.UUID, location string) {
	ids := make([]string, len(conflictingIDs))
	for i, id := range conflictingIDs {
		ids[i] = id.String()
	}

	al.logger.WarnContext(ctx, "puja schedule conflict",
		slog.String("event_type", "schedule_conflict"),
		slog.String("puja_id", pujaID.String()),
		slog.Any("conflicting_ids", ids),
		slog.String("location", location),
		slog.String("trace_id", TraceID(ctx)),
	)
}

func (al *ActivityLogger) LogApplicationReviewed(ctx context.Context, applicationID uuid.UUID, decision string, reviewerID uuid.UUID) {
	al.logger.InfoContext(ctx, "application reviewed",
		slog.String("event_type", "application_reviewed"),
		slog.String("application_id", applicationID.String()),
		slog.String("decision", decision),
		slog.String("reviewer_id", reviewerID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceID(ctx)),
	)
}

func (al *ActivityLogger) LogAuthorizationFailure(ctx context.Context, operation string, userID uuid.UUID, requiredRole string) {
	al.logger.WarnContext(ctx, "authorization failure",
		slog.String("event_type", "authorization_failure"),
		slog.String("operation", operation),
		slog.String("user_id", userID.String()),
		slog.String("required_role", requiredRole),
		slog.String("trace_id", TraceID(ctx)),
	)
}

func optionalID(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
