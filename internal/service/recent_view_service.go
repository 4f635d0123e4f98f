package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pickle-rental/pickle-api/internal/domain"
	"github.com/pickle-rental/pickle-api/internal/platform/logger"
	"github.com/pickle-rental/pickle-api/internal/store"
)

// RecentViewService counts dress detail views per user.
type RecentViewService interface {
	// RecordView adds one view of dressID by userID and returns the new count.
	RecordView(ctx context.Context, userID, dressID uuid.UUID) (int, error)
}

type recentViewServiceImpl struct {
	views  store.RecentViewStore
	logger *slog.Logger
}

// NewRecentViewService creates a RecentViewService.
func NewRecentViewService(views store.RecentViewStore, logger *slog.Logger) (RecentViewService, error) {
	if views == nil {
		return nil, domain.NewValidationError("views", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &recentViewServiceImpl{
		views:  views,
		logger: logger.With(slog.String("component", "recent_view_service")),
	}, nil
}

// RecordView implements RecentViewService.RecordView
func (s *recentViewServiceImpl) RecordView(ctx context.Context, userID, dressID uuid.UUID) (int, error) {
	clicks, err := s.views.Increment(ctx, userID, dressID)
	if err != nil {
		return 0, NewServiceError("recent_view", "RecordView", "failed to record view", classify(err))
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("dress view recorded",
		slog.String("user_id", userID.String()),
		slog.String("dress_id", dressID.String()),
		slog.Int("clicks", clicks))
	return clicks, nil
}
