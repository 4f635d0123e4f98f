package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pickle-rental/pickle-api/internal/domain"
	"github.com/pickle-rental/pickle-api/internal/platform/logger"
	"github.com/pickle-rental/pickle-api/internal/store"
)

// maxToggleAttempts bounds retries after losing a concurrent insert race.
const maxToggleAttempts = 3

// LikeService manages the liked state of dresses.
type LikeService interface {
	// ToggleLike flips whether userID likes dressID and returns the new state.
	ToggleLike(ctx context.Context, userID, dressID uuid.UUID) (bool, error)
}

type likeServiceImpl struct {
	dresses store.DressStore
	likes   store.LikeStore
	logger  *slog.Logger
}

// NewLikeService creates a LikeService.
// It returns an error if any of the required dependencies are nil.
func NewLikeService(dresses store.DressStore, likes store.LikeStore, logger *slog.Logger) (LikeService, error) {
	if dresses == nil {
		return nil, domain.NewValidationError("dresses", "cannot be nil", domain.ErrValidation)
	}
	if likes == nil {
		return nil, domain.NewValidationError("likes", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &likeServiceImpl{
		dresses: dresses,
		likes:   likes,
		logger:  logger.With(slog.String("component", "like_service")),
	}, nil
}

// ToggleLike implements LikeService.ToggleLike
func (s *likeServiceImpl) ToggleLike(ctx context.Context, userID, dressID uuid.UUID) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.dresses.GetByID(ctx, dressID); err != nil {
		return false, NewServiceError("like", "ToggleLike", "failed to resolve dress", classify(err))
	}

	var err error
	for attempt := 1; attempt <= maxToggleAttempts; attempt++ {
		var liked bool
		liked, err = s.likes.Toggle(ctx, userID, dressID)
		if err == nil {
			log.Debug("dress like toggled",
				slog.String("user_id", userID.String()),
				slog.String("dress_id", dressID.String()),
				slog.Bool("liked", liked))
			return liked, nil
		}
		if !store.IsDuplicateError(err) {
			break
		}
		log.Debug("like toggle lost a concurrent insert, retrying",
			slog.String("dress_id", dressID.String()),
			slog.Int("attempt", attempt))
	}

	log.Error("failed to toggle dress like",
		slog.String("error", err.Error()),
		slog.String("user_id", userID.String()),
		slog.String("dress_id", dressID.String()))
	return false, NewServiceError("like", "ToggleLike", "failed to toggle like", classify(err))
}
