package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/pickle-rental/pickle-api/internal/domain"
	"github.com/pickle-rental/pickle-api/internal/domain/geo"
	"github.com/pickle-rental/pickle-api/internal/platform/logger"
	"github.com/pickle-rental/pickle-api/internal/platform/media"
	"github.com/pickle-rental/pickle-api/internal/store"
)

// SearchDressParams holds raw catalog search input. Category and Sort are
// validated by SearchDress; empty values mean all categories and the
// recommended order. Lat and Lng must be given together.
type SearchDressParams struct {
	Name     string
	Sort     string
	Category string
	Lat      *float64
	Lng      *float64
	UserID   uuid.UUID
}

// DressService serves the dress catalog.
type DressService interface {
	// SearchDress lists dresses matching params. Unknown category or sort
	// values fail with ErrInvalidParams before any query runs.
	SearchDress(ctx context.Context, params SearchDressParams) ([]domain.DressBrief, error)

	// FindDressDetail returns the full dress page and records the view.
	FindDressDetail(ctx context.Context, dressID, userID uuid.UUID) (*domain.DressDetail, error)

	// ListLikedDresses returns the dresses userID liked, newest like first.
	ListLikedDresses(ctx context.Context, userID uuid.UUID) ([]domain.LikedDress, error)
}

type dressServiceImpl struct {
	users   store.UserStore
	stores  store.StoreStore
	dresses store.DressStore
	likes   store.LikeStore
	views   RecentViewService
	urls    URLBuilder
	logger  *slog.Logger
}

// NewDressService creates a DressService.
// It returns an error if any of the required dependencies are nil.
func NewDressService(
	users store.UserStore,
	stores store.StoreStore,
	dresses store.DressStore,
	likes store.LikeStore,
	views RecentViewService,
	urls URLBuilder,
	logger *slog.Logger,
) (DressService, error) {
	switch {
	case users == nil:
		return nil, domain.NewValidationError("users", "cannot be nil", domain.ErrValidation)
	case stores == nil:
		return nil, domain.NewValidationError("stores", "cannot be nil", domain.ErrValidation)
	case dresses == nil:
		return nil, domain.NewValidationError("dresses", "cannot be nil", domain.ErrValidation)
	case likes == nil:
		return nil, domain.NewValidationError("likes", "cannot be nil", domain.ErrValidation)
	case views == nil:
		return nil, domain.NewValidationError("views", "cannot be nil", domain.ErrValidation)
	case urls == nil:
		return nil, domain.NewValidationError("urls", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &dressServiceImpl{
		users:   users,
		stores:  stores,
		dresses: dresses,
		likes:   likes,
		views:   views,
		urls:    urls,
		logger:  logger.With(slog.String("component", "dress_service")),
	}, nil
}

// SearchDress implements DressService.SearchDress
func (s *dressServiceImpl) SearchDress(ctx context.Context, params SearchDressParams) ([]domain.DressBrief, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	criteria := domain.DressSearchCriteria{
		Name:   strings.TrimSpace(params.Name),
		UserID: params.UserID,
	}

	if strings.TrimSpace(params.Category) != "" {
		c, err := domain.ParseDressCategory(params.Category)
		if err != nil {
			return nil, invalidParams(err)
		}
		criteria.Category = &c
	}

	sortBy, err := domain.ParseDressSortBy(params.Sort)
	if err != nil {
		return nil, invalidParams(err)
	}
	criteria.Sort = sortBy

	hasPosition := params.Lat != nil && params.Lng != nil
	if (params.Lat == nil) != (params.Lng == nil) {
		return nil, invalidParams(domain.NewValidationError("lat/lng", "must be given together", domain.ErrInvalidCoordinates))
	}
	if hasPosition {
		if err := domain.ValidateCoordinates(*params.Lat, *params.Lng); err != nil {
			return nil, invalidParams(err)
		}
	}
	if sortBy == domain.SortDistance && !hasPosition {
		return nil, invalidParams(domain.NewValidationError("sort", "distance requires lat and lng", domain.ErrInvalidSortOrder))
	}

	briefs, err := s.dresses.Search(ctx, criteria)
	if err != nil {
		log.Error("dress search failed",
			slog.String("error", err.Error()),
			slog.String("sort", string(sortBy)))
		return nil, NewServiceError("dress", "SearchDress", "search failed", classify(err))
	}

	result := make([]domain.DressBrief, 0, len(briefs))
	for _, b := range briefs {
		b.ImageURL = imageURL(s.urls, media.BucketDresses, b.ImageKey)
		if hasPosition {
			lat, lng := b.Coordinates()
			d := geo.Distance(*params.Lat, *params.Lng, lat, lng)
			b.Distance = &d
		}
		result = append(result, *b)
	}

	if sortBy == domain.SortDistance {
		sort.SliceStable(result, func(i, j int) bool {
			return *result[i].Distance < *result[j].Distance
		})
	}

	return result, nil
}

// FindDressDetail implements DressService.FindDressDetail
func (s *dressServiceImpl) FindDressDetail(ctx context.Context, dressID, userID uuid.UUID) (*domain.DressDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	dress, err := s.dresses.GetByID(ctx, dressID)
	if err != nil {
		return nil, NewServiceError("dress", "FindDressDetail", "failed to resolve dress", classify(err))
	}

	// View tracking never fails the page.
	if _, err := s.views.RecordView(ctx, userID, dressID); err != nil {
		log.Warn("failed to record dress view",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("dress_id", dressID.String()))
	}

	st, err := s.stores.GetByID(ctx, dress.StoreID)
	if err != nil {
		return nil, s.detailError(log, dressID, "failed to resolve store", err)
	}

	liked, err := s.likes.Exists(ctx, userID, dressID)
	if err != nil {
		return nil, s.detailError(log, dressID, "failed to read like state", err)
	}

	images, err := s.dresses.GetImages(ctx, dressID)
	if err != nil {
		return nil, s.detailError(log, dressID, "failed to load images", err)
	}

	options, err := s.dresses.GetOptions(ctx, dressID)
	if err != nil {
		return nil, s.detailError(log, dressID, "failed to load options", err)
	}

	detail := &domain.DressDetail{
		Dress:     dress,
		StoreName: st.Name,
		ImageURLs: make([]string, 0, len(images)),
		Options:   make([]domain.DressOption, 0, len(options)),
		Liked:     liked,
	}
	head := s.urls.URLHead(media.BucketDresses)
	for _, img := range images {
		detail.ImageURLs = append(detail.ImageURLs, head+img.Key)
	}
	for _, opt := range options {
		detail.Options = append(detail.Options, *opt)
	}
	return detail, nil
}

func (s *dressServiceImpl) detailError(log *slog.Logger, dressID uuid.UUID, msg string, err error) error {
	if !errors.Is(err, store.ErrNotFound) {
		log.Error(msg,
			slog.String("error", err.Error()),
			slog.String("dress_id", dressID.String()))
	}
	return NewServiceError("dress", "FindDressDetail", msg, classify(err))
}

// ListLikedDresses implements DressService.ListLikedDresses
func (s *dressServiceImpl) ListLikedDresses(ctx context.Context, userID uuid.UUID) ([]domain.LikedDress, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, NewServiceError("dress", "ListLikedDresses", "failed to resolve user", classify(err))
	}

	liked, err := s.dresses.FindLikedByUser(ctx, userID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list liked dresses",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewServiceError("dress", "ListLikedDresses", "failed to list likes", classify(err))
	}

	result := make([]domain.LikedDress, 0, len(liked))
	for _, ld := range liked {
		ld.PriceText = domain.FormatPrice(ld.Price)
		ld.ImageURL = imageURL(s.urls, media.BucketDresses, ld.ImageKey)
		result = append(result, *ld)
	}
	return result, nil
}
