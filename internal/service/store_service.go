package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pickle-rental/pickle-api/internal/domain"
	"github.com/pickle-rental/pickle-api/internal/domain/geo"
	"github.com/pickle-rental/pickle-api/internal/platform/logger"
	"github.com/pickle-rental/pickle-api/internal/platform/media"
	"github.com/pickle-rental/pickle-api/internal/store"
	"golang.org/x/sync/errgroup"
)

// StoreService answers questions about rental stores.
type StoreService interface {
	// GetNearStores returns the stores within geo.NearbyRadiusMeters of
	// (lat, lng), nearest first.
	GetNearStores(ctx context.Context, lat, lng float64) ([]domain.StoreDistance, error)

	// FindStoreDetail returns a store with its dresses. A non-nil category
	// must be a known category (ErrInvalidCategory) and narrows the dress list.
	FindStoreDetail(ctx context.Context, storeID uuid.UUID, category *string) (*domain.StoreDetail, error)
}

type storeServiceImpl struct {
	stores  store.StoreStore
	dresses store.DressStore
	urls    URLBuilder
	logger  *slog.Logger
}

// NewStoreService creates a StoreService.
// It returns an error if any of the required dependencies are nil.
func NewStoreService(
	stores store.StoreStore,
	dresses store.DressStore,
	urls URLBuilder,
	logger *slog.Logger,
) (StoreService, error) {
	if stores == nil {
		return nil, domain.NewValidationError("stores", "cannot be nil", domain.ErrValidation)
	}
	if dresses == nil {
		return nil, domain.NewValidationError("dresses", "cannot be nil", domain.ErrValidation)
	}
	if urls == nil {
		return nil, domain.NewValidationError("urls", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &storeServiceImpl{
		stores:  stores,
		dresses: dresses,
		urls:    urls,
		logger:  logger.With(slog.String("component", "store_service")),
	}, nil
}

// GetNearStores implements StoreService.GetNearStores
func (s *storeServiceImpl) GetNearStores(ctx context.Context, lat, lng float64) ([]domain.StoreDistance, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateCoordinates(lat, lng); err != nil {
		return nil, invalidParams(err)
	}

	all, err := s.stores.FindAll(ctx)
	if err != nil {
		log.Error("failed to load stores", slog.String("error", err.Error()))
		return nil, NewServiceError("store", "GetNearStores", "failed to load stores", classify(err))
	}

	ranked := geo.Nearby(lat, lng, all, geo.NearbyRadiusMeters)
	result := make([]domain.StoreDistance, len(ranked))
	for i, r := range ranked {
		result[i] = domain.StoreDistance{Store: r.Item, Distance: r.Distance}
	}

	log.Debug("nearby stores resolved",
		slog.Int("candidates", len(all)),
		slog.Int("within_radius", len(result)))
	return result, nil
}

// FindStoreDetail implements StoreService.FindStoreDetail
func (s *storeServiceImpl) FindStoreDetail(
	ctx context.Context,
	storeID uuid.UUID,
	category *string,
) (*domain.StoreDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var filter *domain.DressCategory
	if category != nil && strings.TrimSpace(*category) != "" {
		c, err := domain.ParseDressCategory(*category)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCategory, err)
		}
		filter = &c
	}

	var (
		st      *domain.Store
		dresses []*domain.DressBrief
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		st, err = s.stores.GetByID(gctx, storeID)
		return err
	})
	g.Go(func() error {
		var err error
		dresses, err = s.dresses.FindByStore(gctx, storeID, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to load store detail",
				slog.String("error", err.Error()),
				slog.String("store_id", storeID.String()))
		}
		return nil, NewServiceError("store", "FindStoreDetail", "failed to load store", classify(err))
	}

	detail := &domain.StoreDetail{
		Store:    st,
		ImageURL: imageURL(s.urls, media.BucketStores, st.ImageKey),
		Dresses:  make([]domain.DressBrief, 0, len(dresses)),
	}
	for _, d := range dresses {
		d.ImageURL = imageURL(s.urls, media.BucketDresses, d.ImageKey)
		detail.Dresses = append(detail.Dresses, *d)
	}
	return detail, nil
}
