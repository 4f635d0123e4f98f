package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/pickle-rental/pickle-api/internal/domain"
	"github.com/pickle-rental/pickle-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// degreesFor converts meters to degrees of latitude using the same
// constant as the distance function.
func degreesFor(meters float64) float64 {
	return meters / (60 * 1.1515 * 1609.344)
}

func newStoreService(t *testing.T) (StoreService, *MockStoreStore, *MockDressStore) {
	t.Helper()
	stores := new(MockStoreStore)
	dresses := new(MockDressStore)
	svc, err := NewStoreService(stores, dresses, fakeURLs{}, nil)
	require.NoError(t, err)
	return svc, stores, dresses
}

func TestGetNearStores(t *testing.T) {
	t.Parallel()
	svc, stores, _ := newStoreService(t)

	const lat, lng = 37.5446, 127.0559
	near := &domain.Store{ID: uuid.New(), Name: "near", Latitude: lat + degreesFor(500), Longitude: lng}
	far := &domain.Store{ID: uuid.New(), Name: "far", Latitude: lat + degreesFor(1500), Longitude: lng}
	closest := &domain.Store{ID: uuid.New(), Name: "closest", Latitude: lat + degreesFor(100), Longitude: lng}
	stores.On("FindAll", mock.Anything).Return([]*domain.Store{near, far, closest}, nil)

	got, err := svc.GetNearStores(context.Background(), lat, lng)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "closest", got[0].Store.Name)
	assert.Equal(t, "near", got[1].Store.Name)
	assert.InDelta(t, 100, got[0].Distance, 1)
	assert.InDelta(t, 500, got[1].Distance, 1)
}

func TestGetNearStores_Errors(t *testing.T) {
	t.Parallel()

	t.Run("invalid coordinates", func(t *testing.T) {
		t.Parallel()
		svc, stores, _ := newStoreService(t)

		_, err := svc.GetNearStores(context.Background(), 91, 0)
		assert.ErrorIs(t, err, ErrInvalidParams)
		stores.AssertNotCalled(t, "FindAll", mock.Anything)
	})

	t.Run("NaN latitude", func(t *testing.T) {
		t.Parallel()
		svc, stores, _ := newStoreService(t)

		_, err := svc.GetNearStores(context.Background(), math.NaN(), 0)
		assert.ErrorIs(t, err, ErrInvalidParams)
		assert.ErrorIs(t, err, domain.ErrInvalidCoordinates)
		stores.AssertNotCalled(t, "FindAll", mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		svc, stores, _ := newStoreService(t)
		stores.On("FindAll", mock.Anything).Return(nil, errors.New("db down"))

		_, err := svc.GetNearStores(context.Background(), 37.5, 127.0)
		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "GetNearStores", svcErr.Operation)
	})

	t.Run("no stores", func(t *testing.T) {
		t.Parallel()
		svc, stores, _ := newStoreService(t)
		stores.On("FindAll", mock.Anything).Return([]*domain.Store{}, nil)

		got, err := svc.GetNearStores(context.Background(), 37.5, 127.0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestFindStoreDetail(t *testing.T) {
	t.Parallel()

	t.Run("with category", func(t *testing.T) {
		t.Parallel()
		svc, stores, dresses := newStoreService(t)

		st := &domain.Store{ID: uuid.New(), Name: "Pickle Seongsu", ImageKey: "seongsu.png"}
		stores.On("GetByID", mock.Anything, st.ID).Return(st, nil)
		dresses.On("FindByStore", mock.Anything, st.ID, mock.MatchedBy(func(c *domain.DressCategory) bool {
			return c != nil && *c == domain.DressCategoryHanbok
		})).Return([]*domain.DressBrief{
			{ID: uuid.New(), Name: "Blue Hanbok", ImageKey: "blue.jpg"},
		}, nil)

		category := "Hanbok"
		detail, err := svc.FindStoreDetail(context.Background(), st.ID, &category)
		require.NoError(t, err)

		assert.Equal(t, "https://cdn.test/stores/seongsu.png", detail.ImageURL)
		require.Len(t, detail.Dresses, 1)
		assert.Equal(t, "https://cdn.test/dresses/blue.jpg", detail.Dresses[0].ImageURL)
	})

	t.Run("no category", func(t *testing.T) {
		t.Parallel()
		svc, stores, dresses := newStoreService(t)

		st := &domain.Store{ID: uuid.New()}
		stores.On("GetByID", mock.Anything, st.ID).Return(st, nil)
		dresses.On("FindByStore", mock.Anything, st.ID, (*domain.DressCategory)(nil)).Return([]*domain.DressBrief{}, nil)

		detail, err := svc.FindStoreDetail(context.Background(), st.ID, nil)
		require.NoError(t, err)
		assert.Empty(t, detail.ImageURL)
		assert.Empty(t, detail.Dresses)
	})

	t.Run("unknown category", func(t *testing.T) {
		t.Parallel()
		svc, stores, dresses := newStoreService(t)

		category := "tuxedo"
		_, err := svc.FindStoreDetail(context.Background(), uuid.New(), &category)
		assert.ErrorIs(t, err, ErrInvalidCategory)
		stores.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		dresses.AssertNotCalled(t, "FindByStore", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown store", func(t *testing.T) {
		t.Parallel()
		svc, stores, dresses := newStoreService(t)

		id := uuid.New()
		stores.On("GetByID", mock.Anything, id).Return(nil, store.ErrStoreNotFound)
		dresses.On("FindByStore", mock.Anything, id, mock.Anything).Return([]*domain.DressBrief{}, nil).Maybe()

		_, err := svc.FindStoreDetail(context.Background(), id, nil)
		assert.ErrorIs(t, err, ErrNotFoundID)
		assert.ErrorIs(t, err, store.ErrStoreNotFound)
	})
}
