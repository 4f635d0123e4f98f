package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/pickle-rental/pickle-api/internal/domain"
	"github.com/pickle-rental/pickle-api/internal/mocks"
	"github.com/pickle-rental/pickle-api/internal/service"
	"github.com/pickle-rental/pickle-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreHandler_GetNearStores(t *testing.T) {
	t.Parallel()

	near := []domain.StoreDistance{
		{Store: &domain.Store{ID: uuid.New(), Name: "Pickle Gangnam"}, Distance: 120},
		{Store: &domain.Store{ID: uuid.New(), Name: "Pickle Sinsa"}, Distance: 480},
	}

	var gotLat, gotLng float64
	stores := &mocks.MockStoreService{
		GetNearStoresFn: func(_ context.Context, lat, lng float64) ([]domain.StoreDistance, error) {
			gotLat, gotLng = lat, lng
			return near, nil
		},
	}
	h := NewStoreHandler(stores, &mocks.MockReservationService{}, discardLogger())

	rec := httptest.NewRecorder()
	h.GetNearStores(rec, newRequest(t, http.MethodGet, "/api/stores/near?lat=37.5172&lng=127.0473", nil, nil, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 37.5172, gotLat, 1e-9)
	assert.InDelta(t, 127.0473, gotLng, 1e-9)

	var body []domain.StoreDistance
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, "Pickle Gangnam", body[0].Store.Name)
}

func TestStoreHandler_GetNearStores_BadQuery(t *testing.T) {
	t.Parallel()

	called := false
	stores := &mocks.MockStoreService{
		GetNearStoresFn: func(context.Context, float64, float64) ([]domain.StoreDistance, error) {
			called = true
			return nil, nil
		},
	}
	h := NewStoreHandler(stores, &mocks.MockReservationService{}, discardLogger())

	tests := []struct {
		name    string
		target  string
		message string
	}{
		{"missing lng", "/api/stores/near?lat=37.5", "lat and lng are required"},
		{"missing both", "/api/stores/near", "lat and lng are required"},
		{"not a number", "/api/stores/near?lat=north&lng=127", "Invalid coordinates"},
		{"NaN", "/api/stores/near?lat=NaN&lng=0", "Invalid coordinates"},
		{"infinite", "/api/stores/near?lat=0&lng=Inf", "Invalid coordinates"},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.GetNearStores(rec, newRequest(t, http.MethodGet, tt.target, nil, nil, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code, tt.name)
		assert.Equal(t, tt.message, decodeError(t, rec).Error, tt.name)
	}
	assert.False(t, called)
}

func TestStoreHandler_GetNearStores_OutOfRange(t *testing.T) {
	t.Parallel()

	stores := &mocks.MockStoreService{
		GetNearStoresFn: func(context.Context, float64, float64) ([]domain.StoreDistance, error) {
			return nil, service.NewServiceError("store", "GetNearStores", "invalid position",
				fmt.Errorf("%w: %w", service.ErrInvalidParams, domain.ErrInvalidCoordinates))
		},
	}
	h := NewStoreHandler(stores, &mocks.MockReservationService{}, discardLogger())

	rec := httptest.NewRecorder()
	h.GetNearStores(rec, newRequest(t, http.MethodGet, "/api/stores/near?lat=91&lng=0", nil, nil, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStoreHandler_FindStoreDetail(t *testing.T) {
	t.Parallel()

	storeID := uuid.New()

	t.Run("without category", func(t *testing.T) {
		t.Parallel()

		var gotCategory *string
		stores := &mocks.MockStoreService{
			FindStoreDetailFn: func(_ context.Context, id uuid.UUID, category *string) (*domain.StoreDetail, error) {
				gotCategory = category
				return &domain.StoreDetail{Store: &domain.Store{ID: id}}, nil
			},
		}
		h := NewStoreHandler(stores, &mocks.MockReservationService{}, discardLogger())

		rec := httptest.NewRecorder()
		h.FindStoreDetail(rec, newRequest(t, http.MethodGet, "/api/stores/"+storeID.String(), nil, nil,
			map[string]string{"id": storeID.String()}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, gotCategory)
	})

	t.Run("with empty category", func(t *testing.T) {
		t.Parallel()

		var gotCategory *string
		stores := &mocks.MockStoreService{
			FindStoreDetailFn: func(_ context.Context, id uuid.UUID, category *string) (*domain.StoreDetail, error) {
				gotCategory = category
				return &domain.StoreDetail{Store: &domain.Store{ID: id}}, nil
			},
		}
		h := NewStoreHandler(stores, &mocks.MockReservationService{}, discardLogger())

		rec := httptest.NewRecorder()
		h.FindStoreDetail(rec, newRequest(t, http.MethodGet, "/api/stores/x?category=", nil, nil,
			map[string]string{"id": storeID.String()}))

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotCategory)
		assert.Empty(t, *gotCategory)
	})

	t.Run("unknown store", func(t *testing.T) {
		t.Parallel()

		stores := &mocks.MockStoreService{
			FindStoreDetailFn: func(context.Context, uuid.UUID, *string) (*domain.StoreDetail, error) {
				return nil, service.NewServiceError("store", "FindStoreDetail", "store not found",
					fmt.Errorf("%w: %w", service.ErrNotFoundID, store.ErrStoreNotFound))
			},
		}
		h := NewStoreHandler(stores, &mocks.MockReservationService{}, discardLogger())

		rec := httptest.NewRecorder()
		h.FindStoreDetail(rec, newRequest(t, http.MethodGet, "/api/stores/x", nil, nil,
			map[string]string{"id": storeID.String()}))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Store not found", decodeError(t, rec).Error)
	})

	t.Run("invalid category", func(t *testing.T) {
		t.Parallel()

		stores := &mocks.MockStoreService{
			FindStoreDetailFn: func(context.Context, uuid.UUID, *string) (*domain.StoreDetail, error) {
				return nil, service.ErrInvalidCategory
			},
		}
		h := NewStoreHandler(stores, &mocks.MockReservationService{}, discardLogger())

		rec := httptest.NewRecorder()
		h.FindStoreDetail(rec, newRequest(t, http.MethodGet, "/api/stores/x?category=TUX", nil, nil,
			map[string]string{"id": storeID.String()}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid category", decodeError(t, rec).Error)
	})

	t.Run("malformed id", func(t *testing.T) {
		t.Parallel()

		h := NewStoreHandler(&mocks.MockStoreService{}, &mocks.MockReservationService{}, discardLogger())

		rec := httptest.NewRecorder()
		h.FindStoreDetail(rec, newRequest(t, http.MethodGet, "/api/stores/abc", nil, nil,
			map[string]string{"id": "abc"}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid ID", decodeError(t, rec).Error)
	})
}

func TestStoreHandler_GetReservationForm(t *testing.T) {
	t.Parallel()

	storeID := uuid.New()
	reservations := &mocks.MockReservationService{
		GetReservationFormFn: func(_ context.Context, id uuid.UUID) (*domain.ReservationForm, error) {
			if id != storeID {
				return nil, errors.New("unexpected store")
			}
			return &domain.ReservationForm{StoreID: id, StoreName: "Pickle Hannam"}, nil
		},
	}
	h := NewStoreHandler(&mocks.MockStoreService{}, reservations, discardLogger())

	rec := httptest.NewRecorder()
	h.GetReservationForm(rec, newRequest(t, http.MethodGet, "/", nil, nil, map[string]string{"id": storeID.String()}))

	require.Equal(t, http.StatusOK, rec.Code)
	var form domain.ReservationForm
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&form))
	assert.Equal(t, "Pickle Hannam", form.StoreName)
}

func TestNewStoreHandler_NilLoggerPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewStoreHandler(&mocks.MockStoreService{}, &mocks.MockReservationService{}, nil)
	})
}
