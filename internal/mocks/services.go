package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/pickle-rental/pickle-api/internal/domain"
	"github.com/pickle-rental/pickle-api/internal/service"
)

// MockStoreService implements service.StoreService for testing
type MockStoreService struct {
	GetNearStoresFn   func(ctx context.Context, lat, lng float64) ([]domain.StoreDistance, error)
	FindStoreDetailFn func(ctx context.Context, storeID uuid.UUID, category *string) (*domain.StoreDetail, error)
}

var _ service.StoreService = (*MockStoreService)(nil)

func (m *MockStoreService) GetNearStores(ctx context.Context, lat, lng float64) ([]domain.StoreDistance, error) {
	if m.GetNearStoresFn != nil {
		return m.GetNearStoresFn(ctx, lat, lng)
	}
	return nil, nil
}

func (m *MockStoreService) FindStoreDetail(
	ctx context.Context,
	storeID uuid.UUID,
	category *string,
) (*domain.StoreDetail, error) {
	if m.FindStoreDetailFn != nil {
		return m.FindStoreDetailFn(ctx, storeID, category)
	}
	return &domain.StoreDetail{}, nil
}

// MockDressService implements service.DressService for testing
type MockDressService struct {
	SearchDressFn      func(ctx context.Context, params service.SearchDressParams) ([]domain.DressBrief, error)
	FindDressDetailFn  func(ctx context.Context, dressID, userID uuid.UUID) (*domain.DressDetail, error)
	ListLikedDressesFn func(ctx context.Context, userID uuid.UUID) ([]domain.LikedDress, error)
}

var _ service.DressService = (*MockDressService)(nil)

func (m *MockDressService) SearchDress(
	ctx context.Context,
	params service.SearchDressParams,
) ([]domain.DressBrief, error) {
	if m.SearchDressFn != nil {
		return m.SearchDressFn(ctx, params)
	}
	return nil, nil
}

func (m *MockDressService) FindDressDetail(ctx context.Context, dressID, userID uuid.UUID) (*domain.DressDetail, error) {
	if m.FindDressDetailFn != nil {
		return m.FindDressDetailFn(ctx, dressID, userID)
	}
	return &domain.DressDetail{}, nil
}

func (m *MockDressService) ListLikedDresses(ctx context.Context, userID uuid.UUID) ([]domain.LikedDress, error) {
	if m.ListLikedDressesFn != nil {
		return m.ListLikedDressesFn(ctx, userID)
	}
	return nil, nil
}

// MockLikeService implements service.LikeService for testing
type MockLikeService struct {
	ToggleLikeFn func(ctx context.Context, userID, dressID uuid.UUID) (bool, error)
}

var _ service.LikeService = (*MockLikeService)(nil)

func (m *MockLikeService) ToggleLike(ctx context.Context, userID, dressID uuid.UUID) (bool, error) {
	if m.ToggleLikeFn != nil {
		return m.ToggleLikeFn(ctx, userID, dressID)
	}
	return false, nil
}

// MockReservationService implements service.ReservationService for testing
type MockReservationService struct {
	GetReservationFormFn func(ctx context.Context, storeID uuid.UUID) (*domain.ReservationForm, error)
	CreateReservationFn  func(
		ctx context.Context,
		userID uuid.UUID,
		req service.ReservationRequest,
	) (*domain.DressReservation, error)
	CancelReservationFn func(ctx context.Context, reservationID uuid.UUID) (*domain.DressReservation, error)
	GetOrderDetailFn    func(ctx context.Context, reservationID, userID uuid.UUID) ([]domain.OrderLine, error)
	GetOrderListFn      func(ctx context.Context, status string, userID uuid.UUID) ([]domain.OrderSummary, error)
}

var _ service.ReservationService = (*MockReservationService)(nil)

func (m *MockReservationService) GetReservationForm(
	ctx context.Context,
	storeID uuid.UUID,
) (*domain.ReservationForm, error) {
	if m.GetReservationFormFn != nil {
		return m.GetReservationFormFn(ctx, storeID)
	}
	return &domain.ReservationForm{}, nil
}

func (m *MockReservationService) CreateReservation(
	ctx context.Context,
	userID uuid.UUID,
	req service.ReservationRequest,
) (*domain.DressReservation, error) {
	if m.CreateReservationFn != nil {
		return m.CreateReservationFn(ctx, userID, req)
	}
	return &domain.DressReservation{}, nil
}

func (m *MockReservationService) CancelReservation(
	ctx context.Context,
	reservationID uuid.UUID,
) (*domain.DressReservation, error) {
	if m.CancelReservationFn != nil {
		return m.CancelReservationFn(ctx, reservationID)
	}
	return &domain.DressReservation{}, nil
}

func (m *MockReservationService) GetOrderDetail(
	ctx context.Context,
	reservationID, userID uuid.UUID,
) ([]domain.OrderLine, error) {
	if m.GetOrderDetailFn != nil {
		return m.GetOrderDetailFn(ctx, reservationID, userID)
	}
	return nil, nil
}

func (m *MockReservationService) GetOrderList(
	ctx context.Context,
	status string,
	userID uuid.UUID,
) ([]domain.OrderSummary, error) {
	if m.GetOrderListFn != nil {
		return m.GetOrderListFn(ctx, status, userID)
	}
	return nil, nil
}
