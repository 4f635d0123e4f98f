package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pickle-rental/pickle-api/internal/domain"
	"github.com/pickle-rental/pickle-api/internal/events"
	"github.com/pickle-rental/pickle-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockUserStore mocks the store.UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) WithTx(_ *sql.Tx) store.UserStore {
	return m
}

// MockStoreStore mocks the store.StoreStore interface
type MockStoreStore struct {
	mock.Mock
}

func (m *MockStoreStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Store), args.Error(1)
}

func (m *MockStoreStore) FindAll(ctx context.Context) ([]*domain.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Store), args.Error(1)
}

func (m *MockStoreStore) WithTx(_ *sql.Tx) store.StoreStore {
	return m
}

// MockDressStore mocks the store.DressStore interface
type MockDressStore struct {
	mock.Mock
}

func (m *MockDressStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dress, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dress), args.Error(1)
}

func (m *MockDressStore) Search(
	ctx context.Context,
	criteria domain.DressSearchCriteria,
) ([]*domain.DressBrief, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DressBrief), args.Error(1)
}

func (m *MockDressStore) FindByStore(
	ctx context.Context,
	storeID uuid.UUID,
	category *domain.DressCategory,
) ([]*domain.DressBrief, error) {
	args := m.Called(ctx, storeID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DressBrief), args.Error(1)
}

func (m *MockDressStore) FindLikedByUser(ctx context.Context, userID uuid.UUID) ([]*domain.LikedDress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LikedDress), args.Error(1)
}

func (m *MockDressStore) GetImages(ctx context.Context, dressID uuid.UUID) ([]*domain.DressImage, error) {
	args := m.Called(ctx, dressID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DressImage), args.Error(1)
}

func (m *MockDressStore) GetOptions(ctx context.Context, dressID uuid.UUID) ([]*domain.DressOption, error) {
	args := m.Called(ctx, dressID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DressOption), args.Error(1)
}

func (m *MockDressStore) WithTx(_ *sql.Tx) store.DressStore {
	return m
}

// MockOptionStore mocks the store.OptionStore interface
type MockOptionStore struct {
	mock.Mock
}

func (m *MockOptionStore) GetDetailByID(ctx context.Context, id uuid.UUID) (*domain.DressOptionDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DressOptionDetail), args.Error(1)
}

func (m *MockOptionStore) WithTx(_ *sql.Tx) store.OptionStore {
	return m
}

// MockReservationStore mocks the store.ReservationStore interface
type MockReservationStore struct {
	mock.Mock
}

func (m *MockReservationStore) Create(ctx context.Context, r *domain.DressReservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReservationStore) CreateItem(ctx context.Context, item *domain.ReservedDress) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockReservationStore) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.DressReservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DressReservation), args.Error(1)
}

func (m *MockReservationStore) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.ReservationStatus,
	updatedAt time.Time,
) error {
	args := m.Called(ctx, id, status, updatedAt)
	return args.Error(0)
}

func (m *MockReservationStore) FindOrderLines(
	ctx context.Context,
	reservationID, userID uuid.UUID,
) ([]*domain.OrderLine, error) {
	args := m.Called(ctx, reservationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.OrderLine), args.Error(1)
}

func (m *MockReservationStore) FindOrderSummaries(
	ctx context.Context,
	userID uuid.UUID,
	status *domain.ReservationStatus,
) ([]*domain.OrderSummary, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.OrderSummary), args.Error(1)
}

func (m *MockReservationStore) WithTx(_ *sql.Tx) store.ReservationStore {
	return m
}

// MockLikeStore mocks the store.LikeStore interface
type MockLikeStore struct {
	mock.Mock
}

func (m *MockLikeStore) Toggle(ctx context.Context, userID, dressID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, dressID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeStore) Exists(ctx context.Context, userID, dressID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, dressID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeStore) WithTx(_ *sql.Tx) store.LikeStore {
	return m
}

// MockRecentViewStore mocks the store.RecentViewStore interface
type MockRecentViewStore struct {
	mock.Mock
}

func (m *MockRecentViewStore) Increment(ctx context.Context, userID, dressID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID, dressID)
	return args.Int(0), args.Error(1)
}

func (m *MockRecentViewStore) WithTx(_ *sql.Tx) store.RecentViewStore {
	return m
}

// MockRecentViewService mocks the RecentViewService interface
type MockRecentViewService struct {
	mock.Mock
}

func (m *MockRecentViewService) RecordView(ctx context.Context, userID, dressID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID, dressID)
	return args.Int(0), args.Error(1)
}

// MockEventEmitter mocks the events.EventEmitter interface
type MockEventEmitter struct {
	mock.Mock
}

func (m *MockEventEmitter) EmitEvent(ctx context.Context, event *events.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// fakeURLs resolves every bucket to a fixed CDN prefix.
type fakeURLs struct{}

func (fakeURLs) URLHead(bucket string) string {
	return "https://cdn.test/" + bucket + "/"
}
