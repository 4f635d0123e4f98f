package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pickle-rental/pickle-api/internal/domain"
	"github.com/pickle-rental/pickle-api/internal/events"
	"github.com/pickle-rental/pickle-api/internal/platform/logger"
	"github.com/pickle-rental/pickle-api/internal/platform/media"
	"github.com/pickle-rental/pickle-api/internal/store"
)

// ReservationRequest is the input of CreateReservation.
type ReservationRequest struct {
	StoreID uuid.UUID              `json:"store_id" validate:"required"`
	DressID uuid.UUID              `json:"dress_id" validate:"required"`
	Items   []domain.StockQuantity `json:"reserved_dress_list" validate:"required,min=1,dive"`
}

// ReservationService runs the reservation workflow and serves order views.
type ReservationService interface {
	// GetReservationForm returns the store information shown before booking.
	GetReservationForm(ctx context.Context, storeID uuid.UUID) (*domain.ReservationForm, error)

	// CreateReservation writes a pending reservation with one line per
	// requested item, atomically.
	CreateReservation(ctx context.Context, userID uuid.UUID, req ReservationRequest) (*domain.DressReservation, error)

	// CancelReservation sets the reservation status to canceled.
	CancelReservation(ctx context.Context, reservationID uuid.UUID) (*domain.DressReservation, error)

	// GetOrderDetail returns the lines of one reservation of userID.
	GetOrderDetail(ctx context.Context, reservationID, userID uuid.UUID) ([]domain.OrderLine, error)

	// GetOrderList returns the reservations of userID. An empty status lists
	// every status.
	GetOrderList(ctx context.Context, status string, userID uuid.UUID) ([]domain.OrderSummary, error)
}

// ReservationServiceDeps collects the collaborators of the reservation workflow.
// Emitter and Policy are optional.
type ReservationServiceDeps struct {
	DB           *sql.DB
	Users        store.UserStore
	Stores       store.StoreStore
	Dresses      store.DressStore
	Options      store.OptionStore
	Reservations store.ReservationStore
	URLs         URLBuilder
	Emitter      events.EventEmitter
	Policy       TransitionPolicy
	Logger       *slog.Logger
}

type reservationServiceImpl struct {
	db           *sql.DB
	users        store.UserStore
	stores       store.StoreStore
	dresses      store.DressStore
	options      store.OptionStore
	reservations store.ReservationStore
	urls         URLBuilder
	emitter      events.EventEmitter
	policy       TransitionPolicy
	logger       *slog.Logger
}

// NewReservationService creates a ReservationService.
// It returns an error if any of the required dependencies are nil.
func NewReservationService(deps ReservationServiceDeps) (ReservationService, error) {
	switch {
	case deps.DB == nil:
		return nil, domain.NewValidationError("DB", "cannot be nil", domain.ErrValidation)
	case deps.Users == nil:
		return nil, domain.NewValidationError("Users", "cannot be nil", domain.ErrValidation)
	case deps.Stores == nil:
		return nil, domain.NewValidationError("Stores", "cannot be nil", domain.ErrValidation)
	case deps.Dresses == nil:
		return nil, domain.NewValidationError("Dresses", "cannot be nil", domain.ErrValidation)
	case deps.Options == nil:
		return nil, domain.NewValidationError("Options", "cannot be nil", domain.ErrValidation)
	case deps.Reservations == nil:
		return nil, domain.NewValidationError("Reservations", "cannot be nil", domain.ErrValidation)
	case deps.URLs == nil:
		return nil, domain.NewValidationError("URLs", "cannot be nil", domain.ErrValidation)
	}

	l := deps.Logger
	if l == nil {
		l = slog.Default()
	}
	policy := deps.Policy
	if policy == nil {
		policy = AllowAllTransitions
	}

	return &reservationServiceImpl{
		db:           deps.DB,
		users:        deps.Users,
		stores:       deps.Stores,
		dresses:      deps.Dresses,
		options:      deps.Options,
		reservations: deps.Reservations,
		urls:         deps.URLs,
		emitter:      deps.Emitter,
		policy:       policy,
		logger:       l.With(slog.String("component", "reservation_service")),
	}, nil
}

// GetReservationForm implements ReservationService.GetReservationForm
func (s *reservationServiceImpl) GetReservationForm(
	ctx context.Context,
	storeID uuid.UUID,
) (*domain.ReservationForm, error) {
	st, err := s.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, NewServiceError("reservation", "GetReservationForm", "failed to resolve store", classify(err))
	}
	return &domain.ReservationForm{
		StoreID:   st.ID,
		StoreName: st.Name,
		Address:   st.Address,
		Phone:     st.Phone,
		ImageURL:  imageURL(s.urls, media.BucketStores, st.ImageKey),
	}, nil
}

// CreateReservation implements ReservationService.CreateReservation
// Store, dress and every option are resolved inside the transaction; any
// failure rolls back the header together with the lines written so far.
// Available stock is not checked.
func (s *reservationServiceImpl) CreateReservation(
	ctx context.Context,
	userID uuid.UUID,
	req ReservationRequest,
) (*domain.DressReservation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(req.Items) == 0 {
		return nil, invalidParams(domain.ErrEmptyReservationItems)
	}
	for _, item := range req.Items {
		if err := domain.ValidateStockQuantity(item); err != nil {
			return nil, invalidParams(err)
		}
	}

	var reservation *domain.DressReservation
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStores := s.stores.WithTx(tx)
		txDresses := s.dresses.WithTx(tx)
		txOptions := s.options.WithTx(tx)
		txReservations := s.reservations.WithTx(tx)

		st, err := txStores.GetByID(ctx, req.StoreID)
		if err != nil {
			return err
		}
		dress, err := txDresses.GetByID(ctx, req.DressID)
		if err != nil {
			return err
		}

		r, err := domain.NewDressReservation(userID, st.ID)
		if err != nil {
			return err
		}
		if err := txReservations.Create(ctx, r); err != nil {
			return err
		}

		for _, item := range req.Items {
			option1, err := txOptions.GetDetailByID(ctx, item.Option1ID)
			if err != nil {
				return err
			}
			option2, err := txOptions.GetDetailByID(ctx, item.Option2ID)
			if err != nil {
				return err
			}
			line, err := domain.NewReservedDress(r.ID, dress.ID, option1, option2, item.Quantity)
			if err != nil {
				return err
			}
			if err := txReservations.CreateItem(ctx, line); err != nil {
				return err
			}
			r.Items = append(r.Items, line)
		}

		reservation = r
		return nil
	})
	if err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to create reservation",
				slog.String("error", err.Error()),
				slog.String("user_id", userID.String()),
				slog.String("store_id", req.StoreID.String()))
		}
		return nil, NewServiceError("reservation", "CreateReservation", "reservation rolled back", classify(err))
	}

	log.Info("reservation created",
		slog.String("reservation_id", reservation.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("item_count", len(reservation.Items)))

	s.emit(ctx, events.TypeReservationCreated, reservation)
	return reservation, nil
}

// CancelReservation implements ReservationService.CancelReservation
// The row is locked while the transition policy runs so concurrent status
// changes serialize.
func (s *reservationServiceImpl) CancelReservation(
	ctx context.Context,
	reservationID uuid.UUID,
) (*domain.DressReservation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var reservation *domain.DressReservation
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txReservations := s.reservations.WithTx(tx)

		r, err := txReservations.GetForUpdate(ctx, reservationID)
		if err != nil {
			return err
		}
		if err := s.policy.Check(r.Status, domain.ReservationStatusCanceled); err != nil {
			return err
		}
		if err := r.SetStatus(domain.ReservationStatusCanceled); err != nil {
			return err
		}
		if err := txReservations.UpdateStatus(ctx, r.ID, r.Status, r.UpdatedAt); err != nil {
			return err
		}
		reservation = r
		return nil
	})
	if err != nil {
		if !store.IsNotFoundError(err) && !errors.Is(err, ErrTransitionNotAllowed) {
			log.Error("failed to cancel reservation",
				slog.String("error", err.Error()),
				slog.String("reservation_id", reservationID.String()))
		}
		return nil, NewServiceError("reservation", "CancelReservation", "cancel failed", classify(err))
	}

	log.Info("reservation canceled", slog.String("reservation_id", reservationID.String()))
	s.emit(ctx, events.TypeReservationCanceled, reservation)
	return reservation, nil
}

// GetOrderDetail implements ReservationService.GetOrderDetail
func (s *reservationServiceImpl) GetOrderDetail(
	ctx context.Context,
	reservationID, userID uuid.UUID,
) ([]domain.OrderLine, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, NewServiceError("reservation", "GetOrderDetail", "failed to resolve user", classify(err))
	}

	lines, err := s.reservations.FindOrderLines(ctx, reservationID, userID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to load order lines",
			slog.String("error", err.Error()),
			slog.String("reservation_id", reservationID.String()))
		return nil, NewServiceError("reservation", "GetOrderDetail", "failed to load order", classify(err))
	}

	result := make([]domain.OrderLine, 0, len(lines))
	for _, line := range lines {
		line.ImageURL = imageURL(s.urls, media.BucketDresses, line.ImageKey)
		result = append(result, *line)
	}
	return result, nil
}

// GetOrderList implements ReservationService.GetOrderList
func (s *reservationServiceImpl) GetOrderList(
	ctx context.Context,
	status string,
	userID uuid.UUID,
) ([]domain.OrderSummary, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, NewServiceError("reservation", "GetOrderList", "failed to resolve user", classify(err))
	}

	var filter *domain.ReservationStatus
	if strings.TrimSpace(status) != "" {
		st, err := domain.ParseReservationStatus(status)
		if err != nil {
			return nil, invalidParams(err)
		}
		filter = &st
	}

	summaries, err := s.reservations.FindOrderSummaries(ctx, userID, filter)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to load order list",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewServiceError("reservation", "GetOrderList", "failed to load orders", classify(err))
	}

	result := make([]domain.OrderSummary, 0, len(summaries))
	for _, sum := range summaries {
		sum.ImageURL = imageURL(s.urls, media.BucketDresses, sum.ImageKey)
		result = append(result, *sum)
	}
	return result, nil
}

// emit publishes a reservation event. The reservation is already committed,
// so failures are only logged.
func (s *reservationServiceImpl) emit(ctx context.Context, eventType string, r *domain.DressReservation) {
	if s.emitter == nil {
		return
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	event, err := events.NewEvent(eventType, events.ReservationPayload{
		ReservationID: r.ID,
		UserID:        r.UserID,
		StoreID:       r.StoreID,
		Status:        string(r.Status),
		ItemCount:     len(r.Items),
	})
	if err != nil {
		log.Error("failed to build reservation event",
			slog.String("error", err.Error()),
			slog.String("event_type", eventType))
		return
	}
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		log.Error("failed to emit reservation event",
			slog.String("error", err.Error()),
			slog.String("event_type", eventType),
			slog.String("reservation_id", r.ID.String()))
	}
}
