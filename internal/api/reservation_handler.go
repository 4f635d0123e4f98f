package api

import (
	"log/slog"
	"net/http"

	"github.com/pickle-rental/pickle-api/internal/api/shared"
	"github.com/pickle-rental/pickle-api/internal/platform/logger"
	"github.com/pickle-rental/pickle-api/internal/service"
)

// ReservationHandler serves the authenticated reservation endpoints.
type ReservationHandler struct {
	reservations service.ReservationService
	logger       *slog.Logger
}

// NewReservationHandler creates a new ReservationHandler
func NewReservationHandler(reservations service.ReservationService, logger *slog.Logger) *ReservationHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ReservationHandler")
	}
	return &ReservationHandler{
		reservations: reservations,
		logger:       logger.With(slog.String("component", "reservation_handler")),
	}
}

// CreateReservation handles POST /api/reservations
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req service.ReservationRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		if MapErrorToStatusCode(err) == http.StatusBadRequest {
			HandleAPIError(w, r, err, "")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	reservation, err := h.reservations.CreateReservation(r.Context(), userID, req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("reservation accepted",
		slog.String("reservation_id", reservation.ID.String()),
		slog.Int("item_count", len(reservation.Items)))
	shared.RespondWithJSON(w, r, http.StatusCreated, reservation)
}

// GetOrderList handles GET /api/reservations?status=
func (h *ReservationHandler) GetOrderList(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	orders, err := h.reservations.GetOrderList(r.Context(), r.URL.Query().Get("status"), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, orders)
}

// GetOrderDetail handles GET /api/reservations/{id}
func (h *ReservationHandler) GetOrderDetail(w http.ResponseWriter, r *http.Request) {
	userID, reservationID, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	lines, err := h.reservations.GetOrderDetail(r.Context(), reservationID, userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, lines)
}

// CancelReservation handles PATCH /api/reservations/{id}/cancel
func (h *ReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	_, reservationID, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	reservation, err := h.reservations.CancelReservation(r.Context(), reservationID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, reservation)
}
