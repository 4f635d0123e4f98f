package api

import (
	"log/slog"
	"net/http"

	"github.com/pickle-rental/pickle-api/internal/api/shared"
	"github.com/pickle-rental/pickle-api/internal/domain"
	"github.com/pickle-rental/pickle-api/internal/platform/logger"
	"github.com/pickle-rental/pickle-api/internal/service"
)

// StoreHandler serves the public store endpoints.
type StoreHandler struct {
	stores       service.StoreService
	reservations service.ReservationService
	logger       *slog.Logger
}

// NewStoreHandler creates a new StoreHandler
func NewStoreHandler(
	stores service.StoreService,
	reservations service.ReservationService,
	logger *slog.Logger,
) *StoreHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for StoreHandler")
	}
	return &StoreHandler{
		stores:       stores,
		reservations: reservations,
		logger:       logger.With(slog.String("component", "store_handler")),
	}
}

// GetNearStores handles GET /api/stores/near?lat=&lng=
func (h *StoreHandler) GetNearStores(w http.ResponseWriter, r *http.Request) {
	lat, err := queryFloat(r, "lat")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	lng, err := queryFloat(r, "lng")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if lat == nil || lng == nil {
		HandleAPIError(w, r, domain.NewValidationError("lat/lng", "are required", domain.ErrInvalidCoordinates),
			"lat and lng are required")
		return
	}

	stores, err := h.stores.GetNearStores(r.Context(), *lat, *lng)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, stores)
}

// FindStoreDetail handles GET /api/stores/{id}?category=
func (h *StoreHandler) FindStoreDetail(w http.ResponseWriter, r *http.Request) {
	storeID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var category *string
	if q := r.URL.Query(); q.Has("category") {
		c := q.Get("category")
		category = &c
	}

	detail, err := h.stores.FindStoreDetail(r.Context(), storeID, category)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("store detail served",
		slog.String("store_id", storeID.String()),
		slog.Int("dresses", len(detail.Dresses)))
	shared.RespondWithJSON(w, r, http.StatusOK, detail)
}

// GetReservationForm handles GET /api/stores/{id}/reservation-form
func (h *StoreHandler) GetReservationForm(w http.ResponseWriter, r *http.Request) {
	storeID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	form, err := h.reservations.GetReservationForm(r.Context(), storeID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, form)
}
