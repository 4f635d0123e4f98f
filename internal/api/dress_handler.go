package api

import (
	"log/slog"
	"net/http"

	"github.com/pickle-rental/pickle-api/internal/api/shared"
	"github.com/pickle-rental/pickle-api/internal/platform/logger"
	"github.com/pickle-rental/pickle-api/internal/service"
)

// LikeResponse is the body returned after toggling a like.
type LikeResponse struct {
	DressID string `json:"dress_id"`
	Liked   bool   `json:"liked"`
}

// DressHandler serves the authenticated catalog endpoints.
type DressHandler struct {
	dresses service.DressService
	likes   service.LikeService
	logger  *slog.Logger
}

// NewDressHandler creates a new DressHandler
func NewDressHandler(dresses service.DressService, likes service.LikeService, logger *slog.Logger) *DressHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for DressHandler")
	}
	return &DressHandler{
		dresses: dresses,
		likes:   likes,
		logger:  logger.With(slog.String("component", "dress_handler")),
	}
}

// SearchDress handles GET /api/dresses?name=&sort=&category=&lat=&lng=
func (h *DressHandler) SearchDress(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

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

	q := r.URL.Query()
	dresses, err := h.dresses.SearchDress(r.Context(), service.SearchDressParams{
		Name:     q.Get("name"),
		Sort:     q.Get("sort"),
		Category: q.Get("category"),
		Lat:      lat,
		Lng:      lng,
		UserID:   userID,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, dresses)
}

// FindDressDetail handles GET /api/dresses/{id}
func (h *DressHandler) FindDressDetail(w http.ResponseWriter, r *http.Request) {
	userID, dressID, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.dresses.FindDressDetail(r.Context(), dressID, userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, detail)
}

// ListLikedDresses handles GET /api/dresses/likes
func (h *DressHandler) ListLikedDresses(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	liked, err := h.dresses.ListLikedDresses(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, liked)
}

// ToggleLike handles POST /api/dresses/{id}/like
func (h *DressHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	userID, dressID, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	liked, err := h.likes.ToggleLike(r.Context(), userID, dressID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("dress like toggled",
		slog.String("dress_id", dressID.String()),
		slog.Bool("liked", liked))
	shared.RespondWithJSON(w, r, http.StatusOK, LikeResponse{DressID: dressID.String(), Liked: liked})
}
