package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pickle-rental/pickle-api/internal/api/shared"
	"github.com/pickle-rental/pickle-api/internal/domain"
	"github.com/pickle-rental/pickle-api/internal/service"
	"github.com/pickle-rental/pickle-api/internal/service/auth"
	"github.com/pickle-rental/pickle-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"service not found", service.ErrNotFoundID, http.StatusNotFound},
		{"store not found", fmt.Errorf("lookup: %w", store.ErrDressNotFound), http.StatusNotFound},
		{"transition", service.ErrTransitionNotAllowed, http.StatusConflict},
		{"invalid params", service.ErrInvalidParams, http.StatusBadRequest},
		{"validation error", domain.NewValidationError("lat", "out of range", domain.ErrInvalidCoordinates), http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"empty body", shared.ErrEmptyBody, http.StatusBadRequest},
		{"wrapped in service error", service.NewServiceError("dress", "SearchDress", "bad sort",
			fmt.Errorf("%w: %w", service.ErrInvalidParams, domain.ErrInvalidSortOrder)), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{nil, "An unexpected error occurred"},
		{auth.ErrExpiredToken, "Token expired"},
		{fmt.Errorf("%w: %w", service.ErrNotFoundID, store.ErrUserNotFound), "User not found"},
		{service.ErrNotFoundID, "Not found"},
		{service.ErrTransitionNotAllowed, "Reservation status cannot be changed"},
		{fmt.Errorf("%w: %w", service.ErrInvalidParams, domain.ErrEmptyReservationItems), "Reservation must contain at least one item"},
		{fmt.Errorf("%w: %w", service.ErrInvalidParams, domain.ErrInvalidQuantity), "Quantity must be greater than zero"},
		{service.ErrInvalidParams, "Invalid request parameters"},
		{errors.New("pq: password authentication failed"), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `validate:"required"`
		Size int    `validate:"gte=1"`
	}

	err := shared.ValidateRequest(&payload{Size: 1})
	require.Error(t, err)
	assert.Equal(t, "Invalid Name: required field", SanitizeValidationError(err))
	assert.Equal(t, http.StatusBadRequest, MapErrorToStatusCode(err))

	err = shared.ValidateRequest(&payload{Name: "ivory"})
	require.Error(t, err)
	assert.Equal(t, "Invalid Size: too small", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("other")))
}

func TestHandleAPIError_DoesNotLeakDetails(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/dresses", nil)
	req = req.WithContext(shared.SetTraceID(req.Context()))
	rec := httptest.NewRecorder()

	HandleAPIError(rec, req, errors.New(`SELECT * FROM users WHERE email = 'a@b.kr'`), "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, strings.Contains(rec.Body.String(), "SELECT"))
	resp := decodeError(t, rec)
	assert.Equal(t, "An unexpected error occurred", resp.Error)
	assert.NotEmpty(t, resp.TraceID)
}

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	HealthHandler(pingFunc(func() error { return nil }))(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","database":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	HealthHandler(pingFunc(func() error { return errors.New("dial tcp: refused") }))(rec,
		httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "Database unavailable", decodeError(t, rec).Error)
}
