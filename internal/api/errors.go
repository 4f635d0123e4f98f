package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/pickle-rental/pickle-api/internal/api/shared"
	"github.com/pickle-rental/pickle-api/internal/domain"
	"github.com/pickle-rental/pickle-api/internal/service"
	"github.com/pickle-rental/pickle-api/internal/service/auth"
	"github.com/pickle-rental/pickle-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// exposing their types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFoundID),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrTransitionNotAllowed):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidParams),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidCoordinates),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidSortOrder),
		errors.Is(err, domain.ErrInvalidReservationStatus),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, shared.ErrEmptyBody):
		return http.StatusBadRequest
	default:
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return http.StatusBadRequest
		}
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for err.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return "Invalid token"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrStoreNotFound):
		return "Store not found"
	case errors.Is(err, store.ErrDressNotFound):
		return "Dress not found"
	case errors.Is(err, store.ErrOptionNotFound):
		return "Dress option not found"
	case errors.Is(err, store.ErrReservationNotFound):
		return "Reservation not found"
	case errors.Is(err, service.ErrNotFoundID), errors.Is(err, store.ErrNotFound):
		return "Not found"

	case errors.Is(err, service.ErrTransitionNotAllowed):
		return "Reservation status cannot be changed"

	case errors.Is(err, service.ErrInvalidCategory), errors.Is(err, domain.ErrInvalidCategory):
		return "Invalid category"
	case errors.Is(err, domain.ErrInvalidSortOrder):
		return "Invalid sort order"
	case errors.Is(err, domain.ErrInvalidReservationStatus):
		return "Invalid reservation status"
	case errors.Is(err, domain.ErrInvalidCoordinates):
		return "Invalid coordinates"
	case errors.Is(err, domain.ErrInvalidQuantity):
		return "Quantity must be greater than zero"
	case errors.Is(err, domain.ErrDuplicateOptionSlot):
		return "Options of a reserved dress must be distinct"
	case errors.Is(err, domain.ErrEmptyReservationItems):
		return "Reservation must contain at least one item"
	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID"
	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"
	case errors.Is(err, service.ErrInvalidParams),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request parameters"
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return SanitizeValidationError(verrs)
	}
	return "An unexpected error occurred"
}

// SanitizeValidationError reports the first failing field of a validator
// error without echoing the submitted value.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Validation error"
	}
	fe := verrs[0]
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
}

func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "gt", "gte":
		return "too small"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the response for err. A non-empty message replaces
// the default safe message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
