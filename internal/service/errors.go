package service

import (
	"errors"
	"fmt"

	"github.com/pickle-rental/pickle-api/internal/domain"
	"github.com/pickle-rental/pickle-api/internal/store"
)

// Service sentinels. Callers check them with errors.Is; the API layer maps
// them to HTTP status codes.
var (
	// ErrNotFoundID indicates that a referenced user, store, dress, option
	// or reservation does not exist. The entity-specific store error stays
	// in the chain.
	ErrNotFoundID = errors.New("referenced entity not found")

	// ErrInvalidParams indicates a request argument outside its allowed set,
	// such as an unknown sort key or a non-positive quantity.
	ErrInvalidParams = errors.New("invalid parameters")

	// ErrInvalidCategory indicates a category outside the closed set. Store
	// detail reports it on its own; catalog search folds it into ErrInvalidParams.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrTransitionNotAllowed is returned by a TransitionPolicy that rejects
	// a reservation status change.
	ErrTransitionNotAllowed = errors.New("reservation status transition not allowed")
)

// ServiceError adds the failing service operation to an error.
type ServiceError struct {
	Service   string
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, operation, message string, err error) *ServiceError {
	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// classify tags err with the matching service sentinel while keeping the
// original chain intact.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFoundID), errors.Is(err, ErrInvalidParams), errors.Is(err, ErrInvalidCategory):
		return err
	case store.IsNotFoundError(err):
		return fmt.Errorf("%w: %w", ErrNotFoundID, err)
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidSortOrder),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidReservationStatus),
		errors.Is(err, domain.ErrInvalidCoordinates),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrDuplicateOptionSlot),
		errors.Is(err, domain.ErrEmptyReservationItems):
		return fmt.Errorf("%w: %w", ErrInvalidParams, err)
	default:
		return err
	}
}

// invalidParams wraps a validation failure so that it matches ErrInvalidParams.
func invalidParams(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidParams, err)
}
