// Package events carries domain events from services to any interested
// handler without the service knowing who listens.
//
// The reservation workflow publishes ReservationCreated and
// ReservationCanceled after its transaction commits. Handlers run
// synchronously in registration order; a handler error is reported to the
// emitter's caller, which by convention only logs it because the state
// change it describes has already been persisted.
package events
