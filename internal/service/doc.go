// Package service contains the rental use cases: store search, the dress
// catalog, likes, view tracking and the reservation workflow. Services
// depend on the interfaces in internal/store, never on a concrete database,
// and translate store failures into the sentinel errors declared in errors.go
// so the API layer can map them without knowing about persistence.
//
// Writes that touch more than one row run inside store.RunInTransaction.
package service
