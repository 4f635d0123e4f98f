// Package domain contains the core business entities of the dress rental
// service: stores, dresses and their option slots, reservations, likes and
// recent views, plus the closed enumerations (category, sort order,
// reservation status) that are validated once at the service boundary.
//
// Read models returned by catalog queries (briefs, details, order lines) also
// live here so that the store and service layers share one vocabulary.
package domain
