// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the rental services, which depend only on lookups, filtered reads and
// the few writes the reservation and like workflows need. Every store can
// be rebound to a transaction with WithTx so multi-row writes can be run
// atomically through RunInTransaction.
package store
