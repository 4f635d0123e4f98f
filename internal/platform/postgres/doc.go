// Package postgres implements the internal/store interfaces on PostgreSQL
// through database/sql and the pgx stdlib driver. It also embeds the goose
// migrations that define the rental schema.
//
// Every store accepts a store.DBTX, so the same type serves both pooled
// reads and work inside a transaction opened by store.RunInTransaction.
package postgres
