//go:build integration

// Package testdb connects integration tests to a real PostgreSQL database.
//
// Each test runs inside a transaction that is rolled back when the test
// ends, so tests can run in parallel against shared tables:
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        stores := postgres.NewPostgresStoreStore(tx, nil)
//	        ...
//	    })
//	}
//
// Tests are skipped when no database URL is configured. The schema is
// migrated from the embedded goose files once per process.
package testdb
