// Package database provides the Postgres access layer for the Inkline blog API.
//
// This package defines the DB interface that abstracts pgx query execution,
// allowing for clean separation between business logic and data access.
//
// # Interface Design
//
// The DB interface mirrors the pgx query surface:
//   - Query: Returns multiple rows (for SELECT queries returning lists)
//   - QueryRow: Returns a single row (for SELECT by ID)
//   - Exec: No row results (for INSERT/UPDATE/DDL)
//
// Both *pgxpool.Pool and pgx.Tx satisfy DB, so repository code runs
// unchanged inside a transaction (see WithTx in transaction.go).
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: Record does not exist
//   - ErrDuplicate: Unique constraint violation
//   - ErrConnection: Database connection issues
//   - ErrQuery: Query execution failures
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
//
// # Usage Example
//
//	pool, err := database.Connect(ctx, cfg)
//	if err != nil {
//	    // handle
//	}
//	defer pool.Close()
package database
