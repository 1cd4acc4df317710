// Package repository implements the data access layer for the Inkline blog API.
//
// Each repository struct handles the SQL for a single domain entity, plus a
// StatsRepository holding the multi-table ranking aggregation. Queries are
// parameterized pgx calls against the database.DB interface, so repositories
// work identically against the connection pool and inside a transaction.
//
// # Repository Pattern
//
// All repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts a database.DB
//   - Methods implement specific data operations (Create, GetByID, List, Count)
//   - Lookup misses return (nil, nil); callers decide whether absence is an error
//   - Unique constraint violations surface as database.ErrDuplicate
//
// # Ordering and Tie-Breaks
//
// Every ORDER BY carries a secondary id key so results are deterministic
// when timestamps collide: "latest" rows order by created_at DESC, id DESC,
// and list queries order by created_at ASC, id ASC.
package repository
