// Package service implements the business logic layer for the blog API.
//
// The service package contains all domain logic, validation rules, and
// orchestration of repository operations. Services are the primary
// abstraction between HTTP handlers and data access.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with repository dependencies
//   - Methods implement business operations with proper validation
//   - Errors are returned as sentinel errors or wrapped errors for context
//   - Context is passed through for cancellation and request-scoped values
//
// # Repository Interfaces
//
// Services define their own repository interfaces, allowing:
//
//   - Easy mocking for unit tests
//   - Decoupling from specific database implementations
//   - Clear contracts for data access requirements
//
// # Caching
//
// PostService keeps a cache-aside snapshot cache in front of single-post
// reads. The relational store is always authoritative; cache reads and
// writes are best-effort and their failures are logged, never returned.
//
// # Error Handling
//
// Services return domain-specific errors defined as package-level variables:
//
//	var (
//	    ErrPostNotFound       = errors.New("post does not exist")
//	    ErrEmailAlreadyExists = errors.New("email already registered")
//	)
package service
