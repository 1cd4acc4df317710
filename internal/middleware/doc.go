// Package middleware provides HTTP middleware for the blog API.
//
// The middleware package contains reusable middleware components for
// authentication and request processing.
//
// # Available Middleware
//
// Core middleware components:
//
//   - RequestID: unique request identifier generation and propagation
//   - Logger: structured request logging via slog
//   - Recovery: panic recovery with a JSON 500 response
//   - CORS: origin allow-listing and preflight handling
//   - Auth: JWT token validation and user extraction
//
// # Authentication
//
// The auth middleware validates Bearer JWT tokens and injects user
// information into the request context:
//
//	protected := middleware.Auth(jwtService)(handler)
//
// After authentication, handlers can access user info:
//
//	userID := middleware.GetUserID(r.Context())
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetUserID(ctx): Returns authenticated user ID
//   - GetUserEmail(ctx): Returns authenticated user email
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
