// Package handler provides HTTP request handlers for the blog API.
//
// The handler package contains all HTTP endpoint implementations organized
// by domain. Each handler struct encapsulates the dependencies needed to
// serve requests for a specific feature area (authentication, users, posts,
// comments, stats).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the service dependency
//   - Handlers declare the service surface they need as a local interface
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details by error_mapper.go
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteData: Single resource with optional HATEOAS links
//   - WritePage: Paginated collection (the page carries its own envelope)
//   - WriteJSON: Raw JSON response
//   - WriteError: RFC 9457 Problem Details error response
//
// # Authentication
//
// Write endpoints require authentication via JWT tokens. The auth middleware
// extracts the user ID and makes it available via middleware.GetUserID.
//
// # Example Usage
//
//	handler := NewPostHandler(postService)
//	mux.Handle("POST /v1/posts", authMiddleware(http.HandlerFunc(handler.Create)))
//	mux.HandleFunc("GET /v1/posts/{postId}", handler.Get)
package handler
